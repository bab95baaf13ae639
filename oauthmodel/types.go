package oauthmodel

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	CodeResponseType ResponseType = "code"
)

// ResponseModeType denotes how the authorization response parameters are returned to the client.
type ResponseModeType string

const (
	// QueryResponseMode returns parameters in the URL query string.
	// Example: https://client.example.com/callback?session_id=...&code=ABC123&state=xyz
	QueryResponseMode ResponseModeType = "query"
)

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Token request includes: client_id, client_secret, scope, code, redirect_uri
	AuthorizationCodeGrant GrantType = "authorization_code"
)

// Query and form parameter names used between the browser, this service and the provider.
const (
	ParamSessionID    = "session_id"
	ParamState        = "state"
	ParamCode         = "code"
	ParamScope        = "scope"
	ParamResponseMode = "response_mode"
	ParamError        = "error"
	ParamErrorDesc    = "error_description"
)
