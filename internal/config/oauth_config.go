package config

import "time"

type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetAuthURL() string
	GetTokenURL() string
	GetIssuer() string
	GetScopes() []string
	GetProfileURL() string
	GetSuccessPath() string
}

type SessionConfig interface {
	GetSessionCookieMaxAge() int
	GetSessionTTL() time.Duration
	GetSessionMaxEntries() int
}

// OAuth describes the notebook provider's authorization server.
// Defaults target the Microsoft identity platform and Microsoft Graph.
type OAuth struct {
	ClientID     string   `env:"ONENOTE_CLIENT_ID"`
	ClientSecret string   `env:"ONENOTE_CLIENT_SECRET"`
	RedirectURI  string   `env:"ONENOTE_REDIRECT_URI" envDefault:"http://localhost:8002/callback"`
	AuthURL      string   `env:"OAUTH_AUTH_URL" envDefault:"https://login.microsoftonline.com/common/oauth2/v2.0/authorize"`
	TokenURL     string   `env:"OAUTH_TOKEN_URL" envDefault:"https://login.microsoftonline.com/common/oauth2/v2.0/token"`
	Issuer       string   `env:"OAUTH_ISSUER"`
	Scopes       []string `env:"OAUTH_SCOPES" envSeparator:" " envDefault:"https://graph.microsoft.com/Notes.ReadWrite https://graph.microsoft.com/User.Read offline_access"`
	ProfileURL   string   `env:"OAUTH_PROFILE_URL" envDefault:"https://graph.microsoft.com/v1.0/me"`
	SuccessPath  string   `env:"OAUTH_SUCCESS_PATH" envDefault:"/auth/success"`
}

var _ OAuthConfig = OAuth{}

func (o OAuth) GetClientID() string { return o.ClientID }
func (o OAuth) GetClientSecret() string { return o.ClientSecret }
func (o OAuth) GetRedirectURI() string { return o.RedirectURI }
func (o OAuth) GetAuthURL() string { return o.AuthURL }
func (o OAuth) GetTokenURL() string { return o.TokenURL }

// GetIssuer returns the OIDC issuer used for endpoint discovery. Empty disables discovery.
func (o OAuth) GetIssuer() string { return o.Issuer }
func (o OAuth) GetScopes() []string { return o.Scopes }
func (o OAuth) GetProfileURL() string { return o.ProfileURL }
func (o OAuth) GetSuccessPath() string { return o.SuccessPath }

type Session struct {
	CookieMaxAge int           `env:"SESSION_COOKIE_MAX_AGE" envDefault:"3600"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"0s"`
	MaxEntries   int           `env:"SESSION_MAX_ENTRIES" envDefault:"10000"`
}

var _ SessionConfig = Session{}

func (s Session) GetSessionCookieMaxAge() int {
	return s.CookieMaxAge
}

// GetSessionTTL returns how long a session record lives. Zero keeps records for the process lifetime.
func (s Session) GetSessionTTL() time.Duration {
	return s.TTL
}

func (s Session) GetSessionMaxEntries() int {
	return s.MaxEntries
}
