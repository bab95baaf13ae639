package auth

import (
	"fmt"
	"strings"
)

// Validate checks the client registration before any login attempt is started.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("client_id is required")
	}
	if err := ValidateRedirectURI(c.RedirectURI); err != nil {
		return err
	}
	if c.Endpoint.AuthURL == "" || c.Endpoint.TokenURL == "" {
		return fmt.Errorf("authorization and token endpoints are required")
	}
	if len(c.Scopes) == 0 {
		return fmt.Errorf("at least one scope is required")
	}
	for _, scope := range c.Scopes {
		if err := ValidateScope(scope); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScope validates a single scope token
func ValidateScope(scope string) error {
	if scope == "" {
		return fmt.Errorf("scope must not be empty")
	}

	// Scopes are joined with spaces on the wire
	if strings.ContainsAny(scope, " \n\r\t") {
		return fmt.Errorf("scope %q contains whitespace", scope)
	}

	return nil
}

// ValidateRedirectURI validates redirect URI format
func ValidateRedirectURI(uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return fmt.Errorf("redirect_uri is required")
	}

	// Must start with http:// or https://
	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		return fmt.Errorf("redirect_uri must use http or https scheme")
	}

	// Should not contain fragments
	if strings.Contains(uri, "#") {
		return fmt.Errorf("redirect_uri must not contain fragments")
	}

	return nil
}
