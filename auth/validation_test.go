package auth_test

import (
	"testing"

	"github.com/jrsteele09/notebridge/auth"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func validConfig() auth.Config {
	return auth.Config{
		ClientID:    testClientID,
		RedirectURI: testRedirectURI,
		Scopes:      testScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://login.example.com/authorize",
			TokenURL: "https://login.example.com/token",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*auth.Config)
		wantErr string
	}{
		{"missing client id", func(c *auth.Config) { c.ClientID = " " }, "client_id is required"},
		{"missing redirect uri", func(c *auth.Config) { c.RedirectURI = "" }, "redirect_uri is required"},
		{"non http redirect uri", func(c *auth.Config) { c.RedirectURI = "chrome-extension://abc/cb" }, "http or https"},
		{"redirect uri fragment", func(c *auth.Config) { c.RedirectURI = "http://localhost/cb#x" }, "fragments"},
		{"missing token url", func(c *auth.Config) { c.Endpoint.TokenURL = "" }, "endpoints are required"},
		{"no scopes", func(c *auth.Config) { c.Scopes = nil }, "at least one scope"},
		{"scope with space", func(c *auth.Config) { c.Scopes = []string{"Notes.Read User.Read"} }, "whitespace"},
		{"empty scope", func(c *auth.Config) { c.Scopes = []string{"User.Read", ""} }, "must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
