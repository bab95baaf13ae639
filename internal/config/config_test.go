package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/notebridge/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":8002", c.GetPort())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, []string{
		"https://graph.microsoft.com/Notes.ReadWrite",
		"https://graph.microsoft.com/User.Read",
		"offline_access",
	}, c.GetScopes())
	require.Equal(t, 3600, c.GetSessionCookieMaxAge())
	require.Equal(t, time.Duration(0), c.GetSessionTTL())
	require.Equal(t, 0.7, c.GetLLMTemperature())
	require.Equal(t, 30*time.Second, c.GetLLMTimeout())
	require.Equal(t, 10*time.Second, c.GetNotebookTimeout())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:8002"))
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":9000")
	t.Setenv("ONENOTE_CLIENT_ID", "client-1")
	t.Setenv("OAUTH_SCOPES", "a b")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "chrome-extension://abc, http://localhost:3000")

	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":9000", c.GetPort())
	require.Equal(t, "client-1", c.GetClientID())
	require.Equal(t, []string{"a", "b"}, c.GetScopes())
	require.Equal(t, 15*time.Minute, c.GetSessionTTL())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("chrome-extension://abc"))
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:3000"))
}

func TestNew_InvalidValue(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")

	_, err := config.New()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")
}
