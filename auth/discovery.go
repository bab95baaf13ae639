package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// ProviderEndpoints are the provider URLs learnt from OIDC discovery.
type ProviderEndpoints struct {
	Endpoint    oauth2.Endpoint
	UserInfoURL string
}

// Discover reads the provider's openid-configuration document.
func Discover(ctx context.Context, issuer string) (ProviderEndpoints, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return ProviderEndpoints{}, fmt.Errorf("[auth Discover] failed to create OIDC provider: %w", err)
	}

	var claims struct {
		UserInfoURL string `json:"userinfo_endpoint"`
	}
	if err := provider.Claims(&claims); err != nil {
		return ProviderEndpoints{}, fmt.Errorf("[auth Discover] failed to read discovery claims: %w", err)
	}

	return ProviderEndpoints{
		Endpoint:    provider.Endpoint(),
		UserInfoURL: claims.UserInfoURL,
	}, nil
}
