package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrsteele09/notebridge/sessions"
	"github.com/rs/zerolog/log"
)

// Profile returns the user's provider profile, fetching and caching it on first use.
// A failed fetch is not an error: the caller gets an empty profile and the session stays valid.
func (f *Flow) Profile(ctx context.Context, sessionID string) (map[string]any, error) {
	record, err := f.Session(sessionID)
	if err != nil {
		return nil, err
	}
	if record.Profile != nil {
		return record.Profile, nil
	}

	profile, err := f.fetchProfile(ctx, record.AccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("Profile fetch failed, returning empty profile")
		return map[string]any{}, nil
	}

	err = f.sessions.Update(sessionID, func(r *sessions.Record) {
		r.Profile = profile
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to cache profile on session")
	}
	return profile, nil
}

func (f *Flow) fetchProfile(ctx context.Context, accessToken string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.ProfileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := f.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile request status %d", resp.StatusCode)
	}

	profile := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	// A JSON null body decodes to a nil map, which would never be cached.
	if profile == nil {
		profile = map[string]any{}
	}
	return profile, nil
}
