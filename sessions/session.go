package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

const (
	idLength    = 32 // 256 bits
	stateLength = 16
)

// Record is a server side session. A pending record only carries the CSRF state of a
// login attempt; an authenticated record carries the provider tokens once the callback
// has been validated.
type Record struct {
	OAuthState string // Set while the login attempt is pending

	AccessToken  string         // Provider access token (required once authenticated)
	RefreshToken string         // Optional, stored but never used
	Profile      map[string]any // Cached user profile, populated lazily
	PendingID    string         // Session id of the pending record this one was promoted from

	CreatedAt time.Time
}

func (r Record) IsPending() bool {
	return r.OAuthState != "" && r.AccessToken == ""
}

func (r Record) IsAuthenticated() bool {
	return r.AccessToken != ""
}

// NewID returns an opaque, URL safe session identifier.
func NewID() string {
	return randomString(idLength)
}

// NewState returns a random CSRF state token.
func NewState() string {
	return randomString(stateLength)
}

func randomString(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
