package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/sessions"
	"github.com/rs/zerolog"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySessionID stores the authenticated session id
	ContextKeySessionID ContextKey = "session_id"
	// ContextKeySession stores the authenticated session record
	ContextKeySession ContextKey = "session"
)

// RequireSession rejects requests without an authenticated session cookie.
// An unknown session and a session without an access token fail with different errors.
func (s *Server) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(authSessionCookieName); err == nil {
			sessionID = cookie.Value
		}

		record, err := s.flow.Session(sessionID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeySessionID, sessionID)
		ctx = context.WithValue(ctx, ContextKeySession, record)
		ctx = zerolog.Ctx(ctx).With().Str("session", shortID(sessionID)).Logger().WithContext(ctx)
		next(w, r.WithContext(ctx))
	}
}

func sessionFromContext(ctx context.Context) (string, sessions.Record, error) {
	sessionID, _ := ctx.Value(ContextKeySessionID).(string)
	record, ok := ctx.Value(ContextKeySession).(sessions.Record)
	if !ok {
		return "", sessions.Record{}, errors.ErrNotAuthenticated
	}
	return sessionID, record, nil
}

// shortID keeps log lines correlatable without writing whole session ids.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
