package server

import (
	"net/http"

	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/internal/metrics"
	"github.com/jrsteele09/notebridge/oauthmodel"
	"github.com/rs/zerolog"
)

type LoginResponse struct {
	LoginURL string `json:"login_url"`
}

type ProfileResponse struct {
	Message        string         `json:"message"`
	User           map[string]any `json:"user"`
	HasAccessToken bool           `json:"has_access_token"`
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"app":    s.config.GetAppName(),
		})
	}
}

// LoginHandler starts a login attempt. The browser extension opens the returned URL itself.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, err := s.flow.Initiate()
		if err != nil {
			writeError(w, r, err)
			return
		}
		zerolog.Ctx(r.Context()).Debug().Str("pending_session", shortID(login.SessionID)).Msg("Login started")
		writeJSON(w, http.StatusOK, LoginResponse{LoginURL: login.AuthURL})
	}
}

// CallbackHandler receives the provider redirect, completes the code exchange and sets the session cookie.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		logger := zerolog.Ctx(r.Context())

		if providerErr := q.Get(oauthmodel.ParamError); providerErr != "" {
			logger.Warn().
				Str("error", providerErr).
				Str("error_description", q.Get(oauthmodel.ParamErrorDesc)).
				Msg("Provider returned an authorization error")
		}

		result, err := s.flow.Complete(r.Context(), q.Get(oauthmodel.ParamSessionID), q.Get(oauthmodel.ParamState), q.Get(oauthmodel.ParamCode))
		if err != nil {
			metrics.RecordOAuthCallback(errors.Code(err))
			writeError(w, r, err)
			return
		}
		metrics.RecordOAuthCallback("success")

		s.SetAuthSessionCookie(w, result.SessionID, r)
		logger.Info().Str("session", shortID(result.SessionID)).Msg("Login completed")
		http.Redirect(w, r, result.RedirectTo, http.StatusFound)
	}
}

func (s *Server) AuthSuccessHandler() http.HandlerFunc {
	return s.templateHandler("success.html", func(r *http.Request) any {
		return map[string]any{
			"AppName": s.config.GetAppName(),
		}
	})
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(authSessionCookieName); err == nil {
			if err := s.flow.Logout(cookie.Value); err != nil {
				zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Failed to delete session")
			}
		}
		s.ClearAuthSessionCookie(w, r)
		writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
	}
}

// ProfileHandler returns the cached provider profile, fetching it on first use.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		profile, err := s.flow.Profile(r.Context(), sessionID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			Message:        "Login successful!",
			User:           profile,
			HasAccessToken: true,
		})
	}
}
