package server

import (
	"net/http"
)

// authSessionCookieName carries the permanent session id after a successful callback
const authSessionCookieName = "auth_session"

func (s *Server) SetAuthSessionCookie(w http.ResponseWriter, sessionID string, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authSessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https", // Only set Secure flag if using HTTPS
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.GetSessionCookieMaxAge(),
	})
}

func (s *Server) ClearAuthSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authSessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
