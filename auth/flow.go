package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/oauthmodel"
	"github.com/jrsteele09/notebridge/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Config describes the client registration at the notebook provider.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string // Callback URL, the pending session id is appended as a query parameter
	Scopes       []string
	Endpoint     oauth2.Endpoint
	ProfileURL   string
	SuccessPath  string       // Where the browser lands after a successful callback
	HTTPClient   *http.Client // Used for the token exchange and profile fetch
}

// Flow runs the authorization code flow against the notebook provider.
// A login attempt moves from no session to a pending session (CSRF state only) and is
// promoted to an authenticated session by a validated callback.
type Flow struct {
	cfg      Config
	sessions sessions.Repo
	now      func() time.Time
}

// LoginRequest is the result of starting a login attempt.
type LoginRequest struct {
	SessionID string // Pending session id, travels inside the redirect URI
	AuthURL   string
}

// Result is the outcome of a successful callback.
type Result struct {
	SessionID  string // Permanent session id, delivered as a cookie
	RedirectTo string
}

func NewFlow(cfg Config, repo sessions.Repo) *Flow {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.SuccessPath == "" {
		cfg.SuccessPath = "/auth/success"
	}
	return &Flow{
		cfg:      cfg,
		sessions: repo,
		now:      time.Now,
	}
}

// Initiate starts a login attempt and returns the provider authorization URL.
// It never redirects; the caller decides how to hand the URL to the browser.
func (f *Flow) Initiate() (LoginRequest, error) {
	sessionID := sessions.NewID()
	state := sessions.NewState()

	err := f.sessions.Put(sessionID, sessions.Record{
		OAuthState: state,
		CreatedAt:  f.now(),
	})
	if err != nil {
		return LoginRequest{}, errors.Wrapf(errors.ErrInternal, "[Flow Initiate] store pending session: %v", err)
	}

	redirectURI, err := f.redirectURI(sessionID)
	if err != nil {
		return LoginRequest{}, err
	}

	authURL := f.oauthConfig(redirectURI).AuthCodeURL(state,
		oauth2.SetAuthURLParam(oauthmodel.ParamResponseMode, string(oauthmodel.QueryResponseMode)),
	)
	return LoginRequest{SessionID: sessionID, AuthURL: authURL}, nil
}

// Complete validates the callback of a pending login attempt, exchanges the code for
// tokens and promotes the attempt to an authenticated session.
func (f *Flow) Complete(ctx context.Context, sessionID, state, code string) (Result, error) {
	if sessionID == "" {
		return Result{}, errors.ErrInvalidSession
	}
	pending, err := f.sessions.Get(sessionID)
	if err != nil || !pending.IsPending() {
		return Result{}, errors.ErrInvalidSession
	}

	if subtle.ConstantTimeCompare([]byte(state), []byte(pending.OAuthState)) != 1 {
		return Result{}, errors.ErrInvalidState
	}

	if code == "" {
		return Result{}, errors.ErrMissingCode
	}

	redirectURI, err := f.redirectURI(sessionID)
	if err != nil {
		return Result{}, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.cfg.HTTPClient)
	token, err := f.oauthConfig(redirectURI).Exchange(ctx, code,
		oauth2.SetAuthURLParam(oauthmodel.ParamScope, strings.Join(f.cfg.Scopes, " ")),
	)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", errors.ErrTokenExchangeFailed, err)
	}

	permanentID := sessions.NewID()
	err = f.sessions.Put(permanentID, sessions.Record{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		PendingID:    sessionID,
		CreatedAt:    f.now(),
	})
	if err != nil {
		return Result{}, errors.Wrapf(errors.ErrInternal, "[Flow Complete] store session: %v", err)
	}

	if err := f.sessions.Delete(sessionID); err != nil {
		log.Warn().Err(err).Msg("Failed to delete pending session")
	}

	return Result{SessionID: permanentID, RedirectTo: f.cfg.SuccessPath}, nil
}

// Session returns the authenticated record for a session id.
// An unknown id and a record without an access token are reported as distinct errors.
func (f *Flow) Session(sessionID string) (sessions.Record, error) {
	if sessionID == "" {
		return sessions.Record{}, errors.ErrNotAuthenticated
	}
	record, err := f.sessions.Get(sessionID)
	if err != nil {
		return sessions.Record{}, errors.ErrNotAuthenticated
	}
	if !record.IsAuthenticated() {
		return sessions.Record{}, errors.ErrAccessTokenMissing
	}
	return record, nil
}

// Logout forgets an authenticated session.
func (f *Flow) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return f.sessions.Delete(sessionID)
}

func (f *Flow) oauthConfig(redirectURI string) *oauth2.Config {
	endpoint := f.cfg.Endpoint
	// The provider expects client credentials in the form body.
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	return &oauth2.Config{
		ClientID:     f.cfg.ClientID,
		ClientSecret: f.cfg.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  redirectURI,
		Scopes:       f.cfg.Scopes,
	}
}

// redirectURI builds the callback URL for a pending session. The same value must be sent
// on the authorization request and on the token exchange.
func (f *Flow) redirectURI(sessionID string) (string, error) {
	u, err := url.Parse(f.cfg.RedirectURI)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInternal, "[Flow redirectURI] invalid redirect uri %q: %v", f.cfg.RedirectURI, err)
	}
	q := u.Query()
	q.Set(oauthmodel.ParamSessionID, sessionID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
