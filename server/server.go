package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/notebridge/assistant"
	"github.com/jrsteele09/notebridge/auth"
	"github.com/jrsteele09/notebridge/internal/config"
	"github.com/jrsteele09/notebridge/notebook"
	"github.com/jrsteele09/notebridge/prompt"
	"github.com/jrsteele09/notebridge/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const discoveryTimeout = 10 * time.Second

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	handler   http.HandlerFunc
	routes    []string
	config    config.Config
	flow      *auth.Flow
	notebook  *notebook.Client
	assistant *assistant.Service
	validate  *validator.Validate
}

func New(c config.Config, store sessions.Repo, completer prompt.Completer) (*Server, error) {
	endpoints := auth.ProviderEndpoints{
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.GetAuthURL(),
			TokenURL: c.GetTokenURL(),
		},
		UserInfoURL: c.GetProfileURL(),
	}
	if issuer := c.GetIssuer(); issuer != "" {
		ctx, cancel := context.WithTimeout(context.Background(), discoveryTimeout)
		discovered, err := auth.Discover(ctx, issuer)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("[Server New] provider discovery: %w", err)
		}
		endpoints.Endpoint = discovered.Endpoint
		if discovered.UserInfoURL != "" {
			endpoints.UserInfoURL = discovered.UserInfoURL
		}
		log.Info().Str("issuer", issuer).Msg("Provider endpoints discovered")
	}

	authConfig := auth.Config{
		ClientID:     c.GetClientID(),
		ClientSecret: c.GetClientSecret(),
		RedirectURI:  c.GetRedirectURI(),
		Scopes:       c.GetScopes(),
		Endpoint:     endpoints.Endpoint,
		ProfileURL:   endpoints.UserInfoURL,
		SuccessPath:  c.GetSuccessPath(),
	}
	if err := authConfig.Validate(); err != nil {
		return nil, fmt.Errorf("[Server New] invalid oauth configuration: %w", err)
	}
	flow := auth.NewFlow(authConfig, store)

	engine, err := prompt.NewEngine(prompt.DefaultTemplates, completer)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create prompt engine: %w", err)
	}

	nb := notebook.NewClient(c.GetNotebookAPIURL(), c.GetNotebookTimeout(), nil)

	s := &Server{
		env:       c.GetEnv(),
		mux:       http.NewServeMux(),
		config:    c,
		flow:      flow,
		notebook:  nb,
		assistant: assistant.NewService(nb, engine),
		validate:  newValidator(),
	}
	// CORS wraps the whole mux so preflight requests never reach method-specific patterns.
	s.handler = ChainMiddleware(s.mux.ServeHTTP, s.RequestIDMiddleware, s.LoggingMiddleware, s.RecoverMiddleware, s.CorsMiddleware)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	color, ok := methodColors[method]
	if !ok {
		color = Gray
	}
	log.Info().Msgf("[%s] %s", color+paddedMethod+ResetColor, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
