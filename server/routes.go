package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth+"{$}", s.HealthHandler())
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())

	// AUTH
	s.RegisterRouteFunc("GET "+RouteLogin, s.LoginHandler())
	s.RegisterRouteFunc("GET "+RouteCallback, s.CallbackHandler())
	s.RegisterRouteFunc("GET "+RouteAuthSuccess, s.AuthSuccessHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler())
	s.RegisterRouteFunc("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.RequireSession))

	// Notebook API routes
	s.RegisterRouteFunc("GET "+RouteAPINotebooks, ChainMiddleware(s.ListNotebooksHandler(), s.RequireSession))
	s.RegisterRouteFunc("GET "+RouteAPISections, ChainMiddleware(s.ListSectionsHandler(), s.RequireSession))
	s.RegisterRouteFunc("GET "+RouteAPIPages, ChainMiddleware(s.ListPagesHandler(), s.RequireSession))
	s.RegisterRouteFunc("POST "+RouteAPICreateSection, ChainMiddleware(s.CreateSectionHandler(), s.RequireSession))
	s.RegisterRouteFunc("POST "+RouteAPICreatePage, ChainMiddleware(s.CreatePageHandler(), s.RequireSession))

	// Assistant API routes
	s.RegisterRouteFunc("POST "+RouteAPIPageSummary, ChainMiddleware(s.PageSummaryHandler(), s.RequireSession))
	s.RegisterRouteFunc("POST "+RouteAPIAppendPage, ChainMiddleware(s.AppendPageHandler(), s.RequireSession))
	s.RegisterRouteFunc("POST "+RouteAPIReviewQuestions, ChainMiddleware(s.ReviewQuestionsHandler(), s.RequireSession))
	s.RegisterRouteFunc("POST "+RouteAPIAnalyzeAnswers, ChainMiddleware(s.AnalyzeAnswersHandler(), s.RequireSession))
	s.RegisterRouteFunc("POST "+RouteAPIDialogue, ChainMiddleware(s.DialogueHandler(), s.RequireSession))
}
