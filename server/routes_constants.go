package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHealth  = "/"
	RouteMetrics = "/metrics"

	// Auth Routes
	RouteLogin       = "/login"
	RouteCallback    = "/callback"
	RouteAuthSuccess = "/auth/success"
	RouteAuthLogout  = "/auth/logout"
	RouteProfile     = "/profile"

	// Notebook API Routes
	RouteAPINotebooks     = "/api/notebooks"
	RouteAPISections      = "/api/sections/{notebook_id}"
	RouteAPIPages         = "/api/pages/{section_id}"
	RouteAPICreateSection = "/api/create-section"
	RouteAPICreatePage    = "/api/create-page"

	// Assistant API Routes
	RouteAPIPageSummary     = "/api/page-summary"
	RouteAPIAppendPage      = "/api/append-page"
	RouteAPIReviewQuestions = "/api/review-questions"
	RouteAPIAnalyzeAnswers  = "/api/analyze-answers"
	RouteAPIDialogue        = "/api/dialogue"
)
