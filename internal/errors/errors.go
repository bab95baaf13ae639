package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced by the service. Each maps to one HTTP status class via StatusCode.
var (
	// Authentication errors
	ErrInvalidSession      = errors.New("invalid session")
	ErrInvalidState        = errors.New("invalid state parameter")
	ErrMissingCode         = errors.New("no code provided")
	ErrTokenExchangeFailed = errors.New("token exchange failed")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrAccessTokenMissing  = errors.New("access token missing")

	// Upstream notebook API errors
	ErrUpstreamAPI = errors.New("notebook api request failed")

	// Content pipeline errors
	ErrUnknownTask          = errors.New("unknown task")
	ErrTemplateParamMissing = errors.New("template parameter missing")
	ErrLLMRequestFailed     = errors.New("llm request failed")
	ErrJSONParse            = errors.New("json parse error")

	// Request errors
	ErrValidation = errors.New("validation error")

	// General errors
	ErrInternal = errors.New("internal error")
)

// UpstreamAPIError keeps the status code and body of a non-2xx notebook API response.
type UpstreamAPIError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("notebook api returned %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamAPIError) Unwrap() error {
	return ErrUpstreamAPI
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// StatusCode returns the HTTP status for an error produced anywhere in the service.
func StatusCode(err error) int {
	var upstream *UpstreamAPIError
	switch {
	case err == nil:
		return http.StatusOK
	case Is(err, ErrValidation), Is(err, ErrInvalidSession), Is(err, ErrInvalidState), Is(err, ErrMissingCode):
		return http.StatusBadRequest
	case Is(err, ErrNotAuthenticated), Is(err, ErrAccessTokenMissing):
		return http.StatusUnauthorized
	case As(err, &upstream) && upstream.StatusCode == http.StatusUnauthorized:
		// The provider rejected our bearer token; the user has to log in again.
		return http.StatusUnauthorized
	case Is(err, ErrTokenExchangeFailed), Is(err, ErrUpstreamAPI), Is(err, ErrLLMRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Code returns a short machine readable name for the error kind.
func Code(err error) string {
	switch {
	case Is(err, ErrValidation):
		return "validation_error"
	case Is(err, ErrInvalidSession):
		return "invalid_session"
	case Is(err, ErrInvalidState):
		return "invalid_state"
	case Is(err, ErrMissingCode):
		return "missing_code"
	case Is(err, ErrNotAuthenticated):
		return "unauthenticated"
	case Is(err, ErrAccessTokenMissing):
		return "access_token_missing"
	case Is(err, ErrTokenExchangeFailed):
		return "token_exchange_failed"
	case Is(err, ErrUpstreamAPI):
		return "upstream_api_error"
	case Is(err, ErrUnknownTask):
		return "unknown_task"
	case Is(err, ErrTemplateParamMissing):
		return "template_param_missing"
	case Is(err, ErrLLMRequestFailed):
		return "llm_request_failed"
	case Is(err, ErrJSONParse):
		return "json_parse_error"
	default:
		return "internal_error"
	}
}
