package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cuemby/cookshow/pkg/service"
	"github.com/google/uuid"
)

// Error codes as constants
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable,omitempty"`
}

// writeError writes error response
func writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]interface{}) {

	requestID := RequestIDFrom(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	respondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// statusFor maps a service error kind onto an HTTP status and error code
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest, ErrCodeConflict
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, errBodyTooLarge):
		return http.StatusBadRequest, ErrCodeInvalidRequest
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// writeServiceError reports err with the status its kind maps to. Internal
// failures are logged and their detail is kept out of the response.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error().
			Err(err).
			Str("request_id", RequestIDFrom(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		message = "Internal server error"
	}
	writeError(w, r, status, code, message, false, nil)
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error(), false, nil)
}
