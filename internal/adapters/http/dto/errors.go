// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/costanza-quotes/internal/domain"
)

// TraceIDKey is the gin context key holding the trace ID for error responses.
const TraceIDKey = "trace_id"

// ErrorResponse is the standard error envelope for all error responses.
// It provides a consistent structure for API error handling.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	// For validation errors, this contains field-level error messages.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates no quote matched the request.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeConflict indicates a quote with the same text already exists.
	ErrorCodeConflict = "CONFLICT"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeUnavailable indicates a dependency is unavailable.
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"
)

// internalErrorMessage is returned for errors that must not leak details.
const internalErrorMessage = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
// A duplicate quote is reported as 400, not 409.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict, ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// FromError maps a domain error to an HTTP status code and error response.
// Unknown errors become 500 with a generic message.
func FromError(err error) (int, *ErrorResponse) {
	var (
		code    string
		message = err.Error()
		details map[string]string
	)

	switch {
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
	case domain.IsConflict(err):
		code = ErrorCodeConflict
	case domain.IsValidation(err):
		code = ErrorCodeValidation

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			details = map[string]string{validationErr.Field: validationErr.Message}
		}
	case domain.IsUnavailable(err):
		code = ErrorCodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = ErrorCodeTimeout
		message = "request timeout exceeded"
	default:
		code = ErrorCodeInternal
		message = internalErrorMessage
	}

	return HTTPStatusFromCode(code), NewErrorResponseWithDetails(code, message, details)
}

// GetTraceID returns the trace ID set on the gin context, falling back to the
// X-Request-ID request header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		id, _ := v.(string)
		return id
	}

	if c.Request != nil {
		return c.GetHeader("X-Request-ID")
	}

	return ""
}

// HandleError writes the error envelope for err and stops the handler chain.
// err is also attached to the context for the access log, since the envelope
// hides the cause of internal errors.
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, resp := FromError(err)
	c.AbortWithStatusJSON(status, resp.WithTraceID(GetTraceID(c)))
}
