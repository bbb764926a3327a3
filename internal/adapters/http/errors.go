package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
)

// bindTraceID stores the ID error responses report as traceId: the
// OpenTelemetry trace when one is recording, otherwise the request ID.
// A recorded trace ID is also added to the request logger.
// It must run after the request ID and telemetry middleware.
func bindTraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Set(dto.TraceIDKey, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
		} else if id := middleware.GetRequestID(c); id != "" {
			c.Set(dto.TraceIDKey, id)
		}

		c.Next()
	}
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}

// noRoute answers unknown paths with the standard envelope.
func noRoute(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
}
