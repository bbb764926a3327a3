package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
)

// Recovery turns a handler panic into a logged stack trace and a 500
// INTERNAL_ERROR envelope. It must be the first middleware. Deferred cleanup
// further down the chain, such as session release, has already run by the
// time it recovers. http.ErrAbortHandler is re-raised for net/http.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				recovered(c, logger, r)
			}
		}()

		c.Next()
	}
}

func recovered(c *gin.Context, logger *slog.Logger, r any) {
	if r == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
		panic(r)
	}

	traceID := dto.GetTraceID(c)

	logging.FromContextOr(c.Request.Context(), logger).Error("panic recovered",
		slog.Any("panic", r),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("trace_id", traceID),
		slog.String("stack", string(debug.Stack())),
	)

	// Too late for an envelope once headers are on the wire.
	if c.Writer.Written() {
		c.Abort()
		return
	}

	resp := dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred").WithTraceID(traceID)
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}
