package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
)

// internalPathPrefix marks operational endpoints that are not access-logged.
const internalPathPrefix = "/-/"

// Logging writes one access log line per request as it completes, through
// the request-scoped logger when one is set. Probe and metrics traffic under
// /-/ is not logged.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, internalPathPrefix) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, slog.String("error", last.Error()))
		}

		ctx := c.Request.Context()
		logging.FromContextOr(ctx, logger).LogAttrs(ctx, accessLevel(status), "request completed", attrs...)
	}
}

// accessLevel is error for 5xx, warn for 4xx and info otherwise.
func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
