package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/costanza-quotes/internal/domain"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
	"github.com/jsamuelsen/costanza-quotes/internal/ports"
)

// Session returns middleware that checks out one storage session per
// request and releases it once the rest of the chain has returned,
// including when a handler panics.
func Session(provider ports.SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, release, err := provider.Acquire(c.Request.Context())
		if err != nil {
			logging.FromContext(c.Request.Context()).Error("failed to acquire storage session",
				slog.Any("error", err),
			)
			dto.HandleError(c, domain.NewUnavailableError("database", "no session available"))

			return
		}
		defer release()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
