package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrRequestDeadline is the context cause once a request outlives Deadline.
var ErrRequestDeadline = errors.New("request deadline exceeded")

// Deadline bounds the request context. Nothing is aborted here: storage
// calls fail with context.DeadlineExceeded and the handler reports TIMEOUT.
// A non-positive timeout leaves the context unbounded.
func Deadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeoutCause(c.Request.Context(), timeout, ErrRequestDeadline)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
