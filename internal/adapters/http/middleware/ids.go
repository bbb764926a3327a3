// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID is the header name for correlation ID. It names
	// the whole transaction a request belongs to, which may span services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the context key for storing the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the context key for storing the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength bounds caller-supplied IDs so they stay log friendly.
const maxIDLength = 128

// idMiddlewareConfig configures the ID middleware behavior.
type idMiddlewareConfig struct {
	headerName      string
	contextKey      string
	contextEnricher func(ctx context.Context, id string) context.Context

	// fallback supplies the ID when the caller sent none. Empty means generate.
	fallback func(c *gin.Context) string
}

// RequestID returns middleware that takes the request ID from X-Request-ID
// or generates a UUID. The ID is stored in the gin.Context, echoed in the
// response and added to the request logger.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderRequestID,
		contextKey:      ContextKeyRequestID,
		contextEnricher: logging.WithRequestID,
	})
}

// CorrelationID returns middleware that propagates X-Correlation-ID. A
// request arriving without one starts a new transaction, named after its
// request ID when RequestID ran first.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderCorrelationID,
		contextKey:      ContextKeyCorrelationID,
		contextEnricher: logging.WithCorrelationID,
		fallback:        GetRequestID,
	})
}

// GetRequestID returns the request ID, or "" if RequestID has not run.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// MustGetRequestID returns the request ID, or "unknown" if RequestID has not run.
func MustGetRequestID(c *gin.Context) string {
	return orUnknown(GetRequestID(c))
}

// GetCorrelationID returns the correlation ID, or "" if CorrelationID has not run.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID returns the correlation ID, or "unknown" if CorrelationID has not run.
func MustGetCorrelationID(c *gin.Context) string {
	return orUnknown(GetCorrelationID(c))
}

// createIDMiddleware creates middleware that extracts or generates an ID.
func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.headerName)

		if !validID(id) {
			id = ""
			if cfg.fallback != nil {
				id = cfg.fallback(c)
			}

			if id == "" {
				id = uuid.New().String()
			}
		}

		c.Set(cfg.contextKey, id)
		c.Header(cfg.headerName, id)

		if cfg.contextEnricher != nil {
			c.Request = c.Request.WithContext(cfg.contextEnricher(c.Request.Context(), id))
		}

		c.Next()
	}
}

// validID accepts non-empty printable ASCII IDs of bounded length.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

// getIDFromContext extracts an ID from the gin context by key.
func getIDFromContext(c *gin.Context, key string) string {
	if id, exists := c.Get(key); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

func orUnknown(id string) string {
	if id == "" {
		return "unknown"
	}

	return id
}
