package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSConfig is the cross-origin policy applied to every route.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS returns middleware that applies the cross-origin policy. Preflight
// requests are answered here and never reach a handler.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	policy := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{HeaderRequestID, HeaderCorrelationID},
		MaxAge:         cfg.MaxAge,
	})

	return func(c *gin.Context) {
		policy.HandlerFunc(c.Writer, c.Request)

		if isPreflight(c.Request) {
			c.Abort()
			return
		}

		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
