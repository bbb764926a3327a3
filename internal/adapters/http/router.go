package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/config"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/telemetry"
	"github.com/jsamuelsen/costanza-quotes/internal/ports"
)

// DefaultRequestTimeout is the default deadline for quote requests.
const DefaultRequestTimeout = 15 * time.Second

// rootRedirect is where GET / sends clients.
const rootRedirect = "/getquotes/"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// CORS is the cross-origin policy applied to every route.
	CORS middleware.CORSConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// Sessions hands out one storage session per quote request.
	Sessions ports.SessionProvider

	// Timeout is the deadline for quote requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Trace ID - the ID error responses report
//  6. Logging - request logging (skips health endpoints)
//  7. CORS - answers preflights before routing
//
// Route groups:
//   - /-/ (internal): health, build info and metrics; no session, no timeout
//   - / (public): quote endpoints, each with a deadline and a storage session
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName(cfg.AppConfig))...)
	engine.Use(
		bindTraceID(),
		middleware.Logging(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.Mount(engine)
	}

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, rootRedirect)
	})

	if cfg.QuoteHandler != nil {
		setupQuoteRoutes(&engine.RouterGroup, cfg)
	}

	engine.NoRoute(noRoute)
}

// setupQuoteRoutes registers the quote endpoints behind their deadline and
// session middleware. The timeout wraps the session so acquiring a
// connection counts against the deadline.
func setupQuoteRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	quotes := rg.Group("")

	if cfg.Timeout > 0 {
		quotes.Use(middleware.Deadline(cfg.Timeout))
	}

	if cfg.Sessions != nil {
		quotes.Use(middleware.Session(cfg.Sessions))
	}

	cfg.QuoteHandler.RegisterQuoteRoutes(quotes)
}

func serviceName(app *config.AppConfig) string {
	if app == nil || app.Name == "" {
		return "costanza-quotes"
	}

	return app.Name
}

// NewDefaultRouterConfig creates a RouterConfig from the loaded configuration.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
	sessions ports.SessionProvider,
) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	return RouterConfig{
		Logger:    logger,
		AppConfig: &cfg.App,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
			MaxAge:         cfg.CORS.MaxAge,
		},
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		Sessions:      sessions,
		Timeout:       timeout,
	}
}
