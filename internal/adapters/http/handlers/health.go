// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/costanza-quotes/internal/ports"
)

// BuildInfo is served on /-/build. The first three fields come from ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion from the running binary.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the operational endpoints under /-.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	gatherer  prometheus.Gatherer
}

// HealthHandlerOption configures a HealthHandler.
type HealthHandlerOption func(*HealthHandler)

// WithGatherer serves /-/metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) HealthHandlerOption {
	return func(h *HealthHandler) {
		h.gatherer = g
	}
}

// NewHealthHandler serves metrics from the default Prometheus registry
// unless WithGatherer says otherwise.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, opts ...HealthHandlerOption) *HealthHandler {
	h := &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		gatherer:  prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness answers /-/live. It never touches storage, so a database outage
// does not get the process restarted.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status  ports.HealthStatus            `json:"status"`
	Version string                        `json:"version,omitempty"`
	Checks  map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness answers /-/ready with 503 while any registered checker, the
// database ping among them, fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status != ports.HealthStatusHealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{
		Status:  result.Status,
		Version: h.buildInfo.Version,
		Checks:  result.Checks,
	})
}

// BuildInfoHandler answers /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler serves g in the Prometheus text format.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// RegisterRoutes adds live, ready, build and metrics to rg.
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(MetricsHandler(h.gatherer)))
}

// Mount registers the operational routes under /-.
func (h *HealthHandler) Mount(engine *gin.Engine) {
	h.RegisterRoutes(engine.Group("/-"))
}
