package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/costanza-quotes/internal/platform/telemetry"

// unmatchedRoute labels requests gin could not route, keeping the route
// attribute's cardinality bounded.
const unmatchedRoute = "unmatched"

// TraceHeader carries the trace ID back to the caller.
const TraceHeader = "X-Trace-ID"

// Metrics holds HTTP server metrics.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server metrics on the global meter provider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWith(otel.Meter(instrumentationName))
}

// NewMetricsWith creates HTTP server metrics on the given meter.
func NewMetricsWith(meter metric.Meter) (*Metrics, error) {
	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware returns the tracing and metrics handlers, in the order they
// must be mounted: otelgin first so the metrics handler sees its span.
func Middleware(serviceName string) []gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		metrics.Handler(),
	}
}

// Handler records request metrics and echoes the trace ID in TraceHeader.
// A nil receiver only sets the header.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		ctx := c.Request.Context()
		base := []attribute.KeyValue{
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
		}

		if m != nil {
			m.activeRequests.Add(ctx, 1, metric.WithAttributes(base...))
			defer m.activeRequests.Add(ctx, -1, metric.WithAttributes(base...))
		}

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			c.Header(TraceHeader, sc.TraceID().String())
		}

		c.Next()

		if m == nil {
			return
		}

		attrs := metric.WithAttributes(append(base,
			attribute.Int("http.response.status_code", c.Writer.Status()),
		)...)
		m.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requestTotal.Add(ctx, 1, attrs)
	}
}
