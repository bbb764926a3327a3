package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrDuplicateChecker is returned by Register for a name already taken.
	ErrDuplicateChecker = errors.New("duplicate health checker")

	// ErrUnnamedChecker is returned by Register for a checker with an empty name.
	ErrUnnamedChecker = errors.New("health checker has no name")
)

// DefaultCheckTimeout bounds one check when no WithCheckTimeout is given.
const DefaultCheckTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is usable. The storage adapter
// registers as "database" and pings its pool.
type HealthChecker interface {
	Name() string

	// Check returns nil when the dependency is usable. It must honor ctx.
	Check(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the outcome of one check or of all of them.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is unhealthy when any single check is.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status    HealthStatus `json:"status"`
	Message   string       `json:"message,omitempty"`
	LatencyMS int64        `json:"latencyMs"`
}

// DefaultHealthRegistry runs its checkers concurrently, each under its own
// deadline. It is safe for concurrent use.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	order    []string
	timeout  time.Duration
}

// HealthRegistryOption configures a DefaultHealthRegistry.
type HealthRegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout sets the per-check deadline. Zero or less disables it.
func WithCheckTimeout(d time.Duration) HealthRegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.timeout = d
	}
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry(opts ...HealthRegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{
		checkers: make(map[string]HealthChecker),
		timeout:  DefaultCheckTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds checker under its name.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	name := checker.Name()
	if name == "" {
		return ErrUnnamedChecker
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checkers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker
	r.order = append(r.order, name)

	return nil
}

// Names lists registered checkers in registration order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// CheckAll runs every checker and waits for all of them.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, 0, len(r.order))
	for _, name := range r.order {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	// Each goroutine owns one slot, so no lock is needed while they run.
	outcomes := make([]*CheckResult, len(checkers))

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Go(func() {
			outcomes[i] = r.check(ctx, checker)
		})
	}
	wg.Wait()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now().UTC(),
	}

	for i, checker := range checkers {
		result.Checks[checker.Name()] = outcomes[i]
		if outcomes[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}

func (r *DefaultHealthRegistry) check(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)

	out := &CheckResult{
		Status:    HealthStatusHealthy,
		LatencyMS: time.Since(start).Milliseconds(),
	}

	if err != nil {
		out.Status = HealthStatusUnhealthy
		out.Message = err.Error()
	}

	return out
}
