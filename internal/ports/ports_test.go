package ports

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePool stands in for a database pool: Check blocks for latency unless
// ctx ends first, then returns err.
type fakePool struct {
	name    string
	latency time.Duration
	err     error
	pings   atomic.Int32
}

func (p *fakePool) Name() string { return p.name }

func (p *fakePool) Check(ctx context.Context) error {
	p.pings.Add(1)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.latency):
		return p.err
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&fakePool{name: "database"}))
	require.NoError(t, registry.Register(&fakePool{name: "replica"}))

	err := registry.Register(&fakePool{name: "database"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "database")

	require.ErrorIs(t, registry.Register(&fakePool{}), ErrUnnamedChecker)

	assert.Equal(t, []string{"database", "replica"}, registry.Names())
}

func TestCheckAll_Empty(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		pools      []*fakePool
		wantStatus HealthStatus
		wantFailed map[string]string
	}{
		{
			name:       "database reachable",
			pools:      []*fakePool{{name: "database"}},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one of two unreachable",
			pools: []*fakePool{
				{name: "database"},
				{name: "replica", err: errors.New("dial tcp 10.0.0.7:5432: connection refused")},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: map[string]string{"replica": "connection refused"},
		},
		{
			name:       "ping exceeds the check deadline",
			pools:      []*fakePool{{name: "database", latency: time.Second}},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: map[string]string{"database": "deadline exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry(WithCheckTimeout(20 * time.Millisecond))
			for _, p := range tt.pools {
				require.NoError(t, registry.Register(p))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			require.Len(t, result.Checks, len(tt.pools))

			for _, p := range tt.pools {
				check := result.Checks[p.name]
				require.NotNil(t, check, p.name)
				assert.EqualValues(t, 1, p.pings.Load())

				if msg, failed := tt.wantFailed[p.name]; failed {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Contains(t, check.Message, msg)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status)
					assert.Empty(t, check.Message)
				}
			}
		})
	}
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	registry := NewHealthRegistry()
	for _, name := range []string{"database", "replica", "archive"} {
		require.NoError(t, registry.Register(&fakePool{name: name, latency: 100 * time.Millisecond}))
	}

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
	assert.GreaterOrEqual(t, result.Checks["database"].LatencyMS, int64(90))
}

func TestCheckAll_CallerCancelled(t *testing.T) {
	registry := NewHealthRegistry(WithCheckTimeout(0))
	require.NoError(t, registry.Register(&fakePool{name: "database", latency: time.Second}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["database"].Message, "context canceled")
}

func TestCheckAll_TimeoutDisabled(t *testing.T) {
	registry := NewHealthRegistry(WithCheckTimeout(0))
	require.NoError(t, registry.Register(&fakePool{name: "database", latency: 30 * time.Millisecond}))

	assert.Equal(t, HealthStatusHealthy, registry.CheckAll(context.Background()).Status)
}
