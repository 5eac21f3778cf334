package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, interval time.Duration) (*MemoryLimiter, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := &MemoryLimiter{
		windows:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		now:      func() time.Time { return current },
	}
	return l, &current
}

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be rejected")
}

func TestMemoryLimiter_WindowReArms(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow(ctx, "10.0.0.1")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)

	// Immediately after the window elapses the counter resets
	*clock = clock.Add(time.Minute)

	allowed, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_WindowIsFixedNotSliding(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)
	ctx := context.Background()

	l.Allow(ctx, "10.0.0.1")
	*clock = clock.Add(45 * time.Second)
	l.Allow(ctx, "10.0.0.1")

	// 15 more seconds puts us past the window start, even though the
	// second request was only 15 seconds ago
	*clock = clock.Add(15 * time.Second)
	allowed, _ := l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	allowed, _ := l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)

	allowed, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "a different caller gets its own window")
}
