package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitAllowsWithinBurst(t *testing.T) {
	limiter := New("test", 10)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	limiter := New("test", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Burst token may still be available on the first call; drain it first.
	_ = limiter.Wait(context.Background())

	err := limiter.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test")
}

func TestName(t *testing.T) {
	assert.Equal(t, "posters", New("posters", 1).Name())
}
