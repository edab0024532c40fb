package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOutRunsAllFetches(t *testing.T) {
	var count int32

	err := FanOut(context.Background(),
		func(ctx context.Context) error { atomic.AddInt32(&count, 1); return nil },
		func(ctx context.Context) error { atomic.AddInt32(&count, 1); return nil },
		func(ctx context.Context) error { atomic.AddInt32(&count, 1); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, int32(3), count, "all fetches must complete before FanOut returns")
}

func TestFanOutReturnsFirstError(t *testing.T) {
	boom := errors.New("fetch failed")

	err := FanOut(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestFanOutCancelsSiblings(t *testing.T) {
	boom := errors.New("fetch failed")
	var sawCancel atomic.Bool

	err := FanOut(context.Background(),
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error {
			<-ctx.Done()
			sawCancel.Store(true)
			return ctx.Err()
		},
	)
	assert.ErrorIs(t, err, boom)
	assert.True(t, sawCancel.Load())
}

func TestFanOutNoFetches(t *testing.T) {
	assert.NoError(t, FanOut(context.Background()))
}
