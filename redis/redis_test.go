package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	f.expires[key] = d
	return redis.NewBoolResult(true, nil)
}

func TestLoginLimiterAllowsUpToLimit(t *testing.T) {
	ctx := context.Background()
	c := newFakeCounter()
	l := NewLoginLimiter(c, 3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "company:a@b.test")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "company:a@b.test")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "company:c@d.test")
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")

	assert.Equal(t, 15*time.Minute, c.expires["login_attempts:company:a@b.test"])
}

func TestLoginLimiterSurfacesErrors(t *testing.T) {
	c := newFakeCounter()
	c.err = errors.New("connection refused")
	_, err := NewLoginLimiter(c, 3, time.Minute).Allow(context.Background(), "k")
	assert.Error(t, err)
}
