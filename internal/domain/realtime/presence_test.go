package realtime

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeStatusStore struct {
	keys map[string]time.Duration
	err  error
}

func (s *fakeStatusStore) Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}

	s.keys[key] = expiration
	return cmd
}

func (s *fakeStatusStore) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	cmd := goredis.NewIntCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}

	for _, key := range keys {
		delete(s.keys, key)
	}

	return cmd
}

func TestPresenceTracker(t *testing.T) {
	ctx := context.Background()
	store := &fakeStatusStore{keys: map[string]time.Duration{}}
	tracker := NewPresenceTracker(store, 5*time.Minute)

	tracker.Online(ctx, "user1")
	require.Equal(t, 5*time.Minute, store.keys["presence:user1"])

	tracker.Offline(ctx, "user1")
	require.NotContains(t, store.keys, "presence:user1")
}

func TestPresenceTrackerSwallowsStoreFailures(t *testing.T) {
	ctx := context.Background()
	store := &fakeStatusStore{keys: map[string]time.Duration{}, err: errors.New("redis is down")}
	tracker := NewPresenceTracker(store, time.Minute)

	// Neither call panics or propagates the failure.
	tracker.Online(ctx, "user1")
	tracker.Offline(ctx, "user1")
}
