package realtime

import (
	"context"
	"time"

	"github.com/inklore/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

const presenceKeyPrefix = "presence:"

type statusStore interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PresenceTracker keeps best-effort online markers in redis so the rest of
// the application can stop assuming live delivery for unreachable users.
// Failures are logged and never propagated.
type PresenceTracker struct {
	store statusStore
	ttl   time.Duration
}

func NewPresenceTracker(store statusStore, ttl time.Duration) *PresenceTracker {
	return &PresenceTracker{store: store, ttl: ttl}
}

func (t *PresenceTracker) Online(ctx context.Context, userID string) {
	err := t.store.Set(ctx, presenceKeyPrefix+userID, time.Now().Unix(), t.ttl).Err()
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot set online status of user %s: %v", userID, err)
	}
}

func (t *PresenceTracker) Offline(ctx context.Context, userID string) {
	if err := t.store.Del(ctx, presenceKeyPrefix+userID).Err(); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot clear online status of user %s: %v", userID, err)
	}
}
