package realtime

import (
	"context"
	"time"

	"github.com/inklore/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

// MaxReconnectAttempts bounds the backoff schedule; after this many
// consecutive failures the user is considered durably offline until they
// re-authenticate.
const MaxReconnectAttempts = 5

// ReconnectCoordinator schedules bounded, exponentially backed-off checks
// after a connection dies. Initiating a new connection is a client-side
// action, so a fired check only verifies registry state and, if the user is
// still absent, reports them unreachable downstream. There are no timer
// cancellation handles: a check that fires after the user re-registered
// re-reads the registry and becomes a no-op.
type ReconnectCoordinator struct {
	registry      *SessionRegistry
	attempts      *xsync.MapOf[string, int]
	baseDelay     time.Duration
	onUnreachable func(ctx context.Context, userID string)

	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewReconnectCoordinator(
	registry *SessionRegistry,
	baseDelay time.Duration,
	onUnreachable func(ctx context.Context, userID string),
) *ReconnectCoordinator {
	return &ReconnectCoordinator{
		registry:      registry,
		attempts:      xsync.NewMapOf[int](),
		baseDelay:     baseDelay,
		onUnreachable: onUnreachable,
		afterFunc:     time.AfterFunc,
	}
}

// OnDisconnected records one more failed cycle for the user and schedules the
// next check after baseDelay << attempts.
func (c *ReconnectCoordinator) OnDisconnected(ctx context.Context, userID string) {
	n, _ := c.attempts.Load(userID)
	if n >= MaxReconnectAttempts {
		xcontext.Logger(ctx).Debugf("User %s is considered durably offline", userID)
		return
	}

	c.attempts.Store(userID, n+1)

	delay := c.baseDelay << n
	c.afterFunc(delay, func() {
		// A registration since scheduling makes this check a no-op.
		if _, ok := c.registry.Lookup(userID); ok {
			return
		}

		if c.onUnreachable != nil {
			c.onUnreachable(ctx, userID)
		}
	})
}

// Reset clears the attempt counter; called whenever the user registers a
// fresh connection.
func (c *ReconnectCoordinator) Reset(userID string) {
	c.attempts.Delete(userID)
}

// Attempts returns the current counter for the user.
func (c *ReconnectCoordinator) Attempts(userID string) int {
	n, _ := c.attempts.Load(userID)
	return n
}
