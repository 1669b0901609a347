package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type manualScheduler struct {
	delays []time.Duration
	fns    []func()
}

func (s *manualScheduler) afterFunc(d time.Duration, f func()) *time.Timer {
	s.delays = append(s.delays, d)
	s.fns = append(s.fns, f)
	return nil
}

func TestReconnectCoordinatorBackoffSchedule(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()

	coordinator := NewReconnectCoordinator(registry, time.Second, nil)
	scheduler := &manualScheduler{}
	coordinator.afterFunc = scheduler.afterFunc

	for i := 0; i < MaxReconnectAttempts+1; i++ {
		coordinator.OnDisconnected(ctx, "user1")
	}

	// The sixth disconnect schedules nothing.
	require.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}, scheduler.delays)
	require.Equal(t, MaxReconnectAttempts, coordinator.Attempts("user1"))
}

func TestReconnectCoordinatorReportsUnreachable(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()

	var unreachable []string
	coordinator := NewReconnectCoordinator(registry, time.Second,
		func(ctx context.Context, userID string) {
			unreachable = append(unreachable, userID)
		})

	scheduler := &manualScheduler{}
	coordinator.afterFunc = scheduler.afterFunc

	coordinator.OnDisconnected(ctx, "user1")
	require.Len(t, scheduler.fns, 1)

	scheduler.fns[0]()
	require.Equal(t, []string{"user1"}, unreachable)
}

func TestReconnectCoordinatorStaleCheckIsNoop(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()

	var unreachable []string
	coordinator := NewReconnectCoordinator(registry, time.Second,
		func(ctx context.Context, userID string) {
			unreachable = append(unreachable, userID)
		})

	scheduler := &manualScheduler{}
	coordinator.afterFunc = scheduler.afterFunc

	coordinator.OnDisconnected(ctx, "user1")

	// The user re-registers before the check fires.
	registry.Register(ctx, NewConnection("user1", &fakeTransport{}))
	scheduler.fns[0]()

	require.Empty(t, unreachable)
}

func TestReconnectCoordinatorReset(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()

	coordinator := NewReconnectCoordinator(registry, time.Second, nil)
	scheduler := &manualScheduler{}
	coordinator.afterFunc = scheduler.afterFunc

	coordinator.OnDisconnected(ctx, "user1")
	coordinator.OnDisconnected(ctx, "user1")
	coordinator.Reset("user1")
	coordinator.OnDisconnected(ctx, "user1")

	require.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		1 * time.Second,
	}, scheduler.delays)
	require.Equal(t, 1, coordinator.Attempts("user1"))
}
