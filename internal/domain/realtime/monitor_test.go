package realtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLivenessMonitorEvictsAfterUnackedCycle(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()

	var dead []string
	monitor := NewLivenessMonitor(registry, time.Minute, func(ctx context.Context, userID string) {
		dead = append(dead, userID)
	})

	transport := &fakeTransport{}
	registry.Register(ctx, NewConnection("user1", transport))

	// First cycle probes; the peer never answers, so the second evicts.
	monitor.sweep(ctx)
	require.Equal(t, 1, transport.pings)
	_, ok := registry.Lookup("user1")
	require.True(t, ok)

	monitor.sweep(ctx)
	_, ok = registry.Lookup("user1")
	require.False(t, ok)
	require.True(t, transport.closed)
	require.Equal(t, []string{"user1"}, dead)
}

func TestLivenessMonitorKeepsAnsweringConnection(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()
	monitor := NewLivenessMonitor(registry, time.Minute, nil)

	transport := &fakeTransport{}
	conn := NewConnection("user1", transport)
	registry.Register(ctx, conn)

	for i := 0; i < 3; i++ {
		monitor.sweep(ctx)
		conn.MarkAlive()
	}

	_, ok := registry.Lookup("user1")
	require.True(t, ok)
	require.Equal(t, 3, transport.pings)
	require.False(t, transport.closed)
}

func TestLivenessMonitorDoesNotDoubleReportReleasedConnection(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()

	var dead []string
	monitor := NewLivenessMonitor(registry, time.Minute, func(ctx context.Context, userID string) {
		dead = append(dead, userID)
	})

	connA := NewConnection("a", &fakeTransport{})
	connB := NewConnection("b", &fakeTransport{})
	registry.Register(ctx, connA)
	registry.Register(ctx, connB)
	monitor.sweep(ctx)

	// A reader exit races the eviction sweep: the first release pulls the
	// other connection out from under the sweep's snapshot. The stale
	// eviction must not report that user a second time.
	other := map[string]*Connection{"a": connB, "b": connA}
	raced := false
	registry.OnRelease(func(ctx context.Context, userID string) {
		if raced {
			return
		}

		raced = true
		registry.Release(ctx, other[userID])
	})

	monitor.sweep(ctx)

	require.Len(t, dead, 1)
	require.Empty(t, registry.Snapshot())
}

func TestLivenessMonitorPingFailureIsNotEviction(t *testing.T) {
	ctx := context.Background()
	registry := NewSessionRegistry()
	monitor := NewLivenessMonitor(registry, time.Minute, nil)

	transport := &fakeTransport{pingErr: errors.New("use of closed connection")}
	registry.Register(ctx, NewConnection("user1", transport))

	monitor.sweep(ctx)

	// Still registered; the missing acknowledgment evicts next cycle.
	_, ok := registry.Lookup("user1")
	require.True(t, ok)
}
