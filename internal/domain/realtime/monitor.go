package realtime

import (
	"context"
	"time"

	"github.com/inklore/backend/pkg/xcontext"
)

// LivenessMonitor probes every registered connection on a fixed period and
// evicts the ones that fail to acknowledge a full cycle. Transports do not
// reliably surface abrupt disconnects, so liveness is proven by round-trip.
type LivenessMonitor struct {
	registry *SessionRegistry
	interval time.Duration
	onDead   func(ctx context.Context, userID string)
}

func NewLivenessMonitor(
	registry *SessionRegistry,
	interval time.Duration,
	onDead func(ctx context.Context, userID string),
) *LivenessMonitor {
	return &LivenessMonitor{
		registry: registry,
		interval: interval,
		onDead:   onDead,
	}
}

// Run probes until ctx is cancelled.
func (m *LivenessMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *LivenessMonitor) sweep(ctx context.Context) {
	for _, conn := range m.registry.Snapshot() {
		if !conn.Alive() {
			// A stale release means the reader exit already reported this
			// connection; evicting it again would double-count the disconnect.
			removed := m.registry.Release(ctx, conn)
			_ = conn.Close()

			if removed {
				xcontext.Logger(ctx).Infof("Evicted dead connection of user %s", conn.UserID)

				if m.onDead != nil {
					m.onDead(ctx, conn.UserID)
				}
			}
			continue
		}

		// A failed ping is not an eviction signal on its own; the missing
		// acknowledgment evicts the connection at the next cycle.
		if err := conn.Probe(); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot probe connection of user %s: %v", conn.UserID, err)
		}
	}
}
