package realtime

import (
	"context"
	"sync"

	"github.com/inklore/backend/pkg/xcontext"
)

// SessionRegistry is the single source of truth for which users hold a live
// connection. Every other component reaches connections only through it.
type SessionRegistry struct {
	mutex sync.RWMutex
	conns map[string]*Connection

	onRegister []func(ctx context.Context, userID string)
	onRelease  []func(ctx context.Context, userID string)
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		conns: make(map[string]*Connection),
	}
}

// OnRegister adds a hook fired after a connection is registered. Hooks must
// be added before the registry is shared between goroutines.
func (r *SessionRegistry) OnRegister(hook func(ctx context.Context, userID string)) {
	r.onRegister = append(r.onRegister, hook)
}

// OnRelease adds a hook fired after a connection is removed.
func (r *SessionRegistry) OnRelease(hook func(ctx context.Context, userID string)) {
	r.onRelease = append(r.onRelease, hook)
}

// Register maps the user to conn, replacing any previous mapping. The
// replaced transport is not closed here; it is simply no longer reachable
// and will be cleaned up by its own reader or the liveness monitor.
func (r *SessionRegistry) Register(ctx context.Context, conn *Connection) {
	r.mutex.Lock()
	r.conns[conn.UserID] = conn
	r.mutex.Unlock()

	for _, hook := range r.onRegister {
		hook(ctx, conn.UserID)
	}
}

func (r *SessionRegistry) Lookup(userID string) (*Connection, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	conn, ok := r.conns[userID]
	return conn, ok
}

// Unregister removes whatever connection the user currently has. It is a
// no-op if the user is not registered.
func (r *SessionRegistry) Unregister(ctx context.Context, userID string) {
	r.mutex.Lock()
	_, ok := r.conns[userID]
	if ok {
		delete(r.conns, userID)
	}
	r.mutex.Unlock()

	if !ok {
		return
	}

	for _, hook := range r.onRelease {
		hook(ctx, userID)
	}
}

// Release removes conn only if it is still the registered connection for its
// user, so a stale reader or monitor snapshot cannot evict a replacement. It
// reports whether the connection was actually removed.
func (r *SessionRegistry) Release(ctx context.Context, conn *Connection) bool {
	r.mutex.Lock()
	current, ok := r.conns[conn.UserID]
	if ok && current == conn {
		delete(r.conns, conn.UserID)
	} else {
		ok = false
	}
	r.mutex.Unlock()

	if !ok {
		return false
	}

	for _, hook := range r.onRelease {
		hook(ctx, conn.UserID)
	}

	return true
}

// SendToUser writes the payload to the user's live connection. A missing
// connection or a failed write reports false; being offline is an expected
// outcome, not an error.
func (r *SessionRegistry) SendToUser(ctx context.Context, userID string, payload []byte) bool {
	conn, ok := r.Lookup(userID)
	if !ok {
		return false
	}

	if err := conn.Write(payload); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot write to connection of user %s: %v", userID, err)
		return false
	}

	return true
}

// Broadcast writes the payload to every live connection. Write failures are
// isolated per connection and never abort the broadcast.
func (r *SessionRegistry) Broadcast(ctx context.Context, payload []byte) {
	for _, conn := range r.Snapshot() {
		if err := conn.Write(payload); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot broadcast to user %s: %v", conn.UserID, err)
		}
	}
}

// Snapshot returns the currently registered connections.
func (r *SessionRegistry) Snapshot() []*Connection {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	conns := make([]*Connection, 0, len(r.conns))
	for _, conn := range r.conns {
		conns = append(conns, conn)
	}

	return conns
}
