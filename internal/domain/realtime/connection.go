package realtime

import "sync/atomic"

// Transport is the minimal surface of a live bidirectional connection. The
// registry never touches the underlying socket directly.
type Transport interface {
	Write(msg []byte) error
	Ping() error
	Close() error
}

// Connection binds an authenticated user to a transport and tracks whether
// the peer answered the latest liveness probe.
type Connection struct {
	UserID string

	transport Transport
	alive     atomic.Bool
}

func NewConnection(userID string, transport Transport) *Connection {
	c := &Connection{UserID: userID, transport: transport}
	c.alive.Store(true)
	return c
}

func (c *Connection) Alive() bool {
	return c.alive.Load()
}

// MarkAlive records a probe acknowledgment. Wire it to the transport's pong
// callback.
func (c *Connection) MarkAlive() {
	c.alive.Store(true)
}

// Probe clears the liveness flag and sends a ping. The connection is presumed
// dead if the flag is still down at the next monitor cycle.
func (c *Connection) Probe() error {
	c.alive.Store(false)
	return c.transport.Ping()
}

func (c *Connection) Write(msg []byte) error {
	return c.transport.Write(msg)
}

func (c *Connection) Close() error {
	return c.transport.Close()
}
