package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 1 << 13
)

// Client pumps messages between a websocket connection and a pair of
// channels. Reads arrive on R until the connection drops; writes are
// queued on an internal buffer and never block the caller.
type Client struct {
	Conn *websocket.Conn
	R    chan []byte

	w         chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn) *Client {
	if conn == nil {
		return nil
	}

	c := &Client{
		Conn: conn,
		R:    make(chan []byte, 128),
		w:    make(chan []byte, 128),
		done: make(chan struct{}),
	}

	conn.SetReadLimit(maxMessageSize)

	go c.runReader()
	go c.runWriter()
	return c
}

// OnPong registers a callback invoked whenever the peer answers a ping
// control frame. It must be set before the first probe is sent.
func (c *Client) OnPong(f func()) {
	c.Conn.SetPongHandler(func(string) error {
		f()
		return nil
	})
}

func (c *Client) runReader() {
	defer close(c.R)

	for {
		t, msg, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		if t != websocket.TextMessage {
			continue
		}

		select {
		case c.R <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *Client) runWriter() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.w:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

func (c *Client) Write(msg []byte) error {
	select {
	case <-c.done:
		return errors.New("connection is closed")
	case c.w <- msg:
		return nil
	default:
		return errors.New("write buffer is full")
	}
}

// Ping sends a ping control frame. Control frames may be written
// concurrently with the writer pump.
func (c *Client) Ping() error {
	return c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.Conn.Close()
}
