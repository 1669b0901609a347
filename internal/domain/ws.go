package domain

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/inklore/backend/internal/domain/realtime"
	"github.com/inklore/backend/pkg/errorx"
	"github.com/inklore/backend/pkg/ws"
	"github.com/inklore/backend/pkg/xcontext"
)

const (
	closeMissingToken = 4001
	closeInvalidToken = 4002
)

type WsDomain interface {
	Serve(ctx context.Context, conn *websocket.Conn) error
}

type wsDomain struct {
	registry    *realtime.SessionRegistry
	chatRouter  *realtime.ChatRouter
	coordinator *realtime.ReconnectCoordinator
}

func NewWsDomain(
	registry *realtime.SessionRegistry,
	chatRouter *realtime.ChatRouter,
	coordinator *realtime.ReconnectCoordinator,
) *wsDomain {
	return &wsDomain{
		registry:    registry,
		chatRouter:  chatRouter,
		coordinator: coordinator,
	}
}

// Serve authenticates the upgraded connection, registers it, then pumps
// inbound frames into the chat router until the connection drops. The token
// travels in the query string because browser websocket clients cannot set
// request headers.
func (d *wsDomain) Serve(ctx context.Context, conn *websocket.Conn) error {
	token := xcontext.HTTPRequest(ctx).URL.Query().Get("token")
	if token == "" {
		closeWith(conn, closeMissingToken, "missing token")
		return errorx.New(errorx.Unauthenticated, "Require an access token")
	}

	accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
		closeWith(conn, closeInvalidToken, "invalid token")
		return errorx.New(errorx.Unauthenticated, "Invalid access token")
	}

	client := ws.NewClient(conn)
	connection := realtime.NewConnection(accessToken.ID, client)
	client.OnPong(connection.MarkAlive)

	d.registry.Register(ctx, connection)
	xcontext.Logger(ctx).Infof("User %s connected", accessToken.ID)

	defer func() {
		// A stale release means a replacement took over; only a real
		// disconnect starts the reconnection schedule.
		if d.registry.Release(ctx, connection) {
			d.coordinator.OnDisconnected(ctx, accessToken.ID)
		}

		_ = client.Close()
		xcontext.Logger(ctx).Infof("User %s disconnected", accessToken.ID)
	}()

	for msg := range client.R {
		d.chatRouter.Route(ctx, accessToken.ID, msg)
	}

	return nil
}

func closeWith(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	_ = conn.Close()
}
