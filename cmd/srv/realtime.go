package main

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/inklore/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1 << 10,
	WriteBufferSize: 1 << 10,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *srv) runRealtime(ctx context.Context) error {
	cfg := xcontext.Configs(s.ctx).WsServer
	xcontext.Logger(s.ctx).Infof("Starting websocket server on %s", cfg.Address())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWs)

	server := &http.Server{Addr: cfg.Address(), Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.monitor.Run(ctx)
		return ctx.Err()
	})
	g.Go(server.ListenAndServe)

	return g.Wait()
}

func (s *srv) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		xcontext.Logger(s.ctx).Debugf("Cannot upgrade connection: %v", err)
		return
	}

	ctx := xcontext.WithHTTPRequest(s.ctx, r)
	if err := s.wsDomain.Serve(ctx, conn); err != nil {
		xcontext.Logger(ctx).Debugf("Websocket session ended with error: %v", err)
	}
}
