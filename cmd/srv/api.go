package main

import (
	"net/http"

	"github.com/inklore/backend/internal/middleware"
	"github.com/inklore/backend/pkg/router"
	"github.com/inklore/backend/pkg/xcontext"
)

func (s *srv) runApi() error {
	cfg := xcontext.Configs(s.ctx).ApiServer
	xcontext.Logger(s.ctx).Infof("Starting api server on %s", cfg.Address())

	server := &http.Server{
		Addr:    cfg.Address(),
		Handler: s.loadRouter().Handler(),
	}

	return server.ListenAndServe()
}

func (s *srv) loadRouter() *router.Router {
	r := router.New(s.ctx)
	r.After(middleware.Logger())

	authed := r.Branch()
	authed.Before(middleware.NewAuthVerifier())

	router.GET(authed, "/getMyNotifications", s.notificationDomain.GetMyList)
	router.POST(authed, "/createNotification", s.notificationDomain.Create)
	router.POST(authed, "/readNotification", s.notificationDomain.Read)
	router.POST(authed, "/readAllNotifications", s.notificationDomain.ReadAll)
	router.POST(authed, "/deleteNotification", s.notificationDomain.Delete)

	return r
}
