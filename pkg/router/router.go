package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler; it may extend the context or abort
// the request by returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written; a handler error is available
// through xcontext.Error.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *chi.Mux
	ctx context.Context

	befores []MiddlewareFunc
	afters  []CloserFunc
}

func New(ctx context.Context) *Router {
	mux := chi.NewRouter()
	mux.Use(cors.AllowAll().Handler)

	return &Router{mux: mux, ctx: ctx}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		ctx:     r.ctx,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]CloserFunc{}, r.afters...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) After(c CloserFunc) {
	r.afters = append(r.afters, c)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Get(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Post(pattern, wrapHandler(r, http.MethodPost, handler))
}
