package middleware

import (
	"context"

	"github.com/inklore/backend/pkg/errorx"
	"github.com/inklore/backend/pkg/router"
	"github.com/inklore/backend/pkg/xcontext"
)

// Logger returns a closer that records every request outcome.
func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)

		if err := xcontext.Error(ctx); err != nil {
			code := errorx.Unknown.Code
			if xerr, ok := err.(errorx.Error); ok {
				code = xerr.Code
			}

			xcontext.Logger(ctx).Warnf("%s %s failed with code %d: %v",
				req.Method, req.URL.Path, code, err)
			return
		}

		xcontext.Logger(ctx).Infof("%s %s", req.Method, req.URL.Path)
	}
}
