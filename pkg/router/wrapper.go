package router

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/inklore/backend/pkg/errorx"
	"github.com/inklore/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	r *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(r.ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		resp, err := func() (*Response, error) {
			for _, m := range r.befores {
				newCtx, err := m(ctx)
				if err != nil {
					return nil, err
				}

				ctx = newCtx
			}

			var reqObj Request
			if err := bindRequest(req, method, &reqObj); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				return nil, errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			return handler(ctx, &reqObj)
		}()

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeResponse(ctx, w, newErrorResponse(err))
		} else {
			writeResponse(ctx, w, newResponse(resp))
		}

		for _, c := range r.afters {
			c(ctx)
		}
	}
}

func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return bindQuery(r, req)
	default:
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, req)
	}
}

// bindQuery fills the request object from url query parameters named after
// the json tags of its fields.
func bindQuery(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)

		case reflect.Int, reflect.Int32, reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return err
			}

			v.Field(i).SetInt(val)

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return err
			}

			v.Field(i).SetBool(val)
		}
	}

	return nil
}
