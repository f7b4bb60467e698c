package api

import (
	"net/http"
	"strings"

	dspAuth "github.com/sofmon/dispatch/lib/auth"
	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspModel "github.com/sofmon/dispatch/lib/model"
	dspRouting "github.com/sofmon/dispatch/lib/routing"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// Handler is what the adapter expects behind a resolved endpoint. The
// dispatch core keeps invocables opaque; the adapter narrows them here,
// at the transport boundary.
type Handler interface {
	ServeMatch(ctx dspCtx.Context, w http.ResponseWriter, r *http.Request, vars dspURI.Values)
}

// NewHandler serves a compiled model over HTTP. A nil check disables
// authorization.
func NewHandler(ctx dspCtx.Context, check dspAuth.Check, m *dspModel.Model) http.Handler {
	return &httpHandler{
		ctx:        ctx,
		dispatcher: dspRouting.NewDispatcher(),
		model:      m,
		check:      check,
	}
}

type httpHandler struct {
	ctx        dspCtx.Context
	dispatcher *dspRouting.Dispatcher
	model      *dspModel.Model
	check      dspAuth.Check
	logCalls   bool
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	ctx := h.ctx.WithRequest(r)

	if h.check != nil {
		_, err := h.check(r)
		switch {
		case err == nil:
			// pass
		case err == dspAuth.ErrMissingRequest:
			ServeError(ctx, w, http.StatusBadRequest, ErrorCodeBadRequest, "missing http request", err)
			return
		case err == dspAuth.ErrForbidden,
			err == dspAuth.ErrMissingAuthorizationHeader,
			err == dspAuth.ErrInvalidAuthorizationToken:
			ServeError(ctx, w, http.StatusForbidden, ErrorCodeForbidden, "missing or wrong authentication token", err)
			return
		default:
			ServeError(ctx, w, http.StatusUnauthorized, ErrorCodeUnauthorized, "unexpected error", err)
			return
		}
	}

	req, err := dspRouting.FromHTTP(r)
	if err != nil {
		ServeError(ctx, w, http.StatusBadRequest, ErrorCodeBadRequest, "unable to parse negotiation headers", err)
		return
	}

	res := h.dispatcher.Dispatch(ctx, h.model, req)

	if h.logCalls {
		logCall(ctx, r, res)
	}

	switch res.Kind {

	case dspRouting.ResultResolved:
		handler, ok := res.Method.Invocable().(Handler)
		if !ok {
			ServeError(ctx, w, http.StatusInternalServerError, ErrorCodeInternalError, "endpoint is not servable over HTTP", nil)
			return
		}
		handler.ServeMatch(ctx, w, r, res.Values)

	case dspRouting.ResultNotFound:
		ServeError(ctx, w, http.StatusNotFound, ErrorCodeNotFound, "endpoint not found", nil)

	case dspRouting.ResultMethodNotAllowed:
		w.Header().Set("Allow", strings.Join(res.Allowed, ", "))
		ServeError(ctx, w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed", nil)

	case dspRouting.ResultNotAcceptable:
		ServeError(ctx, w, http.StatusNotAcceptable, ErrorCodeNotAcceptable, "no acceptable representation", nil)

	case dspRouting.ResultUnsupportedMediaType:
		ServeError(ctx, w, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedMediaType, "unsupported request media type", nil)

	default:
		ServeError(ctx, w, http.StatusInternalServerError, ErrorCodeInternalError, "dispatch failed", res.Err)
	}
}

func logCall(ctx dspCtx.Context, r *http.Request, res dspRouting.Result) {

	logger := ctx.Logger()
	if logger == nil {
		return
	}

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"outcome", string(res.Kind),
	}
	if res.Method != nil {
		attrs = append(attrs, "endpoint", res.Method.String())
	}
	if res.Err != nil {
		attrs = append(attrs, "error", res.Err.Error())
	}

	logger.With(attrs...).Info("API call")
}
