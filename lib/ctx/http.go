package ctx

import (
	"context"
	"net/http"
)

const (
	HttpHeaderWorkflow = "Workflow"
)

// WithRequest attaches the HTTP request being served and adopts the
// caller-supplied workflow id when the request carries one.
func (ctx Context) WithRequest(r *http.Request) (res Context) {

	res = Context{
		context.WithValue(
			ctx.Context,
			contextKeyRequest,
			r,
		),
	}

	if wid := r.Header.Get(HttpHeaderWorkflow); wid != "" {
		res = res.WithWorkflow(Workflow(wid))
	}

	return
}

func (ctx Context) Request() *http.Request {
	obj := ctx.Value(contextKeyRequest)
	if obj == nil {
		return nil
	}
	return obj.(*http.Request)
}
