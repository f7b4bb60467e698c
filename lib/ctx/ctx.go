package ctx

import (
	"context"

	"github.com/google/uuid"
)

// Context wraps a standard context and carries the workflow id, the
// current HTTP request and the structured logger used across the module.
type Context struct {
	context.Context
}

type contextKey int

const (
	contextKeyWorkflow contextKey = iota
	contextKeyRequest
	contextKeyLogger

	loggerKeyWorkflow = "workflow"
)

// Workflow identifies one logical unit of work across service calls.
type Workflow string

func New() (ctx Context) {
	return Wrap(context.Background())
}

func Wrap(parent context.Context) (ctx Context) {

	workflow := Workflow(uuid.NewString())

	ctx.Context = context.WithValue(parent, contextKeyWorkflow, workflow)

	ctx.Context = context.WithValue(ctx.Context, contextKeyLogger,
		defaultLogger().
			With(loggerKeyWorkflow, workflow),
	)

	return
}

func (ctx Context) Workflow() Workflow {
	obj := ctx.Value(contextKeyWorkflow)
	if obj == nil {
		return ""
	}
	return obj.(Workflow)
}

func (ctx Context) WithWorkflow(workflow Workflow) Context {
	res := Context{
		context.WithValue(
			ctx.Context,
			contextKeyWorkflow,
			workflow,
		),
	}
	return res.WithLogger(res.Logger().With(loggerKeyWorkflow, workflow))
}
