package routing

import (
	"fmt"
	"slices"

	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspModel "github.com/sofmon/dispatch/lib/model"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// DefaultMaxDepth bounds locator descent so a cyclic resource hierarchy
// fails with a structured error instead of recursing forever.
const DefaultMaxDepth = 16

// Dispatcher resolves request descriptors against a model. It holds no
// per-request state; one dispatcher serves concurrent dispatches.
type Dispatcher struct {
	MaxDepth int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{MaxDepth: DefaultMaxDepth}
}

// Dispatch walks the path against the model, descending through locators
// on an explicit work list, then filters by HTTP method and ranks the
// survivors by media type compatibility. Given the same model and request
// it always returns the same result.
func (d *Dispatcher) Dispatch(ctx dspCtx.Context, m *dspModel.Model, req Request) Result {

	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var (
		suffix   = req.Path
		current  = m
		captured dspURI.Values
	)

	for depth := 0; ; depth++ {

		if depth > maxDepth {
			return failure(fmt.Errorf("locator descent exceeded %d levels while matching '%s'", maxDepth, req.Path))
		}

		exact, locators := current.MatchPath(suffix)

		// exact consumers win over locator descent at the same hop
		if len(exact) > 0 {
			return d.finish(req, exact, captured)
		}

		if len(locators) == 0 {
			return notFound()
		}

		// the most specific matching locator resolves the rest of the path
		loc := locators[0]

		if err := ctx.Err(); err != nil {
			return failure(err)
		}

		locator, ok := loc.Method.Invocable().(dspModel.Locator)
		if !ok {
			// guarded at construction; kept as a safety net for models
			// assembled outside Build
			return failure(fmt.Errorf("locator at '%s' does not implement Locator", loc.Method.Path()))
		}

		decls, err := locator.Locate(ctx, loc.Values)
		if err != nil {
			return failure(fmt.Errorf("locator at '%s' failed: %w", loc.Method.Path(), err))
		}

		sub, err := dspModel.Build(decls)
		if err != nil {
			return failure(fmt.Errorf("locator at '%s' produced an invalid sub-resource: %w", loc.Method.Path(), err))
		}

		captured = append(captured, loc.Values...)
		suffix = loc.Remaining
		current = sub
	}
}

// finish applies the method filter and content negotiation to the exact
// consumers of a fully matched path.
func (d *Dispatcher) finish(req Request, exact []dspModel.Candidate, captured dspURI.Values) Result {

	var (
		allowed []string
		matched []dspModel.Candidate
	)

	for _, c := range exact {
		if !slices.Contains(allowed, c.Method.HTTPMethod()) {
			allowed = append(allowed, c.Method.HTTPMethod())
		}
		if c.Method.HTTPMethod() == req.Method {
			matched = append(matched, c)
		}
	}

	if len(matched) == 0 {
		return methodNotAllowed(allowed)
	}

	return negotiate(req, matched, captured)
}
