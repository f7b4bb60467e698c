package model

import (
	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspMedia "github.com/sofmon/dispatch/lib/media"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// Invocable is the opaque handle to the code behind an endpoint. The
// dispatch core never calls it for resource and sub-resource methods; it
// only carries the reference through for the surrounding server. Locator
// endpoints are the exception and their invocable must implement Locator.
type Invocable any

// Locator is the single capability the core requires from a sub-resource
// locator: given the variables its template captured, it yields the
// declarations of the sub-resource the remaining path is matched against.
// The call may block on I/O; the context carries cancellation.
type Locator interface {
	Locate(ctx dspCtx.Context, vars dspURI.Values) ([]Declaration, error)
}

// Declaration is the raw endpoint tuple produced by a discovery service
// or a locator, before classification and pattern compilation.
type Declaration struct {
	HTTPMethod string
	Path       string
	Consumes   []dspMedia.MediaType
	Produces   []dspMedia.MediaType
	Invocable  Invocable
}
