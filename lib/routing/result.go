package routing

import (
	dspModel "github.com/sofmon/dispatch/lib/model"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

type ResultKind string

const (
	// ResultResolved carries the selected endpoint and the variables
	// captured along the whole path.
	ResultResolved ResultKind = "resolved"

	// ResultNotFound means no endpoint matched the path.
	ResultNotFound ResultKind = "not_found"

	// ResultMethodNotAllowed means the path matched but not the HTTP
	// method; Allowed carries the methods declared at that path.
	ResultMethodNotAllowed ResultKind = "method_not_allowed"

	// ResultNotAcceptable means no surviving endpoint produces a type the
	// request accepts.
	ResultNotAcceptable ResultKind = "not_acceptable"

	// ResultUnsupportedMediaType means no surviving endpoint consumes the
	// request body's content type.
	ResultUnsupportedMediaType ResultKind = "unsupported_media_type"

	// ResultError carries a locator invocation or sub-model build failure.
	// A broken locator is never reported as not_found.
	ResultError ResultKind = "error"
)

type Result struct {
	Kind    ResultKind
	Method  *dspModel.ResourceMethod
	Values  dspURI.Values
	Allowed []string
	Err     error
}

func resolved(rm *dspModel.ResourceMethod, values dspURI.Values) Result {
	return Result{Kind: ResultResolved, Method: rm, Values: values}
}

func notFound() Result {
	return Result{Kind: ResultNotFound}
}

func methodNotAllowed(allowed []string) Result {
	return Result{Kind: ResultMethodNotAllowed, Allowed: allowed}
}

func notAcceptable() Result {
	return Result{Kind: ResultNotAcceptable}
}

func unsupportedMediaType() Result {
	return Result{Kind: ResultUnsupportedMediaType}
}

func failure(err error) Result {
	return Result{Kind: ResultError, Err: err}
}
