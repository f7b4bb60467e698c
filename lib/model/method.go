package model

import (
	"fmt"
	"slices"
	"strings"

	dspMedia "github.com/sofmon/dispatch/lib/media"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// ResourceMethod is a classified, immutable endpoint descriptor. It is
// built once at model build time and shared read-only between concurrent
// dispatches.
type ResourceMethod struct {
	kind       Kind
	httpMethod string
	path       string
	pattern    dspURI.Pattern
	consumes   []dspMedia.MediaType
	produces   []dspMedia.MediaType
	invocable  Invocable
}

// NewResourceMethod classifies the declaration, compiles its pattern and
// captures the media type lists in declaration order. Construction is the
// only point of failure; a returned ResourceMethod is valid for the
// lifetime of its model.
func NewResourceMethod(httpMethod, path string, consumes, produces []dspMedia.MediaType, invocable Invocable) (rm *ResourceMethod, err error) {

	kind, err := Classify(httpMethod, path)
	if err != nil {
		return
	}

	pattern, err := patternFor(kind, path)
	if err != nil {
		return
	}

	if kind == KindSubResourceLocator {
		if _, ok := invocable.(Locator); !ok {
			err = fmt.Errorf("locator at '%s' must carry an invocable implementing Locator", path)
			return
		}
	}

	rm = &ResourceMethod{
		kind:       kind,
		httpMethod: strings.ToUpper(httpMethod),
		path:       path,
		pattern:    pattern,
		consumes:   slices.Clone(consumes),
		produces:   slices.Clone(produces),
		invocable:  invocable,
	}

	return
}

func (rm *ResourceMethod) Kind() Kind {
	return rm.kind
}

// HTTPMethod returns the uppercased HTTP method, or the empty string for
// a sub-resource locator.
func (rm *ResourceMethod) HTTPMethod() string {
	return rm.httpMethod
}

func (rm *ResourceMethod) Path() string {
	return rm.path
}

func (rm *ResourceMethod) Pattern() dspURI.Pattern {
	return rm.pattern
}

// ConsumedTypes returns a copy of the media types the endpoint accepts as
// request body, in declaration order. An empty list means any type.
func (rm *ResourceMethod) ConsumedTypes() []dspMedia.MediaType {
	return slices.Clone(rm.consumes)
}

// ProducedTypes returns a copy of the media types the endpoint can emit,
// in declaration order. An empty list means any type.
func (rm *ResourceMethod) ProducedTypes() []dspMedia.MediaType {
	return slices.Clone(rm.produces)
}

func (rm *ResourceMethod) Invocable() Invocable {
	return rm.invocable
}

func (rm *ResourceMethod) String() string {
	return fmt.Sprintf("%s{httpMethod=%s, path=%s, consumes=%v, produces=%v}",
		rm.kind, rm.httpMethod, rm.path, rm.consumes, rm.produces)
}
