package model

import (
	"fmt"

	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// Kind classifies a resource method by the way it consumes the request
// path.
type Kind string

const (
	// KindResourceMethod is bound to an HTTP method and no sub-path; it
	// matches only an already fully consumed path.
	KindResourceMethod Kind = "resource_method"

	// KindSubResourceMethod is bound to an HTTP method and a sub-path
	// template that must consume the whole remaining path.
	KindSubResourceMethod Kind = "sub_resource_method"

	// KindSubResourceLocator is bound to a sub-path template but no HTTP
	// method; it consumes the template as a prefix and yields further
	// declarations for whatever path is left.
	KindSubResourceLocator Kind = "sub_resource_locator"
)

// Classify derives the kind from the HTTP method and path of a
// declaration. The combination of empty method and empty path is an
// invalid registration.
func Classify(httpMethod, path string) (k Kind, err error) {

	trivialPath := path == "" || path == "/"

	switch {
	case httpMethod != "" && trivialPath:
		k = KindResourceMethod
	case httpMethod != "":
		k = KindSubResourceMethod
	case path != "":
		k = KindSubResourceLocator
	default:
		err = fmt.Errorf("unknown resource method kind: HTTP method = '%s', path = '%s'", httpMethod, path)
	}

	return
}

// patternFor is the single place patterns are derived from a
// classification, so kind and pattern can never disagree.
func patternFor(k Kind, path string) (p dspURI.Pattern, err error) {

	if k == KindResourceMethod {
		p = dspURI.EndOfPath()
		return
	}

	tpl, err := dspURI.ParseTemplate(path)
	if err != nil {
		return
	}

	p = dspURI.NewPattern(tpl, k == KindSubResourceLocator)

	return
}
