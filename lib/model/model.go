package model

import (
	"fmt"
	"sort"

	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// Model is the compiled, immutable set of endpoint descriptors available
// for matching at one point of the resource hierarchy. Once Build returns
// it is never mutated, so concurrent dispatches share it without locking.
type Model struct {
	methods []*ResourceMethod
}

// Build compiles declarations into a model. It fails on the first invalid
// declaration and on conflicting registrations: two endpoints of the same
// kind and HTTP method whose templates match exactly the same paths.
func Build(decls []Declaration) (m *Model, err error) {

	m = &Model{}

	for _, d := range decls {
		var rm *ResourceMethod
		rm, err = NewResourceMethod(d.HTTPMethod, d.Path, d.Consumes, d.Produces, d.Invocable)
		if err != nil {
			m = nil
			return
		}
		m.methods = append(m.methods, rm)
	}

	// most specific first; stable, so declaration order breaks ties
	sort.SliceStable(m.methods, func(i, j int) bool {
		return dspURI.Compare(m.methods[i].pattern.Template(), m.methods[j].pattern.Template()) < 0
	})

	seen := map[string]*ResourceMethod{}
	for _, rm := range m.methods {
		key := string(rm.kind) + " " + rm.httpMethod + " " + rm.pattern.Template().Shape()
		if prev, ok := seen[key]; ok {
			err = fmt.Errorf("conflicting registrations: %s and %s match the same paths", prev, rm)
			m = nil
			return
		}
		seen[key] = rm
	}

	return
}

// Methods returns the descriptors in matching order.
func (m *Model) Methods() []*ResourceMethod {
	res := make([]*ResourceMethod, len(m.methods))
	copy(res, m.methods)
	return res
}

// Candidate is a descriptor whose pattern matched a path suffix, together
// with the captured variables and, for open patterns, the unconsumed
// remainder.
type Candidate struct {
	Method    *ResourceMethod
	Values    dspURI.Values
	Remaining string
}

// MatchPath evaluates every descriptor against the given path suffix and
// partitions the matches into exact consumers (dispatch candidates) and
// locators (descent candidates), each in specificity order.
func (m *Model) MatchPath(path string) (exact, locators []Candidate) {

	for _, rm := range m.methods {

		res, ok := rm.pattern.Match(path)
		if !ok {
			continue
		}

		c := Candidate{Method: rm, Values: res.Values, Remaining: res.Remaining}

		if rm.kind == KindSubResourceLocator {
			locators = append(locators, c)
		} else {
			exact = append(exact, c)
		}
	}

	return
}
