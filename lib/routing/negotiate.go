package routing

import (
	"slices"

	dspMedia "github.com/sofmon/dispatch/lib/media"
	dspModel "github.com/sofmon/dispatch/lib/model"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

// negotiate ranks method-filtered candidates: a request with a body must
// be consumable, then the best produced-type overlap with the Accept list
// wins. Candidate order is already specificity-then-declaration order, so
// on a full tie the first declared endpoint is selected.
func negotiate(req Request, cands []dspModel.Candidate, captured dspURI.Values) Result {

	if req.ContentType != nil {
		var kept []dspModel.Candidate
		for _, c := range cands {
			if consumes(c.Method, *req.ContentType) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return unsupportedMediaType()
		}
		cands = kept
	}

	accept := slices.Clone(req.Accept)
	if len(accept) == 0 {
		accept = []dspMedia.MediaType{dspMedia.WildcardAny}
	}
	dspMedia.Sort(accept)

	var (
		best      dspModel.Candidate
		bestScore score
		found     bool
	)

	for _, c := range cands {
		s, ok := produces(c.Method, accept)
		if !ok {
			continue
		}
		if !found || s.beats(bestScore) {
			best, bestScore, found = c, s, true
		}
	}

	if !found {
		return notAcceptable()
	}

	values := append(slices.Clone(captured), best.Values...)

	return resolved(best.Method, values)
}

// consumes reports whether the endpoint accepts the request content type.
// An endpoint declaring no consumed types accepts anything.
func consumes(rm *dspModel.ResourceMethod, ct dspMedia.MediaType) bool {

	declared := rm.ConsumedTypes()
	if len(declared) == 0 {
		return true
	}

	for _, mt := range declared {
		if mt.IsCompatible(ct) {
			return true
		}
	}

	return false
}

// score orders produced-type matches: higher client quality first, then
// the more specific Accept entry, then the more specific produced type.
type score struct {
	weight   float64
	accSpec  int
	prodSpec int
}

func (s score) beats(o score) bool {
	if s.weight != o.weight {
		return s.weight > o.weight
	}
	if s.accSpec != o.accSpec {
		return s.accSpec > o.accSpec
	}
	return s.prodSpec > o.prodSpec
}

// produces returns the best score across all pairs of Accept entries and
// declared produced types. Accept entries with q=0 exclude rather than
// match. Strict comparison keeps the first declared type on ties.
func produces(rm *dspModel.ResourceMethod, accept []dspMedia.MediaType) (best score, ok bool) {

	declared := rm.ProducedTypes()
	if len(declared) == 0 {
		declared = []dspMedia.MediaType{dspMedia.WildcardAny}
	}

	for _, acc := range accept {
		if acc.Weight() == 0 {
			continue
		}
		for _, p := range declared {
			if !acc.IsCompatible(p) {
				continue
			}
			s := score{acc.Weight(), acc.Specificity(), p.Specificity()}
			if !ok || s.beats(best) {
				best, ok = s, true
			}
		}
	}

	return
}
