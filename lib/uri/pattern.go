package uri

import "strings"

// Pattern is a template bound to a consumption policy. Exact patterns
// require the whole remaining path to be consumed by the template; open
// patterns consume the template as a prefix and report the rest.
type Pattern struct {
	tpl  *Template
	open bool
}

func NewPattern(tpl *Template, open bool) Pattern {
	return Pattern{tpl: tpl, open: open}
}

// EndOfPath matches only an already fully consumed path. It consumes
// nothing and captures nothing.
func EndOfPath() Pattern {
	return Pattern{tpl: &Template{}}
}

func (p Pattern) Template() *Template {
	return p.tpl
}

func (p Pattern) IsOpen() bool {
	return p.open
}

// MatchResult carries the variables captured by a successful match and the
// part of the path the pattern left unconsumed.
type MatchResult struct {
	Values    Values
	Remaining string
}

func (p Pattern) Match(path string) (res MatchResult, ok bool) {

	segs := splitPath(path)

	if len(segs) < len(p.tpl.segments) {
		return
	}

	for i, s := range p.tpl.segments {
		if s.param {
			res.Values.Add(s.value, segs[i])
			continue
		}
		if s.value != segs[i] {
			res = MatchResult{}
			return
		}
	}

	rest := segs[len(p.tpl.segments):]

	if p.tpl.catchAll != "" {
		res.Values.Add(p.tpl.catchAll, strings.Join(rest, "/"))
		ok = true
		return
	}

	if len(rest) == 0 {
		ok = true
		return
	}

	if !p.open {
		res = MatchResult{}
		return
	}

	res.Remaining = strings.Join(rest, "/")
	ok = true
	return
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
