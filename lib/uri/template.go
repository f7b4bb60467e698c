package uri

import (
	"fmt"
	"strings"
)

type segment struct {
	value string
	param bool
}

// Template is a compiled path template of literal segments and {name}
// placeholders. A trailing {name...} placeholder captures the whole
// remaining path.
type Template struct {
	raw      string
	segments []segment
	catchAll string
	literals int
}

func ParseTemplate(tpl string) (t *Template, err error) {

	t = &Template{raw: tpl}

	trimmed := strings.Trim(tpl, "/")
	if trimmed == "" {
		return
	}

	seen := map[string]bool{}

	split := strings.Split(trimmed, "/")
	for i, s := range split {

		if s == "" {
			err = fmt.Errorf("invalid template '%s': empty segment", tpl)
			return
		}

		isParam := strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
		if !isParam {
			if strings.ContainsAny(s, "{}") {
				err = fmt.Errorf("invalid template '%s': unbalanced braces in segment '%s'", tpl, s)
				return
			}
			t.segments = append(t.segments, segment{s, false})
			t.literals++
			continue
		}

		name := s[1 : len(s)-1]

		if strings.HasSuffix(name, "...") {
			name = strings.TrimSuffix(name, "...")
			if name == "" {
				err = fmt.Errorf("invalid template '%s': catch-all placeholder has no name", tpl)
				return
			}
			if i != len(split)-1 {
				err = fmt.Errorf("invalid template '%s': catch-all placeholder '%s' must be the last segment", tpl, name)
				return
			}
			if seen[name] {
				err = fmt.Errorf("invalid template '%s': placeholder '%s' used twice", tpl, name)
				return
			}
			t.catchAll = name
			continue
		}

		if name == "" || strings.ContainsAny(name, "{}") {
			err = fmt.Errorf("invalid template '%s': invalid placeholder '%s'", tpl, s)
			return
		}
		if seen[name] {
			err = fmt.Errorf("invalid template '%s': placeholder '%s' used twice", tpl, name)
			return
		}
		seen[name] = true

		t.segments = append(t.segments, segment{name, true})
	}

	return
}

func (t *Template) Raw() string {
	return t.raw
}

// String renders the canonical form of the template, one leading slash per
// segment, placeholders in braces.
func (t *Template) String() string {
	sb := strings.Builder{}
	for _, s := range t.segments {
		sb.WriteRune('/')
		if s.param {
			sb.WriteRune('{')
			sb.WriteString(s.value)
			sb.WriteRune('}')
		} else {
			sb.WriteString(s.value)
		}
	}
	if t.catchAll != "" {
		sb.WriteString("/{" + t.catchAll + "...}")
	}
	return sb.String()
}

// Shape renders the template with placeholder names erased. Two templates
// with equal shape match exactly the same paths, which makes shape the key
// for detecting conflicting registrations.
func (t *Template) Shape() string {
	sb := strings.Builder{}
	for _, s := range t.segments {
		sb.WriteRune('/')
		if s.param {
			sb.WriteString("{}")
		} else {
			sb.WriteString(s.value)
		}
	}
	if t.catchAll != "" {
		sb.WriteString("/{...}")
	}
	return sb.String()
}

func (t *Template) literalPrefix() (n int) {
	for _, s := range t.segments {
		if s.param {
			return
		}
		n++
	}
	return
}

func (t *Template) paramCount() int {
	n := len(t.segments) - t.literals
	if t.catchAll != "" {
		n++
	}
	return n
}

// Compare orders templates from more to less specific: more literal
// segments before the first placeholder win, then fewer placeholders, then
// more literal segments overall. Returns <0 when a is more specific, >0
// when b is, 0 on a tie.
func Compare(a, b *Template) int {
	if d := b.literalPrefix() - a.literalPrefix(); d != 0 {
		return d
	}
	if d := a.paramCount() - b.paramCount(); d != 0 {
		return d
	}
	return b.literals - a.literals
}
