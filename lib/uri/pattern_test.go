package uri

import (
	"testing"
)

func mustTemplate(t *testing.T, tpl string) *Template {
	t.Helper()
	res, err := ParseTemplate(tpl)
	if err != nil {
		t.Fatalf("ParseTemplate(%q) failed: %v", tpl, err)
	}
	return res
}

func Test_ParseTemplate(t *testing.T) {

	invalid := []string{
		"/a//b",
		"/a/{",
		"/a/}b{",
		"/a/{}",
		"/a/{...}",
		"/{rest...}/b",
		"/{id}/{id}",
		"/{id}/{id...}",
	}

	for _, tpl := range invalid {
		t.Run(tpl, func(t *testing.T) {
			if _, err := ParseTemplate(tpl); err == nil {
				t.Errorf("expected error")
			}
		})
	}

	tpl := mustTemplate(t, "/items/{id}/tags/{tag...}")
	if tpl.String() != "/items/{id}/tags/{tag...}" {
		t.Errorf("unexpected canonical form: %s", tpl.String())
	}
	if tpl.Shape() != "/items/{}/tags/{...}" {
		t.Errorf("unexpected shape: %s", tpl.Shape())
	}
}

func Test_Pattern_exact(t *testing.T) {

	match := map[string]string{
		"/items":        "items",
		"/items/{id}":   "/items/42",
		"/{a}/{b}":      "x/y",
		"/a/{id}/b":     "/a/7/b/",
		"/files/{p...}": "/files/x/y/z",
	}

	noMatch := map[string]string{
		"/items":      "/items/42",
		"/items/{id}": "/items",
		"/a/{id}/b":   "/a/7/c",
		"/Items":      "/items",
	}

	for tpl, path := range match {
		t.Run(tpl+" "+path, func(t *testing.T) {
			p := NewPattern(mustTemplate(t, tpl), false)
			res, ok := p.Match(path)
			if !ok {
				t.Fatalf("expected match")
			}
			if res.Remaining != "" {
				t.Errorf("exact pattern left remainder '%s'", res.Remaining)
			}
		})
	}

	for tpl, path := range noMatch {
		t.Run(tpl+" "+path, func(t *testing.T) {
			p := NewPattern(mustTemplate(t, tpl), false)
			if _, ok := p.Match(path); ok {
				t.Errorf("expected no match")
			}
		})
	}
}

func Test_Pattern_open(t *testing.T) {

	p := NewPattern(mustTemplate(t, "/items/{id}"), true)

	res, ok := p.Match("/items/42/tags/blue")
	if !ok {
		t.Fatalf("expected match")
	}
	if res.Remaining != "tags/blue" {
		t.Errorf("expected remainder 'tags/blue', got '%s'", res.Remaining)
	}
	if res.Values.GetByKey("id") != "42" {
		t.Errorf("expected id=42, got '%s'", res.Values.GetByKey("id"))
	}

	res, ok = p.Match("/items/42")
	if !ok {
		t.Fatalf("expected match with zero remaining segments")
	}
	if res.Remaining != "" {
		t.Errorf("expected empty remainder, got '%s'", res.Remaining)
	}

	if _, ok = p.Match("/other/42"); ok {
		t.Errorf("expected no match")
	}
}

func Test_Pattern_endOfPath(t *testing.T) {

	p := EndOfPath()

	if _, ok := p.Match(""); !ok {
		t.Errorf("expected match on empty path")
	}
	if _, ok := p.Match("/"); !ok {
		t.Errorf("expected match on root path")
	}
	if _, ok := p.Match("/items"); ok {
		t.Errorf("expected no match on non-empty path")
	}
}

func Test_Pattern_captureOrder(t *testing.T) {

	p := NewPattern(mustTemplate(t, "/{a}/{b}/{c}"), false)

	res, ok := p.Match("/1/2/3")
	if !ok {
		t.Fatalf("expected match")
	}

	for i, want := range []string{"1", "2", "3"} {
		if got := res.Values.GetByIndex(i); got != want {
			t.Errorf("capture %d: expected '%s', got '%s'", i, want, got)
		}
	}
}

func Test_Compare(t *testing.T) {

	ordered := []string{
		"/items/all",
		"/items/{id}",
		"/{kind}/{id}",
	}

	for i := 0; i < len(ordered)-1; i++ {
		a, b := mustTemplate(t, ordered[i]), mustTemplate(t, ordered[i+1])
		if Compare(a, b) >= 0 {
			t.Errorf("expected '%s' more specific than '%s'", ordered[i], ordered[i+1])
		}
		if Compare(b, a) <= 0 {
			t.Errorf("expected '%s' less specific than '%s'", ordered[i+1], ordered[i])
		}
	}

	a, b := mustTemplate(t, "/items/{x}"), mustTemplate(t, "/items/{y}")
	if Compare(a, b) != 0 {
		t.Errorf("expected equal specificity")
	}
}
