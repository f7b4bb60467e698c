package media

import (
	"testing"
)

func Test_Parse(t *testing.T) {

	valid := map[string]MediaType{
		"application/json":                 ApplicationJSON,
		"  text/plain ":                    TextPlain,
		"*/*":                              WildcardAny,
		"*":                                WildcardAny,
		"text/*":                           {Type: "text", Subtype: "*"},
		"Application/JSON":                 ApplicationJSON,
		"application/json; q=0.8":          {Type: "application", Subtype: "json", Params: map[string]string{"q": "0.8"}},
		"text/plain; charset=utf-8; q=0.5": {Type: "text", Subtype: "plain", Params: map[string]string{"charset": "utf-8", "q": "0.5"}},
	}

	invalid := []string{
		"",
		"   ",
		"application",
		"application/",
		"/json",
		"application/json; q",
	}

	for in, want := range valid {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Type != want.Type || got.Subtype != want.Subtype {
				t.Errorf("expected %s/%s, got %s/%s", want.Type, want.Subtype, got.Type, got.Subtype)
			}
			for k, v := range want.Params {
				if got.Params[k] != v {
					t.Errorf("expected param %s=%s, got %s", k, v, got.Params[k])
				}
			}
		})
	}

	for _, in := range invalid {
		t.Run("invalid:"+in, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func Test_ParseList(t *testing.T) {

	list, err := ParseList("text/html, application/json;q=0.9, */*;q=0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	if list[0].Subtype != "html" || list[1].Subtype != "json" || list[2].Subtype != "*" {
		t.Errorf("header order not preserved: %v", list)
	}

	list, err = ParseList("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %v", list)
	}
}

func Test_IsCompatible(t *testing.T) {

	compatible := map[string][2]MediaType{
		"exact":               {ApplicationJSON, ApplicationJSON},
		"full wildcard":       {WildcardAny, TextPlain},
		"subtype wildcard":    {{Type: "text", Subtype: "*"}, TextHTML},
		"wildcard right side": {TextHTML, {Type: "text", Subtype: "*"}},
		"both full wildcard":  {WildcardAny, WildcardAny},
	}

	incompatible := map[string][2]MediaType{
		"different type":      {ApplicationJSON, TextPlain},
		"different subtype":   {TextPlain, TextHTML},
		"wildcard wrong type": {{Type: "text", Subtype: "*"}, ApplicationJSON},
		"xml is not json":     {ApplicationXML, ApplicationJSON},
	}

	for name, pair := range compatible {
		t.Run(name, func(t *testing.T) {
			if !pair[0].IsCompatible(pair[1]) {
				t.Errorf("expected %s compatible with %s", pair[0], pair[1])
			}
		})
	}

	for name, pair := range incompatible {
		t.Run(name, func(t *testing.T) {
			if pair[0].IsCompatible(pair[1]) {
				t.Errorf("expected %s not compatible with %s", pair[0], pair[1])
			}
		})
	}
}

func Test_Weight(t *testing.T) {

	weights := map[string]float64{
		"application/json":       1,
		"application/json;q=0.5": 0.5,
		"application/json;q=0":   0,
		"application/json;q=2":   1,
		"application/json;q=-1":  0,
	}

	for in, want := range weights {
		t.Run(in, func(t *testing.T) {
			mt, err := Parse(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mt.Weight(); got != want {
				t.Errorf("expected weight %v, got %v", want, got)
			}
		})
	}
}

func Test_Sort(t *testing.T) {

	list, err := ParseList("*/*;q=0.1, text/*;q=0.9, text/html;q=0.9, application/json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Sort(list)

	want := []string{"application/json", "text/html", "text/*", "*/*"}
	for i, w := range want {
		got := list[i].Type + "/" + list[i].Subtype
		if got != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got)
		}
	}
}
