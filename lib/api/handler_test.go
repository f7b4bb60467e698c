package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspMedia "github.com/sofmon/dispatch/lib/media"
	dspModel "github.com/sofmon/dispatch/lib/model"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

type echoHandler struct {
	name string
}

func (h echoHandler) ServeMatch(ctx dspCtx.Context, w http.ResponseWriter, r *http.Request, vars dspURI.Values) {
	ServeJSON(w, map[string]string{
		"endpoint": h.name,
		"id":       vars.GetByKey("id"),
	})
}

type itemsLocator struct{}

func (l itemsLocator) Locate(ctx dspCtx.Context, vars dspURI.Values) ([]dspModel.Declaration, error) {
	return []dspModel.Declaration{
		{
			HTTPMethod: "GET",
			Produces:   []dspMedia.MediaType{dspMedia.ApplicationJSON},
			Invocable:  echoHandler{name: "item"},
		},
	}, nil
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	m, err := dspModel.Build([]dspModel.Declaration{
		{
			HTTPMethod: "GET",
			Path:       "/ping",
			Produces:   []dspMedia.MediaType{dspMedia.ApplicationJSON},
			Invocable:  echoHandler{name: "ping"},
		},
		{
			HTTPMethod: "POST",
			Path:       "/items",
			Consumes:   []dspMedia.MediaType{dspMedia.ApplicationJSON},
			Produces:   []dspMedia.MediaType{dspMedia.ApplicationJSON},
			Invocable:  echoHandler{name: "create"},
		},
		{
			HTTPMethod: "GET",
			Path:       "/xml-only",
			Produces:   []dspMedia.MediaType{dspMedia.TextXML},
			Invocable:  echoHandler{name: "xml"},
		},
		{
			HTTPMethod: "GET",
			Path:       "/broken",
			Invocable:  struct{}{}, // does not implement Handler
		},
		{
			Path:      "/items/{id}",
			Invocable: itemsLocator{},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return NewHandler(dspCtx.New(), nil, m)
}

func do(t *testing.T, h http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func Test_Handler_resolved(t *testing.T) {

	h := testHandler(t)

	w := do(t, h, "GET", "/ping", map[string]string{"Accept": "application/json"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["endpoint"] != "ping" {
		t.Errorf("unexpected body: %v", body)
	}
}

func Test_Handler_locator(t *testing.T) {

	h := testHandler(t)

	w := do(t, h, "GET", "/items/42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["endpoint"] != "item" || body["id"] != "42" {
		t.Errorf("unexpected body: %v", body)
	}
}

func Test_Handler_outcomes(t *testing.T) {

	h := testHandler(t)

	type expectation struct {
		method  string
		path    string
		headers map[string]string
		status  int
		code    ErrorCode
	}

	cases := map[string]expectation{
		"not found": {
			method: "GET", path: "/nope",
			status: http.StatusNotFound, code: ErrorCodeNotFound,
		},
		"method not allowed": {
			method: "DELETE", path: "/ping",
			status: http.StatusMethodNotAllowed, code: ErrorCodeMethodNotAllowed,
		},
		"not acceptable": {
			method: "GET", path: "/xml-only",
			headers: map[string]string{"Accept": "application/json"},
			status:  http.StatusNotAcceptable, code: ErrorCodeNotAcceptable,
		},
		"unsupported media type": {
			method: "POST", path: "/items",
			headers: map[string]string{"Content-Type": "text/plain"},
			status:  http.StatusUnsupportedMediaType, code: ErrorCodeUnsupportedMediaType,
		},
		"bad accept header": {
			method: "GET", path: "/ping",
			headers: map[string]string{"Accept": "no-slash"},
			status:  http.StatusBadRequest, code: ErrorCodeBadRequest,
		},
		"unservable endpoint": {
			method: "GET", path: "/broken",
			status: http.StatusInternalServerError, code: ErrorCodeInternalError,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, h, c.method, c.path, c.headers)
			if w.Code != c.status {
				t.Fatalf("expected %d, got %d: %s", c.status, w.Code, w.Body.String())
			}
			var apiErr Error
			if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if apiErr.Code != c.code {
				t.Errorf("expected code %s, got %s", c.code, apiErr.Code)
			}
		})
	}
}

func Test_Handler_allowHeader(t *testing.T) {

	h := testHandler(t)

	w := do(t, h, "PUT", "/items", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != "POST" {
		t.Errorf("expected Allow header 'POST', got '%s'", allow)
	}
}

func Test_ErrorHasCode(t *testing.T) {

	ctx := dspCtx.New()

	err := NewError(ctx, http.StatusNotFound, ErrorCodeNotFound, "gone", nil)
	if !ErrorHasCode(err, ErrorCodeNotFound) {
		t.Errorf("expected code match")
	}
	if ErrorHasCode(err, ErrorCodeForbidden) {
		t.Errorf("expected code mismatch")
	}
	if ErrorHasCode(nil, ErrorCodeNotFound) {
		t.Errorf("expected false for nil error")
	}
}
