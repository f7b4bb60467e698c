package routing

import (
	"net/http"
	"strings"

	dspMedia "github.com/sofmon/dispatch/lib/media"
)

// Request is the transport-free descriptor of an incoming request: the
// method, the path to match and the already-parsed negotiation headers.
// A body is assumed present iff ContentType is set.
type Request struct {
	Method      string
	Path        string
	Accept      []dspMedia.MediaType
	ContentType *dspMedia.MediaType
}

func NewRequest(method, path string) Request {
	return Request{
		Method: strings.ToUpper(method),
		Path:   path,
	}
}

func (r Request) WithAccept(types ...dspMedia.MediaType) Request {
	r.Accept = types
	return r
}

func (r Request) WithContentType(mt dspMedia.MediaType) Request {
	r.ContentType = &mt
	return r
}

// FromHTTP builds a request descriptor from an HTTP request, parsing the
// Accept and Content-Type headers. Malformed headers are a caller error,
// not a dispatch outcome.
func FromHTTP(r *http.Request) (req Request, err error) {

	req = NewRequest(r.Method, r.URL.Path)

	req.Accept, err = dspMedia.ParseList(r.Header.Get("Accept"))
	if err != nil {
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		var mt dspMedia.MediaType
		mt, err = dspMedia.Parse(ct)
		if err != nil {
			return
		}
		req.ContentType = &mt
	}

	return
}
