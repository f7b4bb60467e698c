package media

import (
	"fmt"
	"mime"
	"sort"
	"strconv"
	"strings"
)

const wildcard = "*"

// MediaType is a parsed media type as it appears in Content-Type and Accept
// headers. Params carries every parameter including "q"; comparison helpers
// ignore parameters other than "q".
type MediaType struct {
	Type    string
	Subtype string
	Params  map[string]string
}

var (
	WildcardAny     = MediaType{Type: wildcard, Subtype: wildcard}
	ApplicationJSON = MediaType{Type: "application", Subtype: "json"}
	ApplicationXML  = MediaType{Type: "application", Subtype: "xml"}
	TextPlain       = MediaType{Type: "text", Subtype: "plain"}
	TextHTML        = MediaType{Type: "text", Subtype: "html"}
	TextXML         = MediaType{Type: "text", Subtype: "xml"}
	OctetStream     = MediaType{Type: "application", Subtype: "octet-stream"}
)

func New(mainType, subType string) MediaType {
	return MediaType{
		Type:    strings.ToLower(mainType),
		Subtype: strings.ToLower(subType),
	}
}

func Parse(s string) (mt MediaType, err error) {

	s = strings.TrimSpace(s)
	if s == "" {
		err = fmt.Errorf("empty media type")
		return
	}

	if s == wildcard {
		// bare "*" is a legacy alias for "*/*" used by some clients
		mt = WildcardAny
		return
	}

	name, params, err := mime.ParseMediaType(s)
	if err != nil {
		err = fmt.Errorf("invalid media type '%s': %w", s, err)
		return
	}

	split := strings.SplitN(name, "/", 2)
	if len(split) != 2 || split[0] == "" || split[1] == "" {
		err = fmt.Errorf("invalid media type '%s': missing subtype", s)
		return
	}

	mt.Type = split[0]
	mt.Subtype = split[1]
	if len(params) > 0 {
		mt.Params = params
	}

	return
}

// ParseList parses a comma-separated header value like Accept, preserving
// the order entries appear in.
func ParseList(header string) (res []MediaType, err error) {

	if strings.TrimSpace(header) == "" {
		return
	}

	for _, part := range strings.Split(header, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var mt MediaType
		mt, err = Parse(part)
		if err != nil {
			return
		}
		res = append(res, mt)
	}

	return
}

func (mt MediaType) String() string {
	return mime.FormatMediaType(mt.Type+"/"+mt.Subtype, mt.Params)
}

func (mt MediaType) IsWildcardType() bool {
	return mt.Type == wildcard
}

func (mt MediaType) IsWildcardSubtype() bool {
	return mt.Subtype == wildcard
}

// IsCompatible reports whether two media types match once wildcards are
// taken into account. Parameters are ignored.
func (mt MediaType) IsCompatible(other MediaType) bool {
	if mt.IsWildcardType() || other.IsWildcardType() {
		return true
	}
	if mt.Type != other.Type {
		return false
	}
	if mt.IsWildcardSubtype() || other.IsWildcardSubtype() {
		return true
	}
	return mt.Subtype == other.Subtype
}

// Specificity orders media types from full wildcard (0) through
// subtype wildcard (1) to a concrete type/subtype pair (2).
func (mt MediaType) Specificity() int {
	switch {
	case mt.IsWildcardType():
		return 0
	case mt.IsWildcardSubtype():
		return 1
	default:
		return 2
	}
}

// Weight returns the quality value of the "q" parameter, defaulting to 1
// and clamped to the [0,1] range the header syntax allows.
func (mt MediaType) Weight() float64 {
	q, ok := mt.Params["q"]
	if !ok {
		return 1
	}
	w, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return 1
	}
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}

// Sort orders a parsed Accept list by descending weight, then descending
// specificity, keeping header order among equals.
func Sort(list []MediaType) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Weight() != list[j].Weight() {
			return list[i].Weight() > list[j].Weight()
		}
		return list[i].Specificity() > list[j].Specificity()
	})
}
