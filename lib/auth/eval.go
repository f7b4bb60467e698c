package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	dspURI "github.com/sofmon/dispatch/lib/uri"
)

var (
	ErrForbidden = errors.New("authenticated user has no permission to access the requested resource")
)

// Action is a "METHOD /path" rule; the path part is a template in the
// dispatch syntax, so "{id}" and a trailing "{rest...}" work as they do
// for endpoints. "{any}" as the method matches every method.
type Action string

type Actions []Action

const MethodAny = "{any}"

func (a Action) MethodPath() (method, resource string, err error) {
	methodPath := strings.SplitN(string(a), " ", 2)
	if len(methodPath) != 2 {
		err = fmt.Errorf("invalid action: %s", a)
		return
	}

	method = methodPath[0]
	if method != MethodAny {
		method = strings.ToUpper(method)
	}
	resource = methodPath[1]

	return
}

// Policy grants role holders their actions; public actions need no token.
type Policy struct {
	Roles  map[Role]Actions `json:"roles"`
	Public Actions          `json:"public"`
}

type allowedAction struct {
	method  string
	pattern dspURI.Pattern
	role    Role
}

type allowedActions []allowedAction

func (aa allowedActions) match(method, path string, roles Roles, public bool) bool {
	for _, a := range aa {
		if a.method != MethodAny && a.method != method {
			continue
		}
		if _, ok := a.pattern.Match(path); !ok {
			continue
		}
		if public || roles.Has(a.role) {
			return true
		}
	}
	return false
}

func compileAction(a Action, role Role) (res allowedAction, err error) {

	method, resource, err := a.MethodPath()
	if err != nil {
		return
	}

	tpl, err := dspURI.ParseTemplate(resource)
	if err != nil {
		err = fmt.Errorf("invalid action '%s': %w", a, err)
		return
	}

	res = allowedAction{
		method:  method,
		pattern: dspURI.NewPattern(tpl, false),
		role:    role,
	}

	return
}

// Check verifies that an HTTP request is allowed, returning the claims it
// carried. Public actions pass with empty claims.
type Check func(r *http.Request) (Claims, error)

func NewCheck(policy Policy) (check Check, err error) {

	var (
		granted allowedActions
		public  allowedActions
	)

	for role, actions := range policy.Roles {
		for _, a := range actions {
			var aa allowedAction
			aa, err = compileAction(a, role)
			if err != nil {
				return
			}
			granted = append(granted, aa)
		}
	}

	for _, a := range policy.Public {
		var aa allowedAction
		aa, err = compileAction(a, "")
		if err != nil {
			return
		}
		public = append(public, aa)
	}

	check = func(r *http.Request) (Claims, error) {

		if r == nil {
			return Claims{}, ErrMissingRequest
		}

		if public.match(r.Method, r.URL.Path, nil, true) {
			return Claims{}, nil
		}

		claims, err := DecodeHTTPRequestClaims(r)
		if err != nil {
			return Claims{}, err
		}

		if granted.match(r.Method, r.URL.Path, claims.Roles, false) {
			return claims, nil
		}

		return claims, ErrForbidden
	}

	return
}
