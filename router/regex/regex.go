// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package regex supplies a Router implementation based on an ordered list
// of compiled regular expressions, where the first registered pattern
// matching the path wins.
//
// The route template uses '/' as the segment separator and the bracket
// syntax "[name]" as a capturing placeholder, for example,
//
//	/users/[id]/posts/[slug]
//
// A placeholder matches one or more of "[A-Za-z0-9._-]", so it never
// crosses a segment separator.
package regex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xgfone/sail/router"
)

var placeholder = regexp.MustCompile(`\[([A-Za-z0-9._-]+)\]`)

type pattern struct {
	expr   *regexp.Regexp
	pnames []string
}

// compile translates the route template into an anchored regular expression
// plus the placeholder names in source order.
//
// Text outside a well-formed placeholder, an unmatched '[' included, is
// matched literally. Compiling never fails.
func compile(tmpl string) *pattern {
	tmpl = router.Normalize(tmpl)
	locs := placeholder.FindAllStringSubmatchIndex(tmpl, -1)
	pnames := make([]string, 0, len(locs))

	buf := new(strings.Builder)
	buf.WriteByte('^')
	last := 0
	for _, m := range locs {
		buf.WriteString(regexp.QuoteMeta(tmpl[last:m[0]]))
		buf.WriteString(`([A-Za-z0-9._-]+)`)
		pnames = append(pnames, tmpl[m[2]:m[3]])
		last = m[1]
	}
	buf.WriteString(regexp.QuoteMeta(tmpl[last:]))
	buf.WriteByte('$')

	return &pattern{expr: regexp.MustCompile(buf.String()), pnames: pnames}
}

// match reports whether the normalized path matches, with the captured
// values in placeholder order.
func (p *pattern) match(path string) (values []string, ok bool) {
	if gs := p.expr.FindStringSubmatch(path); gs != nil {
		return gs[1:], true
	}
	return nil, false
}

type route struct {
	path    string
	pattern *pattern
	handler interface{}
}

var _ router.Router = &Router{}

// Router is an insertion-ordered regex route table.
//
// Later registrations never replace earlier ones: a duplicate template is
// retained as an independent, shadowed candidate.
type Router struct {
	routes    map[string][]*route
	order     []router.Route
	redirects []router.Redirect
}

// NewRouter returns a new Router instance.
func NewRouter() *Router {
	return &Router{routes: make(map[string][]*route, 8)}
}

// Routes returns all the registered routes in registration order.
func (r *Router) Routes() []router.Route {
	return append([]router.Route{}, r.order...)
}

// Add registers the handler for the method and the route template.
func (r *Router) Add(method, path string, handler interface{}) error {
	if handler == nil {
		return fmt.Errorf("route handler must not be nil")
	}

	method = strings.ToUpper(method)
	if !router.ValidMethod(method) {
		return router.ErrInvalidMethod
	}

	path = router.Normalize(path)
	rt := &route{path: path, pattern: compile(path), handler: handler}
	r.routes[method] = append(r.routes[method], rt)
	r.order = append(r.order, router.Route{Method: method, Path: path, Handler: handler})
	return nil
}

// AddRedirect registers the redirect. When several redirects share the
// same source path, the first registered one wins.
func (r *Router) AddRedirect(from, to string, permanent bool) {
	r.redirects = append(r.redirects, router.Redirect{
		From:      router.Normalize(from),
		To:        to,
		Permanent: permanent,
	})
}

// Match looks up the redirect or route for the method and the path.
func (r *Router) Match(method, path string) (res router.Result) {
	path = router.Normalize(path)

	for i := range r.redirects {
		if r.redirects[i].From == path {
			res.Redirect = &r.redirects[i]
			return
		}
	}

	for _, rt := range r.routes[strings.ToUpper(method)] {
		if values, ok := rt.pattern.match(path); ok {
			params := make(map[string]string, len(values))
			for i, name := range rt.pattern.pnames {
				params[name] = values[i]
			}
			res.Handler = rt.handler
			res.Params = params
			return
		}
	}

	return
}
