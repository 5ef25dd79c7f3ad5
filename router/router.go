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

// Package router supplies a route table interface and the common types
// shared by its implementations.
package router

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidMethod is returned when registering a route for a method
// out of the supported set.
var ErrInvalidMethod = errors.New("invalid http method")

var methods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodDelete:  true,
	http.MethodPatch:   true,
	http.MethodOptions: true,
	http.MethodHead:    true,
}

// ValidMethod reports whether method is in the supported set, that's,
// GET, POST, PUT, DELETE, PATCH, OPTIONS or HEAD.
func ValidMethod(method string) bool { return methods[method] }

// Normalize returns path with at most one trailing slash stripped.
// The root path and the empty path are normalized to "/".
func Normalize(path string) string {
	if path == "" {
		return "/"
	}
	if _len := len(path); _len > 1 && path[_len-1] == '/' {
		path = path[:_len-1]
	}
	return path
}

// Route represents the information of a registered route.
type Route struct {
	Method  string
	Path    string
	Handler interface{}
}

func (r Route) String() string {
	return fmt.Sprintf("Route(method=%s, path=%s)", r.Method, r.Path)
}

// Redirect maps a normalized source path to a target location.
type Redirect struct {
	From      string
	To        string
	Permanent bool
}

// Result is the outcome of one Match call. At most one of Redirect and
// Handler is set; the zero Result means that nothing matched.
type Result struct {
	// Redirect is set when the path hit a registered redirect.
	Redirect *Redirect

	// Handler and Params are set when the path hit a registered route,
	// with Params holding the captured placeholder values by name.
	Handler interface{}
	Params  map[string]string
}

// Router is a route table based on the method and the path.
//
// The table must be frozen before matching begins: the implementations
// do not synchronize Add against Match.
type Router interface {
	// Routes returns all the registered routes in registration order.
	Routes() []Route

	// Add registers the handler for the method and the route template.
	//
	// Return ErrInvalidMethod and store nothing if the method is out of
	// the supported set. The template itself is never rejected.
	Add(method, path string, handler interface{}) error

	// AddRedirect registers a static redirect, which is checked before
	// the routes. from is normalized like a route template.
	AddRedirect(from, to string, permanent bool)

	// Match normalizes path, then looks up the first matching redirect
	// or, failing that, the first matching route of the method.
	Match(method, path string) Result
}
