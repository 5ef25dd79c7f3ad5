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

// Package sail supplies the request-dispatch core of a minimal web toolkit:
// a route table with placeholder patterns and static redirects, an ordered
// middleware chain with short-circuit support, and an exception resolver
// converting every runtime failure into a response action.
package sail

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/xgfone/sail/fault"
	"github.com/xgfone/sail/router"
	"github.com/xgfone/sail/router/regex"
)

// ExceptionHandler converts the runtime failure err into a response action
// through the Context.
type ExceptionHandler func(c *Context, err error) error

// ErrInvalidFaultKind is returned when registering an exception handler
// for a nil fault kind.
var ErrInvalidFaultKind = errors.New("invalid fault kind")

// RouteError represents an error when registering a route.
type RouteError struct {
	Method string
	Path   string
	Err    error
}

func (re RouteError) Error() string {
	return fmt.Sprintf("%s: method=%s, path=%s", re.Err, re.Method, re.Path)
}

// Unwrap unwraps the inner error.
func (re RouteError) Unwrap() error { return re.Err }

// routeHandler is what the route table stores for one route.
type routeHandler struct {
	handler     Handler
	middlewares []Middleware
}

// Sail is the request dispatcher of the toolkit.
//
// All the registrations must be finished before the first Dispatch call.
// After that, the tables are read-only and Dispatch may be called
// concurrently for different requests.
type Sail struct {
	// Logger is used to log the dispatch failures, which must not be nil.
	Logger Logger

	router      router.Router
	middlewares []Middleware
	notFound    Handler
	faults      map[*fault.Kind]ExceptionHandler

	ctxPool sync.Pool
}

// New returns a new Sail with the regex route table, the default not-found
// handler and the universal exception handler for fault.Base.
func New() *Sail {
	s := &Sail{
		Logger:   NewLoggerFromWriter(os.Stderr, ""),
		router:   regex.NewRouter(),
		notFound: NotFoundHandler(),
		faults:   make(map[*fault.Kind]ExceptionHandler, 4),
	}
	s.faults[fault.Base] = handleFaultDefault
	s.ctxPool.New = func() interface{} { return NewContext() }
	return s
}

// handleFaultDefault is the universal exception handler installed for
// fault.Base, which responds 500 with no payload.
func handleFaultDefault(c *Context, err error) error {
	if !c.IsResponded() {
		return c.NoContent(http.StatusInternalServerError)
	}
	return nil
}

//----------------------------------------------------------------------------
// Registration
//----------------------------------------------------------------------------

// Use appends the global middlewares, which run, in registration order,
// before the route-scoped ones for every matched route, and also around
// the not-found handler.
func (s *Sail) Use(middlewares ...Middleware) {
	s.middlewares = append(s.middlewares, middlewares...)
}

// SetNotFoundHandler replaces the handler of the dispatches matching no
// redirect and no route.
func (s *Sail) SetNotFoundHandler(h Handler) {
	if h != nil {
		s.notFound = h
	}
}

// Register registers the handler for the method and the route template,
// with the optional route-scoped middlewares.
//
// The template is never validated: a duplicate one is retained as an
// independent, shadowed candidate, and malformed placeholder brackets
// are matched literally.
func (s *Sail) Register(method, path string, handler Handler,
	middlewares ...Middleware) error {
	if handler == nil {
		return RouteError{Method: method, Path: path,
			Err: errors.New("handler must not be nil")}
	}

	rh := routeHandler{handler: handler, middlewares: middlewares}
	if err := s.router.Add(method, path, rh); err != nil {
		return RouteError{Method: method, Path: path, Err: err}
	}
	return nil
}

// RegisterRedirect registers the static redirect from the source path to
// the target location, which is checked before the routes.
func (s *Sail) RegisterRedirect(from, to string, permanent bool) {
	s.router.AddRedirect(from, to, permanent)
}

// RegisterExceptionHandler registers the handler for the failure kind,
// silently replacing the previous one. The handler of fault.Base can be
// replaced but never removed.
func (s *Sail) RegisterExceptionHandler(kind *fault.Kind,
	handler ExceptionHandler) error {
	if kind == nil {
		return ErrInvalidFaultKind
	} else if handler == nil {
		return errors.New("exception handler must not be nil")
	}
	s.faults[kind] = handler
	return nil
}

// Routes returns the information of all the registered routes in
// registration order, the shadowed duplicates included.
func (s *Sail) Routes() []router.Route { return s.router.Routes() }

// Router returns the underlying route table.
func (s *Sail) Router() router.Router { return s.router }

//----------------------------------------------------------------------------
// Context pool
//----------------------------------------------------------------------------

// AcquireContext gets a Context from the pool.
func (s *Sail) AcquireContext() *Context {
	return s.ctxPool.Get().(*Context)
}

// ReleaseContext resets the Context and puts it back into the pool.
func (s *Sail) ReleaseContext(c *Context) { c.Reset(); s.ctxPool.Put(c) }

//----------------------------------------------------------------------------
// Dispatch
//----------------------------------------------------------------------------

// Dispatch runs the handler selected by the method and the path, with the
// middlewares composed around it, and returns the terminal response action.
//
// Any failure raised by a middleware or a handler, a panic included, is
// caught exactly once here and converted into an action by the registered
// exception handlers, so Dispatch always returns an action.
func (s *Sail) Dispatch(method, path string, c *Context) Action {
	c.method = strings.ToUpper(method)
	c.path = router.Normalize(path)
	if c.logger == nil {
		c.logger = s.Logger
	}

	if err := s.dispatch(c); err != nil {
		s.resolveFault(c, err)
	}
	if !c.IsResponded() {
		c.NoContent(http.StatusOK)
	}
	return c.Action()
}

// dispatch runs the single matched branch, converting a panic into an
// error so that the caller catches every failure in one place.
func (s *Sail) dispatch(c *Context) (err error) {
	defer func() {
		switch e := recover().(type) {
		case nil:
		case error:
			err = e
		default:
			err = fmt.Errorf("%v", e)
		}
	}()

	res := s.router.Match(c.method, c.path)
	switch {
	case res.Redirect != nil:
		// No middleware runs for a redirect.
		code := http.StatusFound
		if res.Redirect.Permanent {
			code = http.StatusMovedPermanently
		}
		return c.Redirect(code, res.Redirect.To)

	case res.Handler != nil:
		rh := res.Handler.(routeHandler)
		c.params = res.Params
		handler := Compose(rh.handler, rh.middlewares...)
		return Compose(handler, s.middlewares...)(c)

	default:
		return Compose(s.notFound, s.middlewares...)(c)
	}
}

// resolveFault converts err into a response action by the most specific
// registered exception handler, walking the kind hierarchy up to
// fault.Base. A failure raised by the exception handler itself is not
// resolved again: the fixed generic action is produced instead.
func (s *Sail) resolveFault(c *Context, err error) {
	var handler ExceptionHandler
	for kind := fault.KindOf(err); kind != nil; kind = kind.Parent() {
		if h, ok := s.faults[kind]; ok {
			handler = h
			break
		}
	}

	// The walk ends at fault.Base, whose handler is installed by New and
	// never removed, so handler is nil only for a broken registry.
	if handler == nil {
		c.action = Action{StatusCode: http.StatusInternalServerError}
		c.responded = true
		return
	}

	if herr := callExceptionHandler(handler, c, err); herr != nil {
		s.Logger.Errorf("exception handler failed: err=%s, cause=%s", herr, err)
		c.action = Action{StatusCode: http.StatusInternalServerError}
		c.responded = true
	} else if !c.IsResponded() {
		c.NoContent(http.StatusInternalServerError)
	}
}

func callExceptionHandler(h ExceptionHandler, c *Context,
	err error) (herr error) {
	defer func() {
		switch e := recover().(type) {
		case nil:
		case error:
			herr = e
		default:
			herr = fmt.Errorf("%v", e)
		}
	}()
	return h(c, err)
}
