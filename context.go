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

package sail

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xgfone/go-tools/v6/function"
)

// ErrInvalidRedirectCode is returned by Context.Redirect when the status
// code is not 3xx.
var ErrInvalidRedirectCode = errors.New("invalid redirect status code")

// Context represents the state of one dispatch. It is acquired fresh, or
// reset, for every dispatch; nothing in it survives across dispatches.
type Context struct {
	// Data is the per-dispatch scratch key-value store shared by the
	// middlewares and the handler.
	Data map[string]interface{}

	method string
	path   string
	params map[string]string

	req    *http.Request
	logger Logger

	action    Action
	responded bool
}

// NewContext returns a new Context.
func NewContext() *Context {
	return &Context{Data: make(map[string]interface{}, 4)}
}

// Method returns the method of the current dispatch.
func (c *Context) Method() string { return c.method }

// Path returns the normalized path of the current dispatch.
func (c *Context) Path() string { return c.path }

// Param returns the value of the route placeholder named name, or ""
// if the matched route has no such placeholder.
func (c *Context) Param(name string) string { return c.params[name] }

// Params returns the placeholder values of the matched route, which is
// nil if no route matched.
func (c *Context) Params() map[string]string { return c.params }

// BindParam parses the placeholder value named name into v, which must
// be a pointer to a basic type, such as *int, *string or *bool.
func (c *Context) BindParam(name string, v interface{}) error {
	return function.SetValue(v, c.params[name])
}

// Logger returns the logger of the dispatcher.
func (c *Context) Logger() Logger { return c.logger }

// SetLogger resets the logger of the context.
func (c *Context) SetLogger(logger Logger) { c.logger = logger }

// Request returns the raw request bound by the host, which is nil if the
// host did not bind one.
func (c *Context) Request() *http.Request { return c.req }

// SetRequest binds the raw request of the host.
func (c *Context) SetRequest(req *http.Request) { c.req = req }

// IsResponded reports whether a response action has been produced.
func (c *Context) IsResponded() bool { return c.responded }

// Action returns the response action produced so far, which is the zero
// Action until one of the response methods is called.
func (c *Context) Action() Action { return c.action }

// Respond sets the response action to the status code with the payload.
func (c *Context) Respond(code int, body interface{}) error {
	c.action = Action{StatusCode: code, Body: body}
	c.responded = true
	return nil
}

// Text is equal to Respond(code, fmt.Sprintf(format, args...)).
func (c *Context) Text(code int, format string, args ...interface{}) error {
	if len(args) == 0 {
		return c.Respond(code, format)
	}
	return c.Respond(code, fmt.Sprintf(format, args...))
}

// NoContent is equal to Respond(code, nil).
func (c *Context) NoContent(code int) error { return c.Respond(code, nil) }

// Redirect produces a redirection to toURL with the 3xx status code.
func (c *Context) Redirect(code int, toURL string) error {
	if code < 300 || code >= 400 {
		return ErrInvalidRedirectCode
	}
	c.action = Action{StatusCode: code, Location: toURL}
	c.responded = true
	return nil
}

// Reset resets the context for the next dispatch.
func (c *Context) Reset() {
	for key := range c.Data {
		delete(c.Data, key)
	}
	c.method = ""
	c.path = ""
	c.params = nil
	c.req = nil
	c.logger = nil
	c.action = Action{}
	c.responded = false
}
