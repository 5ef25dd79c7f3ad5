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

import "net/http"

// Handler handles a dispatched request. It produces the response action
// through the Context and reports a failure, if any, by the returned error.
type Handler func(c *Context) error

// NothingHandler returns a handler doing nothing.
func NothingHandler() Handler {
	return func(c *Context) error { return nil }
}

// OkHandler returns a handler responding 200 with no payload.
func OkHandler() Handler {
	return func(c *Context) error { return c.NoContent(http.StatusOK) }
}

// NotFoundHandler returns the default handler of the dispatches matching
// no redirect and no route, which responds 404.
func NotFoundHandler() Handler {
	return func(c *Context) error {
		return c.Text(http.StatusNotFound, "Not Found")
	}
}
