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

// Middleware wraps a handler with a piece of cross-cutting logic.
//
// The wrapper continues the chain by invoking the handler it wraps, and
// terminates the chain by not invoking it: nothing downstream runs then.
// That is the only control primitive of the chain.
type Middleware func(Handler) Handler

// Compose wraps handler with the middlewares, the first one outermost,
// and returns the composed handler.
//
// For the middlewares A and B, Compose(h, A, B) is equivalent to A(B(h)):
// A enters first, then B, then h runs, and the chain unwinds B then A.
func Compose(handler Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
