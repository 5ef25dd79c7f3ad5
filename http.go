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
	"fmt"
	"io"
	"net/http"
)

// ServeHTTP implements the interface http.Handler: it dispatches the
// request and executes the returned action on the response writer. The
// wire handling stays in net/http; the core never touches it.
func (s *Sail) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := s.AcquireContext()
	c.SetRequest(r)
	ExecuteAction(w, r, s.Dispatch(r.Method, r.URL.Path, c))
	s.ReleaseContext(c)
}

// ExecuteAction writes the action into w.
//
// A string or []byte payload is written as-is; any other non-nil payload
// is formatted with "%v".
func ExecuteAction(w http.ResponseWriter, r *http.Request, a Action) {
	if a.IsRedirect() {
		http.Redirect(w, r, a.Location, a.StatusCode)
		return
	}

	w.WriteHeader(a.StatusCode)
	switch body := a.Body.(type) {
	case nil:
	case string:
		io.WriteString(w, body)
	case []byte:
		w.Write(body)
	default:
		fmt.Fprintf(w, "%v", body)
	}
}
