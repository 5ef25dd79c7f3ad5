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

// Action is the terminal response produced by one dispatch. The core only
// produces it; executing it against the wire is the job of the host, for
// example, ExecuteAction for a net/http host.
type Action struct {
	StatusCode int

	// Location is the redirect target if not empty.
	Location string

	// Body is the opaque payload produced by the handler.
	Body interface{}
}

// IsRedirect reports whether the action redirects the client.
func (a Action) IsRedirect() bool { return a.Location != "" }
