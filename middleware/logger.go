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

package middleware

import (
	"time"

	"github.com/xgfone/sail"
)

// Logger returns a middleware to log every dispatch with its method, path,
// status code, cost and error, if any.
func Logger() Middleware {
	return func(next sail.Handler) sail.Handler {
		return func(c *sail.Context) (err error) {
			start := time.Now()
			err = next(c)
			cost := time.Since(start).String()

			code := c.Action().StatusCode
			if err == nil {
				c.Logger().Infof("method=%s, path=%s, code=%d, cost=%s",
					c.Method(), c.Path(), code, cost)
			} else {
				c.Logger().Errorf("method=%s, path=%s, code=%d, cost=%s, err=%s",
					c.Method(), c.Path(), code, cost, err)
			}

			return
		}
	}
}
