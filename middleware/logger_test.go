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
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xgfone/sail"
)

func TestLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)

	s := sail.New()
	s.Logger = sail.NewLoggerFromWriter(buf, "", 0)
	s.Use(Logger())
	s.Register("GET", "/test", func(c *sail.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Dispatch("GET", "/test/", sail.NewContext())
	assert.Contains(t, buf.String(), "[I] method=GET, path=/test, code=200")

	buf.Reset()
	s.Register("GET", "/fail", func(c *sail.Context) error {
		return errors.New("boom")
	})
	s.Dispatch("GET", "/fail", sail.NewContext())
	assert.Contains(t, buf.String(), "[E] method=GET, path=/fail")
	assert.Contains(t, buf.String(), "err=boom")
}
