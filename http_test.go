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
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestServeHTTP(t *testing.T) {
	s := New()
	s.Register("GET", "/users/[id]", func(c *Context) error {
		return c.Text(http.StatusOK, "user %s", c.Param("id"))
	})
	s.RegisterRedirect("/old", "/users/42", true)

	req := httptest.NewRequest(http.MethodGet, "/users/42/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expect code 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "user 42" {
		t.Errorf("expect body 'user 42', got '%s'", body)
	}

	req = httptest.NewRequest(http.MethodGet, "/old", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusMovedPermanently {
		t.Errorf("expect code 301, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/users/42" {
		t.Errorf("expect location '/users/42', got '%s'", loc)
	}

	req = httptest.NewRequest(http.MethodPost, "/users/42", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expect code 404, got %d", rec.Code)
	}
}

func TestServeHTTPRequestBound(t *testing.T) {
	s := New()
	s.Register("GET", "/echo", func(c *Context) error {
		return c.Text(http.StatusOK, c.Request().Header.Get("X-Token"))
	})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("X-Token", "secret")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if body := rec.Body.String(); body != "secret" {
		t.Errorf("expect body 'secret', got '%s'", body)
	}
}
