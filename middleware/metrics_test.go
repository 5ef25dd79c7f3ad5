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
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xgfone/sail"
)

func TestMetrics(t *testing.T) {
	registry := prometheus.NewPedanticRegistry()

	s := sail.New()
	s.Use(Metrics(MetricsConfig{Registry: registry}))
	s.Register("GET", "/ok", func(c *sail.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.Register("GET", "/fail", func(c *sail.Context) error {
		return errors.New("boom")
	})

	s.Dispatch("GET", "/ok", sail.NewContext())
	s.Dispatch("GET", "/ok", sail.NewContext())
	s.Dispatch("GET", "/fail", sail.NewContext())

	families, err := registry.Gather()
	require.NoError(t, err)

	counters := make(map[string]float64, 2)
	var durations uint64
	for _, mf := range families {
		switch mf.GetName() {
		case "sail_dispatches_total":
			for _, m := range mf.GetMetric() {
				var status string
				for _, label := range m.GetLabel() {
					if label.GetName() == "status" {
						status = label.GetValue()
					}
				}
				counters[status] += m.GetCounter().GetValue()
			}
		case "sail_dispatch_duration_seconds":
			for _, m := range mf.GetMetric() {
				durations += m.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, float64(2), counters["ok"])
	assert.Equal(t, float64(1), counters["error"])
	assert.Equal(t, uint64(3), durations)
}
