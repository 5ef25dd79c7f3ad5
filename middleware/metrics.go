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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xgfone/sail"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace, which is "sail" by default.
	Namespace string

	// Buckets are the histogram buckets of the dispatch duration,
	// which is prometheus.DefBuckets by default.
	Buckets []float64

	// Registry is the prometheus registry to register the metrics with,
	// which is prometheus.DefaultRegisterer by default.
	Registry prometheus.Registerer
}

// Metrics returns a middleware to observe every dispatch with Prometheus:
// a counter of the dispatches by the method and status, and a histogram
// of the dispatch duration by the method.
func Metrics(config ...MetricsConfig) Middleware {
	var conf MetricsConfig
	if len(config) > 0 {
		conf = config[0]
	}
	if conf.Namespace == "" {
		conf.Namespace = "sail"
	}
	if conf.Buckets == nil {
		conf.Buckets = prometheus.DefBuckets
	}
	if conf.Registry == nil {
		conf.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(conf.Registry)
	total := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: conf.Namespace,
		Name:      "dispatches_total",
		Help:      "Total number of the dispatches",
	}, []string{"method", "status"})
	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: conf.Namespace,
		Name:      "dispatch_duration_seconds",
		Help:      "Duration of the dispatches in seconds",
		Buckets:   conf.Buckets,
	}, []string{"method"})

	return func(next sail.Handler) sail.Handler {
		return func(c *sail.Context) (err error) {
			start := time.Now()
			err = next(c)
			duration.WithLabelValues(c.Method()).
				Observe(time.Since(start).Seconds())

			status := "ok"
			if err != nil {
				status = "error"
			}
			total.WithLabelValues(c.Method(), status).Inc()

			return
		}
	}
}
