/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */


package telemetry

import (
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"sync"
	"time"
)

const (
	ResultOK    = "ok"
	ResultError = "error"

	LevelDatabase = "database"
	LevelTable    = "table"
)

// RouteMetrics holds the collectors updated by the routing engine. A nil *RouteMetrics records nothing.
type RouteMetrics struct {
	routes    *prometheus.CounterVec
	fullScans *prometheus.CounterVec
	units     prometheus.Histogram
	duration  prometheus.Histogram
}

var defaultMetrics *RouteMetrics
var defaultOnce sync.Once

// DefaultRouteMetrics returns the metrics registered on prometheus.DefaultRegisterer.
func DefaultRouteMetrics() *RouteMetrics {
	defaultOnce.Do(func() {
		m, err := NewRouteMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			panic(err)
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

func NewRouteMetrics(reg prometheus.Registerer) (*RouteMetrics, error) {
	m := &RouteMetrics{
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      BuildMetricName("route", "total"),
			Help:      "Number of routed statements by logic table and result.",
		}, []string{"table", "result"}),
		fullScans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      BuildMetricName("route", "FullScanTotal"),
			Help:      "Number of strategies that fell back to every candidate for lack of a condition.",
		}, []string{"table", "level"}),
		units: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      BuildMetricName("route", "units"),
			Help:      "Number of route units produced per statement.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      BuildMetricName("route", "DurationSeconds"),
			Help:      "Time spent routing a statement.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.routes, m.fullScans, m.units, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, errors.Annotate(err, "register route metrics failed")
			}
		}
	}
	return m, nil
}

func (m *RouteMetrics) ObserveRoute(table string, units int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	} else {
		m.units.Observe(float64(units))
	}
	m.routes.WithLabelValues(table, result).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *RouteMetrics) FullScan(table string, level string) {
	if m == nil {
		return
	}
	m.fullScans.WithLabelValues(table, level).Inc()
}
