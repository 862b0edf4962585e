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
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRouteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewRouteMetrics(reg)
	require.NoError(t, err)

	m.ObserveRoute("t_order", 4, time.Millisecond, nil)
	m.ObserveRoute("t_order", 0, time.Millisecond, errors.New("boom"))
	m.FullScan("t_order", LevelTable)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.routes.WithLabelValues("t_order", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.routes.WithLabelValues("t_order", ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fullScans.WithLabelValues("t_order", LevelTable)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]uint64)
	for _, f := range families {
		if h := f.GetMetric()[0].GetHistogram(); h != nil {
			names[f.GetName()] = h.GetSampleCount()
		}
	}
	assert.Equal(t, uint64(1), names["sharding_route_units"])
	assert.Equal(t, uint64(2), names["sharding_route_duration_seconds"])
}

func TestRouteMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRouteMetrics(reg)
	require.NoError(t, err)
	_, err = NewRouteMetrics(reg)
	assert.Error(t, err)
}

func TestNilRouteMetrics(t *testing.T) {
	var m *RouteMetrics
	assert.NotPanics(t, func() {
		m.ObserveRoute("t", 1, time.Second, nil)
		m.FullScan("t", LevelDatabase)
	})
}
