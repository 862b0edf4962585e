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


package routing

import (
	"github.com/endink/go-sharding-route/logging"
	"github.com/endink/go-sharding-route/telemetry"
	"time"
)

type Option func(e *Engine)

// WithMetrics replaces the default prometheus collectors, nil disables metrics.
func WithMetrics(m *telemetry.RouteMetrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func WithLogger(l logging.StandardLogger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithFullScanLogInterval sets how often full scan warnings may be logged.
func WithFullScanLogInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.fullScanInterval = d
	}
}
