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


package algorithm

import (
	"github.com/endink/go-sharding-route/core"
)

// ShardingAlgorithm is implemented by every algorithm, the capabilities tell which of the
// sharding interfaces below may be used.
//
// Algorithms must only return names taken from targets and must be safe for concurrent use.
type ShardingAlgorithm interface {
	Type() string
	Capabilities() Capability
}

// PreciseShardingAlgorithm shards "column = value", ok is false when no target holds the value.
type PreciseShardingAlgorithm interface {
	DoPreciseSharding(targets []string, v *core.PreciseShardingValue) (target string, ok bool, err error)
}

type RangeShardingAlgorithm interface {
	DoRangeSharding(targets []string, v *core.RangeShardingValue) ([]string, error)
}

type ComplexKeysShardingAlgorithm interface {
	DoComplexSharding(targets []string, v *core.ComplexKeysShardingValue) ([]string, error)
}

type HintShardingAlgorithm interface {
	DoHintSharding(targets []string, v *core.HintShardingValue) ([]string, error)
}

//go:generate mockgen -destination=mock/mock_algorithm.go -package=mock github.com/endink/go-sharding-route/algorithm StandardAlgorithm,ComplexAlgorithm,HintAlgorithm

// StandardAlgorithm is an algorithm usable by a standard strategy with range support.
type StandardAlgorithm interface {
	ShardingAlgorithm
	PreciseShardingAlgorithm
	RangeShardingAlgorithm
}

type ComplexAlgorithm interface {
	ShardingAlgorithm
	ComplexKeysShardingAlgorithm
}

type HintAlgorithm interface {
	ShardingAlgorithm
	HintShardingAlgorithm
}
