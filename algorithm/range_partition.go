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
	"fmt"
	"strconv"
	"strings"

	"github.com/endink/go-sharding-route/core"
)

const (
	PropShardingRanges = "sharding-ranges"
	PropRangeLower     = "range-lower"
	PropRangeUpper     = "range-upper"
	PropShardingVolume = "sharding-volume"
)

// rangePartition shards by ascending boundaries b0 < b1 < ... < bn:
// shard 0 is (-∞, b0), shard i is [b(i-1), bi) and shard n+1 is [bn, +∞).
type rangePartition struct {
	tp         string
	partitions []core.Range
}

func newRangePartition(tp string, boundaries []int64) (*rangePartition, error) {
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("at least one boundary is required by %s sharding algorithm", tp)
	}
	partitions := make([]core.Range, 0, len(boundaries)+1)
	first, err := core.LessThan(boundaries[0])
	if err != nil {
		return nil, err
	}
	partitions = append(partitions, first)
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("boundaries of %s sharding algorithm must be ascending, %d is after %d", tp, boundaries[i], boundaries[i-1])
		}
		r, err := core.ClosedOpenRange(boundaries[i-1], boundaries[i])
		if err != nil {
			return nil, err
		}
		partitions = append(partitions, r)
	}
	last, err := core.AtLeast(boundaries[len(boundaries)-1])
	if err != nil {
		return nil, err
	}
	partitions = append(partitions, last)
	return &rangePartition{tp: tp, partitions: partitions}, nil
}

func (p *rangePartition) Type() string {
	return p.tp
}

func (p *rangePartition) Capabilities() Capability {
	return CapabilityPrecise | CapabilityRange
}

func (p *rangePartition) DoPreciseSharding(targets []string, v *core.PreciseShardingValue) (string, bool, error) {
	n, err := toInt64(v.Value)
	if err != nil {
		return "", false, err
	}
	for i, r := range p.partitions {
		c, err := r.Contains(n)
		if err != nil {
			return "", false, err
		}
		if c {
			t, ok := shardTarget(targets, v.DataNodeInfo, int64(i))
			return t, ok, nil
		}
	}
	return "", false, nil
}

func (p *rangePartition) DoRangeSharding(targets []string, v *core.RangeShardingValue) ([]string, error) {
	var indexes []int64
	for i, r := range p.partitions {
		has, err := r.HasIntersection(v.Range)
		if err != nil {
			return nil, err
		}
		if has {
			indexes = append(indexes, int64(i))
		}
	}
	return shardTargets(targets, v.DataNodeInfo, indexes), nil
}

// NewBoundaryRange creates a BOUNDARY_RANGE algorithm from "sharding-ranges: 10, 20, 30".
func NewBoundaryRange(props core.Properties) (ShardingAlgorithm, error) {
	expr := props.GetString(PropShardingRanges, "")
	if expr == "" {
		return nil, fmt.Errorf("property '%s' is required", PropShardingRanges)
	}
	var boundaries []int64
	for _, s := range core.DistinctSliceAndTrim(strings.Split(expr, ",")) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid boundary '%s' in property '%s'", s, PropShardingRanges)
		}
		boundaries = append(boundaries, n)
	}
	return newRangePartition(TypeBoundaryRange, boundaries)
}

// NewVolumeRange creates a VOLUME_RANGE algorithm, [range-lower, range-upper) is split in sharding-volume steps.
func NewVolumeRange(props core.Properties) (ShardingAlgorithm, error) {
	lower, err := requiredInt(props, PropRangeLower)
	if err != nil {
		return nil, err
	}
	upper, err := requiredInt(props, PropRangeUpper)
	if err != nil {
		return nil, err
	}
	volume, err := requiredInt(props, PropShardingVolume)
	if err != nil {
		return nil, err
	}
	if volume <= 0 {
		return nil, fmt.Errorf("property '%s' must be a positive integer", PropShardingVolume)
	}
	if upper <= lower {
		return nil, fmt.Errorf("property '%s' must be greater than '%s'", PropRangeUpper, PropRangeLower)
	}
	var boundaries []int64
	for b := lower; b < upper; b += volume {
		boundaries = append(boundaries, b)
	}
	boundaries = append(boundaries, upper)
	return newRangePartition(TypeVolumeRange, boundaries)
}

func requiredInt(props core.Properties, key string) (int64, error) {
	s := props.GetString(key, "")
	if s == "" {
		return 0, fmt.Errorf("property '%s' is required", key)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("property '%s' must be an integer", key)
	}
	return n, nil
}
