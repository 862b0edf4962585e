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
	"math"
	"strconv"
	"strings"

	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/comparison"
	"github.com/scylladb/go-set/strset"
)

// shardTarget returns the target holding the shard index, targets like "t_01" match index 1 too.
func shardTarget(targets []string, info *core.DataNodeInfo, index int64) (string, bool) {
	if len(targets) == 0 {
		return "", false
	}
	if info == nil {
		info = core.ParseDataNodeInfo("", targets[0])
	}
	name := info.Format(index)
	for _, t := range targets {
		if strings.EqualFold(t, name) {
			return t, true
		}
	}
	prefix := info.Prefix
	for _, t := range targets {
		if len(t) > len(prefix) && strings.EqualFold(t[:len(prefix)], prefix) {
			if n, err := strconv.ParseInt(t[len(prefix):], 10, 64); err == nil && n == index {
				return t, true
			}
		}
	}
	return "", false
}

// shardTargets maps indexes to targets, the result keeps the order of targets.
func shardTargets(targets []string, info *core.DataNodeInfo, indexes []int64) []string {
	matched := strset.NewWithSize(len(indexes))
	for _, idx := range indexes {
		if t, ok := shardTarget(targets, info, idx); ok {
			matched.Add(t)
		}
	}
	return filterTargets(targets, matched)
}

func filterTargets(targets []string, matched *strset.Set) []string {
	result := make([]string, 0, matched.Size())
	for _, t := range targets {
		if matched.Has(t) {
			result = append(result, t)
			matched.Remove(t)
		}
	}
	return result
}

func allTargets(targets []string) []string {
	result := make([]string, len(targets))
	copy(result, targets)
	return result
}

// toInt64 reads an integer sharding value, numeric strings are accepted.
func toInt64(value interface{}) (int64, error) {
	if s, ok := value.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("sharding value '%s' is not an integer", s)
		}
		return n, nil
	}
	return comparison.AsInt64(value)
}

// closedBounds converts an integer range to a closed interval, ok is false for an empty range.
func closedBounds(r core.Range) (lower int64, upper int64, ok bool, err error) {
	lower, err = toInt64(r.LowerBound())
	if err != nil {
		return
	}
	upper, err = toInt64(r.UpperBound())
	if err != nil {
		return
	}
	if r.LowerType() == core.BoundOpen {
		if lower == math.MaxInt64 {
			return
		}
		lower++
	}
	if r.UpperType() == core.BoundOpen {
		if upper == math.MinInt64 {
			return
		}
		upper--
	}
	ok = lower <= upper
	return
}

// span is upper - lower for lower <= upper, computed without overflow.
func span(lower, upper int64) uint64 {
	return uint64(upper) - uint64(lower)
}

func floorMod(n, m int64) int64 {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// matchTargets returns the targets named in names, ignoring case and keeping the order of targets.
func matchTargets(targets []string, names []string) []string {
	wanted := strset.NewWithSize(len(names))
	for _, n := range names {
		wanted.Add(strings.ToLower(n))
	}
	result := make([]string, 0, len(names))
	for _, t := range targets {
		key := strings.ToLower(t)
		if wanted.Has(key) {
			result = append(result, t)
			wanted.Remove(key)
		}
	}
	return result
}
