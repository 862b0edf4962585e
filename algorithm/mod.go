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

	"github.com/endink/go-sharding-route/core"
	"github.com/pingcap/errors"
)

const PropShardingCount = "sharding-count"

// Mod routes integer values to shard value % sharding-count.
type Mod struct {
	count int64
}

type modSettings struct {
	Count        int64  `yaml:"sharding-count"`
	HashFunction string `yaml:"hash-function"`
}

func populateModSettings(props core.Properties) (*modSettings, error) {
	s := &modSettings{}
	if err := props.PopulateValue(s); err != nil {
		return nil, errors.Annotatef(err, "property '%s' must be a positive integer", PropShardingCount)
	}
	if s.Count <= 0 {
		return nil, fmt.Errorf("property '%s' must be a positive integer", PropShardingCount)
	}
	return s, nil
}

func NewMod(props core.Properties) (*Mod, error) {
	s, err := populateModSettings(props)
	if err != nil {
		return nil, err
	}
	return &Mod{count: s.Count}, nil
}

func (m *Mod) Type() string {
	return TypeMod
}

func (m *Mod) Capabilities() Capability {
	return CapabilityPrecise | CapabilityRange
}

func (m *Mod) DoPreciseSharding(targets []string, v *core.PreciseShardingValue) (string, bool, error) {
	n, err := toInt64(v.Value)
	if err != nil {
		return "", false, err
	}
	t, ok := shardTarget(targets, v.DataNodeInfo, floorMod(n, m.count))
	return t, ok, nil
}

// DoRangeSharding enumerates the shards of short ranges, other ranges touch every shard.
func (m *Mod) DoRangeSharding(targets []string, v *core.RangeShardingValue) ([]string, error) {
	r := v.Range
	if !r.HasLower() || !r.HasUpper() {
		return allTargets(targets), nil
	}
	lower, upper, ok, err := closedBounds(r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	n := span(lower, upper)
	if n >= uint64(m.count-1) {
		return allTargets(targets), nil
	}
	indexes := make([]int64, 0, n+1)
	for i := uint64(0); i <= n; i++ {
		indexes = append(indexes, floorMod(lower+int64(i), m.count))
	}
	return shardTargets(targets, v.DataNodeInfo, indexes), nil
}
