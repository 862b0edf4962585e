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


package strategy

import (
	"github.com/endink/go-sharding-route/algorithm"
	"github.com/endink/go-sharding-route/core"
)

// Hint routes by values supplied outside of the statement, predicate values are ignored.
type Hint struct {
	shardingAlgorithm algorithm.ShardingAlgorithm
	algorithm         algorithm.HintShardingAlgorithm
}

func NewHint(algo algorithm.ShardingAlgorithm) (*Hint, error) {
	if !algorithm.Supports(algo, algorithm.CapabilityHint) {
		return nil, &core.UnsupportedCapabilityError{
			Capability: algorithm.CapabilityHint.String(),
			Algorithm:  algorithmType(algo),
		}
	}
	return &Hint{
		shardingAlgorithm: algo,
		algorithm:         algo.(algorithm.HintShardingAlgorithm),
	}, nil
}

func (s *Hint) Type() Type {
	return TypeHint
}

func (s *Hint) Columns() []string {
	return nil
}

func (s *Hint) DoSharding(targets []string, values []core.ShardingValue, _ *core.DataNodeInfo, _ core.Properties) ([]string, error) {
	if len(targets) == 0 {
		return []string{}, nil
	}

	var hints []*core.HintShardingValue
	for _, v := range values {
		if h, ok := v.(*core.HintShardingValue); ok && len(h.Values) > 0 {
			hints = append(hints, h)
		}
	}
	if len(hints) == 0 {
		return allTargets(targets), nil
	}

	c := newCollector(targets, s.shardingAlgorithm.Type())
	for _, h := range hints {
		names, err := s.algorithm.DoHintSharding(targets, h)
		if err != nil {
			return nil, err
		}
		if err = c.add(names...); err != nil {
			return nil, err
		}
	}
	return c.result(), nil
}
