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
	"github.com/pingcap/errors"
	"github.com/scylladb/go-set/strset"
)

// Complex shards by several columns at once, all their values reach the algorithm in one call.
type Complex struct {
	columns   []string
	columnSet *strset.Set
	algorithm algorithm.ComplexKeysShardingAlgorithm
	algoType  string
}

// NewComplex creates a complex strategy for columns written like "column1, column2".
func NewComplex(columns string, algo algorithm.ShardingAlgorithm) (*Complex, error) {
	parsed, err := core.ParseColumns(columns)
	if err != nil {
		return nil, errors.Annotate(err, "invalid sharding columns of complex strategy")
	}
	if !algorithm.Supports(algo, algorithm.CapabilityComplex) {
		return nil, &core.UnsupportedCapabilityError{
			Capability: algorithm.CapabilityComplex.String(),
			Column:     columns,
			Algorithm:  algorithmType(algo),
		}
	}
	return &Complex{
		columns:   parsed,
		columnSet: columnSet(parsed),
		algorithm: algo.(algorithm.ComplexKeysShardingAlgorithm),
		algoType:  algo.Type(),
	}, nil
}

func (s *Complex) Type() Type {
	return TypeComplex
}

func (s *Complex) Columns() []string {
	return s.columns
}

func (s *Complex) DoSharding(targets []string, values []core.ShardingValue, info *core.DataNodeInfo, _ core.Properties) ([]string, error) {
	if len(targets) == 0 {
		return []string{}, nil
	}

	var matched []core.ShardingValue
	for _, v := range values {
		if v.Kind() != core.ValueKindHint && s.columnSet.Has(core.TrimAndLower(v.GetColumn())) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return allTargets(targets), nil
	}

	names, err := s.algorithm.DoComplexSharding(targets, &core.ComplexKeysShardingValue{
		Table:        matched[0].GetTable(),
		DataNodeInfo: info,
		Values:       matched,
	})
	if err != nil {
		return nil, err
	}

	c := newCollector(targets, s.algoType)
	if err = c.add(names...); err != nil {
		return nil, err
	}
	return c.result(), nil
}
