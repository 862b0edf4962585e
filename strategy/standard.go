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
	"strings"

	"github.com/endink/go-sharding-route/algorithm"
	"github.com/endink/go-sharding-route/core"
	"github.com/pingcap/errors"
)

// Standard shards by a single column with a precise algorithm and an optional range algorithm.
type Standard struct {
	column    string
	algorithm algorithm.ShardingAlgorithm
	precise   algorithm.PreciseShardingAlgorithm
	ranged    algorithm.RangeShardingAlgorithm
}

func NewStandard(column string, algo algorithm.ShardingAlgorithm) (*Standard, error) {
	column = strings.TrimSpace(column)
	if err := core.ValidateIdentifier(column); err != nil {
		return nil, errors.Annotate(err, "invalid sharding column of standard strategy")
	}
	if !algorithm.Supports(algo, algorithm.CapabilityPrecise) {
		return nil, &core.UnsupportedCapabilityError{
			Capability: algorithm.CapabilityPrecise.String(),
			Column:     column,
			Algorithm:  algorithmType(algo),
		}
	}
	s := &Standard{
		column:    column,
		algorithm: algo,
		precise:   algo.(algorithm.PreciseShardingAlgorithm),
	}
	if algorithm.Supports(algo, algorithm.CapabilityRange) {
		s.ranged = algo.(algorithm.RangeShardingAlgorithm)
	}
	return s, nil
}

func (s *Standard) Type() Type {
	return TypeStandard
}

func (s *Standard) Columns() []string {
	return []string{s.column}
}

func (s *Standard) Algorithm() algorithm.ShardingAlgorithm {
	return s.algorithm
}

func (s *Standard) DoSharding(targets []string, values []core.ShardingValue, info *core.DataNodeInfo, _ core.Properties) ([]string, error) {
	if len(targets) == 0 {
		return []string{}, nil
	}

	column := core.TrimAndLower(s.column)
	var matched []core.ShardingValue
	for _, v := range values {
		if v.Kind() != core.ValueKindHint && core.TrimAndLower(v.GetColumn()) == column {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return allTargets(targets), nil
	}

	c := newCollector(targets, s.algorithm.Type())
	for _, v := range matched {
		var err error
		switch sv := v.(type) {
		case *core.PreciseShardingValue:
			err = s.doPrecise(c, targets, sv.Table, info, sv.Value)
		case *core.ListShardingValue:
			for _, item := range sv.Values {
				if err = s.doPrecise(c, targets, sv.Table, info, item); err != nil {
					break
				}
			}
		case *core.RangeShardingValue:
			err = s.doRange(c, targets, sv, info)
		}
		if err != nil {
			return nil, err
		}
	}
	return c.result(), nil
}

func (s *Standard) doPrecise(c *collector, targets []string, table string, info *core.DataNodeInfo, value interface{}) error {
	name, ok, err := s.precise.DoPreciseSharding(targets, &core.PreciseShardingValue{
		Table:        table,
		Column:       s.column,
		DataNodeInfo: info,
		Value:        value,
	})
	if err != nil || !ok {
		return err
	}
	return c.add(name)
}

func (s *Standard) doRange(c *collector, targets []string, v *core.RangeShardingValue, info *core.DataNodeInfo) error {
	if s.ranged == nil {
		return &core.UnsupportedCapabilityError{
			Capability: algorithm.CapabilityRange.String(),
			Column:     s.column,
			Algorithm:  s.algorithm.Type(),
		}
	}
	names, err := s.ranged.DoRangeSharding(targets, &core.RangeShardingValue{
		Table:        v.Table,
		Column:       s.column,
		DataNodeInfo: info,
		Range:        v.Range,
	})
	if err != nil {
		return err
	}
	return c.add(names...)
}

func algorithmType(algo algorithm.ShardingAlgorithm) string {
	if algo == nil {
		return "<nil>"
	}
	return algo.Type()
}
