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
	"fmt"

	"github.com/endink/go-sharding-route/core"
	"github.com/scylladb/go-set/strset"
)

type Type int

const (
	TypeNone Type = iota
	TypeStandard
	TypeComplex
	TypeHint
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeStandard:
		return "standard"
	case TypeComplex:
		return "complex"
	case TypeHint:
		return "hint"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Strategy selects the targets a statement must reach from the candidates.
//
// Results are a subset of targets in the order of targets, an empty targets slice always gives an
// empty result. Strategies are immutable and safe for concurrent use.
type Strategy interface {
	Type() Type
	Columns() []string
	DoSharding(targets []string, values []core.ShardingValue, info *core.DataNodeInfo, props core.Properties) ([]string, error)
}

// HasCondition reports whether values contain anything the strategy routes by.
func HasCondition(s Strategy, values []core.ShardingValue) bool {
	switch s.Type() {
	case TypeNone:
		return true
	case TypeHint:
		for _, v := range values {
			if h, ok := v.(*core.HintShardingValue); ok && len(h.Values) > 0 {
				return true
			}
		}
		return false
	}
	columns := columnSet(s.Columns())
	for _, v := range values {
		if v.Kind() != core.ValueKindHint && columns.Has(core.TrimAndLower(v.GetColumn())) {
			return true
		}
	}
	return false
}

func columnSet(columns []string) *strset.Set {
	set := strset.NewWithSize(len(columns))
	for _, c := range columns {
		set.Add(core.TrimAndLower(c))
	}
	return set
}

func allTargets(targets []string) []string {
	result := make([]string, len(targets))
	copy(result, targets)
	return result
}

// collector unions algorithm results and rejects names that are not candidates.
type collector struct {
	targets    []string
	candidates *strset.Set
	routed     *strset.Set
	algorithm  string
}

func newCollector(targets []string, algorithmType string) *collector {
	return &collector{
		targets:    targets,
		candidates: strset.New(targets...),
		routed:     strset.NewWithSize(len(targets)),
		algorithm:  algorithmType,
	}
}

func (c *collector) add(names ...string) error {
	for _, n := range names {
		if !c.candidates.Has(n) {
			return &core.UnknownTargetError{Target: n, Algorithm: c.algorithm}
		}
		c.routed.Add(n)
	}
	return nil
}

func (c *collector) result() []string {
	result := make([]string, 0, c.routed.Size())
	for _, t := range c.targets {
		if c.routed.Has(t) {
			result = append(result, t)
			c.routed.Remove(t)
		}
	}
	return result
}
