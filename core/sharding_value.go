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


package core

import (
	"fmt"
	"strings"

	"github.com/endink/go-sharding-route/core/collection"
)

type ValueKind int

const (
	ValueKindPrecise ValueKind = iota
	ValueKindList
	ValueKindRange
	ValueKindHint
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindPrecise:
		return "precise"
	case ValueKindList:
		return "list"
	case ValueKindRange:
		return "range"
	case ValueKindHint:
		return "hint"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// ShardingValue is a condition value of a sharding column extracted from a statement.
// The set of implementations is closed: *PreciseShardingValue, *ListShardingValue,
// *RangeShardingValue and *HintShardingValue.
type ShardingValue interface {
	fmt.Stringer
	GetTable() string
	GetColumn() string
	Kind() ValueKind
	shardingValue()
}

// PreciseShardingValue comes from "column = value".
type PreciseShardingValue struct {
	Table        string
	Column       string
	DataNodeInfo *DataNodeInfo
	Value        interface{}
}

func NewPreciseShardingValue(table string, column string, value interface{}) *PreciseShardingValue {
	return &PreciseShardingValue{
		Table:  table,
		Column: column,
		Value:  value,
	}
}

func (s *PreciseShardingValue) GetTable() string {
	return s.Table
}

func (s *PreciseShardingValue) GetColumn() string {
	return s.Column
}

func (s *PreciseShardingValue) Kind() ValueKind {
	return ValueKindPrecise
}

func (s *PreciseShardingValue) String() string {
	return fmt.Sprintf("%s.%s = %v", s.Table, s.Column, s.Value)
}

func (*PreciseShardingValue) shardingValue() {}

// ListShardingValue comes from "column IN (...)", values are distinct.
type ListShardingValue struct {
	Table  string
	Column string
	Values []interface{}
}

func NewListShardingValue(table string, column string, values ...interface{}) *ListShardingValue {
	return &ListShardingValue{
		Table:  table,
		Column: column,
		Values: collection.NewHashSet(values...).Values(),
	}
}

func (s *ListShardingValue) GetTable() string {
	return s.Table
}

func (s *ListShardingValue) GetColumn() string {
	return s.Column
}

func (s *ListShardingValue) Kind() ValueKind {
	return ValueKindList
}

func (s *ListShardingValue) String() string {
	return fmt.Sprintf("%s.%s IN (%s)", s.Table, s.Column, joinValues(s.Values))
}

func (*ListShardingValue) shardingValue() {}

// RangeShardingValue comes from comparison or BETWEEN predicates.
type RangeShardingValue struct {
	Table        string
	Column       string
	DataNodeInfo *DataNodeInfo
	Range        Range
}

func NewRangeShardingValue(table string, column string, r Range) *RangeShardingValue {
	return &RangeShardingValue{
		Table:  table,
		Column: column,
		Range:  r,
	}
}

func (s *RangeShardingValue) GetTable() string {
	return s.Table
}

func (s *RangeShardingValue) GetColumn() string {
	return s.Column
}

func (s *RangeShardingValue) Kind() ValueKind {
	return ValueKindRange
}

func (s *RangeShardingValue) String() string {
	return fmt.Sprintf("%s.%s IN %s", s.Table, s.Column, s.Range)
}

func (*RangeShardingValue) shardingValue() {}

// HintShardingValue carries values supplied outside of the statement.
type HintShardingValue struct {
	Table  string
	Column string
	Values []interface{}
}

func NewHintShardingValue(table string, column string, values ...interface{}) *HintShardingValue {
	return &HintShardingValue{
		Table:  table,
		Column: column,
		Values: collection.NewHashSet(values...).Values(),
	}
}

func (s *HintShardingValue) GetTable() string {
	return s.Table
}

func (s *HintShardingValue) GetColumn() string {
	return s.Column
}

func (s *HintShardingValue) Kind() ValueKind {
	return ValueKindHint
}

func (s *HintShardingValue) String() string {
	return fmt.Sprintf("%s hint (%s)", s.Table, joinValues(s.Values))
}

func (*HintShardingValue) shardingValue() {}

// ComplexKeysShardingValue groups the values of all columns of a complex strategy.
type ComplexKeysShardingValue struct {
	Table        string
	DataNodeInfo *DataNodeInfo
	Values       []ShardingValue
}

// ColumnValues returns discrete values keyed by lower cased column, precise and list values are merged.
func (c *ComplexKeysShardingValue) ColumnValues() map[string][]interface{} {
	sets := make(map[string]*collection.HashSet)
	for _, v := range c.Values {
		var items []interface{}
		switch sv := v.(type) {
		case *PreciseShardingValue:
			items = []interface{}{sv.Value}
		case *ListShardingValue:
			items = sv.Values
		default:
			continue
		}
		column := TrimAndLower(v.GetColumn())
		set, ok := sets[column]
		if !ok {
			set = collection.NewHashSet()
			sets[column] = set
		}
		set.Add(items...)
	}

	result := make(map[string][]interface{}, len(sets))
	for column, set := range sets {
		result[column] = set.Values()
	}
	return result
}

// ColumnRanges returns ranges keyed by lower cased column.
func (c *ComplexKeysShardingValue) ColumnRanges() map[string][]Range {
	result := make(map[string][]Range)
	for _, v := range c.Values {
		if rv, ok := v.(*RangeShardingValue); ok {
			column := TrimAndLower(rv.Column)
			result[column] = append(result[column], rv.Range)
		}
	}
	return result
}

func (c *ComplexKeysShardingValue) String() string {
	parts := make([]string, len(c.Values))
	for i, v := range c.Values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " AND ")
}

func joinValues(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
