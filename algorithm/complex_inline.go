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
	"sort"

	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/script"
	"github.com/pingcap/errors"
)

const PropShardingColumns = "sharding-columns"

// ComplexInline evaluates an expression over several sharding columns, every combination of
// the column values is evaluated.
type ComplexInline struct {
	columns    []string
	cache      *inlineCache
	allowRange bool
}

func NewComplexInline(props core.Properties) (*ComplexInline, error) {
	columnsExpr := props.GetString(PropShardingColumns, "")
	if columnsExpr == "" {
		return nil, fmt.Errorf("property '%s' is required", PropShardingColumns)
	}
	columns, err := core.ParseColumns(columnsExpr)
	if err != nil {
		return nil, errors.Annotatef(err, "invalid property '%s'", PropShardingColumns)
	}
	expression := props.GetString(PropAlgorithmExpression, "")
	if expression == "" {
		return nil, fmt.Errorf("property '%s' is required", PropAlgorithmExpression)
	}
	allowRange, err := props.GetBool(PropAllowRangeQuery, false)
	if err != nil {
		return nil, err
	}
	c := &ComplexInline{
		columns:    columns,
		cache:      &inlineCache{expression: expression},
		allowRange: allowRange,
	}
	if _, err = c.cache.get(columns...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ComplexInline) Type() string {
	return TypeComplexInline
}

func (c *ComplexInline) Capabilities() Capability {
	return CapabilityComplex
}

func (c *ComplexInline) DoComplexSharding(targets []string, v *core.ComplexKeysShardingValue) ([]string, error) {
	ranges := v.ColumnRanges()
	if len(ranges) > 0 {
		if !c.allowRange {
			columns := make([]string, 0, len(ranges))
			for column := range ranges {
				columns = append(columns, column)
			}
			sort.Strings(columns)
			return nil, &core.UnsupportedCapabilityError{Capability: CapabilityRange.String(), Column: columns[0], Algorithm: TypeComplexInline}
		}
		return allTargets(targets), nil
	}

	values := v.ColumnValues()
	lists := make([][]interface{}, len(c.columns))
	for i, column := range c.columns {
		list, ok := values[core.TrimAndLower(column)]
		if !ok {
			return allTargets(targets), nil
		}
		lists[i] = list
	}

	expr, err := c.cache.get(c.columns...)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, combination := range core.Permute(lists) {
		vars := make([]*script.Variable, len(c.columns))
		for i, column := range c.columns {
			vars[i] = script.NewVariable(column, combination[i])
		}
		list, err := expr.Flat(vars...)
		if err != nil {
			return nil, err
		}
		names = append(names, list...)
	}
	return matchTargets(targets, names), nil
}
