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
	"strings"
	"sync"

	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/script"
	"github.com/pingcap/errors"
)

const (
	PropAlgorithmExpression = "algorithm-expression"
	PropAllowRangeQuery     = "allow-range-query-with-inline-sharding"
)

// inlineCache compiles an expression once per set of variable names.
type inlineCache struct {
	expression  string
	expressions sync.Map
}

func (c *inlineCache) get(names ...string) (script.InlineExpression, error) {
	key := strings.Join(names, ",")
	if v, ok := c.expressions.Load(key); ok {
		return v.(script.InlineExpression), nil
	}
	e, err := script.NewInlineExpression(c.expression, names...)
	if err != nil {
		return nil, errors.Annotatef(err, "compile inline expression '%s' fault", c.expression)
	}
	v, _ := c.expressions.LoadOrStore(key, e)
	return v.(script.InlineExpression), nil
}

// Inline evaluates an expression such as "t_order_${order_id % 2}", the sharding column is the script variable.
type Inline struct {
	cache      *inlineCache
	allowRange bool
}

type inlineSettings struct {
	Expression string `yaml:"algorithm-expression"`
	AllowRange bool   `yaml:"allow-range-query-with-inline-sharding"`
}

func NewInline(props core.Properties) (*Inline, error) {
	s := &inlineSettings{}
	if err := props.PopulateValue(s); err != nil {
		return nil, errors.Annotate(err, "invalid inline algorithm properties")
	}
	expression := strings.TrimSpace(s.Expression)
	if expression == "" {
		return nil, fmt.Errorf("property '%s' is required", PropAlgorithmExpression)
	}
	if !script.IsInlineExpression(expression) {
		return nil, fmt.Errorf("property '%s' must contain a script like ${...}, given: %s", PropAlgorithmExpression, expression)
	}
	return &Inline{
		cache:      &inlineCache{expression: expression},
		allowRange: s.AllowRange,
	}, nil
}

func (i *Inline) Type() string {
	return TypeInline
}

func (i *Inline) Capabilities() Capability {
	if i.allowRange {
		return CapabilityPrecise | CapabilityRange
	}
	return CapabilityPrecise
}

func (i *Inline) DoPreciseSharding(targets []string, v *core.PreciseShardingValue) (string, bool, error) {
	column := strings.TrimSpace(v.Column)
	expr, err := i.cache.get(column)
	if err != nil {
		return "", false, err
	}
	name, err := expr.FlatScalar(script.NewVariable(column, v.Value))
	if err != nil {
		return "", false, err
	}
	matched := matchTargets(targets, []string{name})
	if len(matched) == 0 {
		return "", false, nil
	}
	return matched[0], true, nil
}

// DoRangeSharding returns all targets, only reachable when range queries are allowed.
func (i *Inline) DoRangeSharding(targets []string, v *core.RangeShardingValue) ([]string, error) {
	if !i.allowRange {
		return nil, &core.UnsupportedCapabilityError{Capability: CapabilityRange.String(), Column: v.Column, Algorithm: TypeInline}
	}
	return allTargets(targets), nil
}
