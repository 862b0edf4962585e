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


package script

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"
)

var _ InlineExpression = &inlineExpr{}

// InlineExpression is a comma separated list of names where "${...}" parts are scripts,
// e.g. "ds${range(0,1)}.t_order_${[0,1]}" or "t_order_${order_id % 2}".
type InlineExpression interface {
	Flat(variables ...*Variable) ([]string, error)
	FlatScalar(variables ...*Variable) (string, error)
	RawExpression() string
	VariableNames() []string
}

type inlineExpr struct {
	expression string
	segments   []*inlineSegmentGroup
	varsNames  []string
}

func (i *inlineExpr) RawExpression() string {
	return i.expression
}

func (i *inlineExpr) VariableNames() []string {
	return i.varsNames
}

func (i *inlineExpr) FlatScalar(variables ...*Variable) (string, error) {
	list, err := i.Flat(variables...)
	if err != nil {
		return "", err
	}
	switch len(list) {
	case 0:
		return "", nil
	case 1:
		return list[0], nil
	}
	return "", fmt.Errorf("inline expression '%s' should return a single value, but got: %s", i.expression, strings.Join(list, ", "))
}

func (i *inlineExpr) Flat(variables ...*Variable) ([]string, error) {
	var list []string

	for _, g := range i.segments {
		var current []string
		for _, s := range g.segments {
			if s.script == nil {
				current = outJoin(current, []string{s.prefix})
				continue
			}
			l, err := s.script.Run(variables...)
			if err != nil {
				return nil, i.wrapExecuteError(err, variables...)
			}
			current = outJoin(current, flatFill(s.prefix, l))
		}
		list = append(list, current...)
	}
	return distinct(list), nil
}

func (i *inlineExpr) wrapExecuteError(e error, vars ...*Variable) error {
	names := "<none>"
	if len(vars) > 0 {
		parts := make([]string, len(vars))
		for idx, v := range vars {
			parts[idx] = v.String()
		}
		names = strings.Join(parts, ", ")
	}
	return errors.Annotatef(e, "inline sharding fault, script: %s, variables: %s", i.expression, names)
}

// NewInlineExpression parses and compiles expression, variableNames are the variables scripts may refer to.
func NewInlineExpression(expression string, variableNames ...string) (InlineExpression, error) {
	expr := &inlineExpr{expression: expression, varsNames: variableNames}

	segments, err := splitSegments(expression, variableNames...)
	if err != nil {
		return nil, err
	}
	expr.segments = segments
	return expr, nil
}

// IsInlineExpression reports whether s contains a script part.
func IsInlineExpression(s string) bool {
	return strings.Contains(s, "${")
}
