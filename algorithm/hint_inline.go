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
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/script"
)

const (
	hintValueVariable     = "value"
	defaultHintExpression = "${value}"
)

// HintInline evaluates an expression for every hint value, the value is bound to the "value" variable.
type HintInline struct {
	cache *inlineCache
}

func NewHintInline(props core.Properties) (*HintInline, error) {
	h := &HintInline{
		cache: &inlineCache{expression: props.GetString(PropAlgorithmExpression, defaultHintExpression)},
	}
	if _, err := h.cache.get(hintValueVariable); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *HintInline) Type() string {
	return TypeHintInline
}

func (h *HintInline) Capabilities() Capability {
	return CapabilityHint
}

func (h *HintInline) DoHintSharding(targets []string, v *core.HintShardingValue) ([]string, error) {
	expr, err := h.cache.get(hintValueVariable)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, value := range v.Values {
		list, err := expr.Flat(script.NewVariable(hintValueVariable, value))
		if err != nil {
			return nil, err
		}
		names = append(names, list...)
	}
	return matchTargets(targets, names), nil
}
