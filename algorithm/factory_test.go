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
	"testing"

	"github.com/endink/go-sharding-route/core"
	"github.com/stretchr/testify/assert"
)

func TestNewBuiltin(t *testing.T) {
	cases := map[string]map[string]string{
		"inline":          {PropAlgorithmExpression: "ds${user_id % 2}"},
		TypeMod:           {PropShardingCount: "4"},
		TypeHashMod:       {PropShardingCount: "4", PropHashFunction: "city"},
		"Boundary_Range":  {PropShardingRanges: "10, 20"},
		TypeVolumeRange:   {PropRangeLower: "0", PropRangeUpper: "100", PropShardingVolume: "10"},
		TypeComplexInline: {PropShardingColumns: "a, b", PropAlgorithmExpression: "t_${a + b}"},
		TypeHintInline:    nil,
	}
	for tp, props := range cases {
		algo, err := New(tp, core.NewMapProperties(props))
		if assert.NoError(t, err, tp) {
			assert.NotEmpty(t, algo.Type())
		}
	}
}

func TestNewUnknownType(t *testing.T) {
	_, err := New("FOO", nil)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "FOO")
	}
}

func TestNewInvalidProperties(t *testing.T) {
	cases := map[string]map[string]string{
		TypeInline:        {},
		TypeMod:           {PropShardingCount: "0"},
		TypeHashMod:       {PropShardingCount: "2", PropHashFunction: "md5"},
		TypeBoundaryRange: {PropShardingRanges: "20, 10"},
		TypeVolumeRange:   {PropRangeLower: "10", PropRangeUpper: "5", PropShardingVolume: "1"},
		TypeComplexInline: {PropShardingColumns: "a", PropAlgorithmExpression: "t_${b}"},
		TypeHintInline:    {PropAlgorithmExpression: "t_${"},
	}
	for tp, props := range cases {
		_, err := New(tp, core.NewMapProperties(props))
		assert.Error(t, err, tp)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register(NewFactory(TypeMod, func(props core.Properties) (ShardingAlgorithm, error) {
		return NewMod(props)
	}))
	assert.Error(t, err)
}
