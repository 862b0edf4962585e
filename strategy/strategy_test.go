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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/endink/go-sharding-route/algorithm"
	"github.com/endink/go-sharding-route/algorithm/mock"
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/testkit"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numbers = []string{"1", "2", "3"}

// modFixture routes a precise value to the candidate ending with value % 4, a range to its lower endpoint.
func modFixture(ctrl *gomock.Controller, capability algorithm.Capability) *mock.MockStandardAlgorithm {
	algo := mock.NewMockStandardAlgorithm(ctrl)
	algo.EXPECT().Type().Return("MOD_FIXTURE").AnyTimes()
	algo.EXPECT().Capabilities().Return(capability).AnyTimes()
	algo.EXPECT().DoPreciseSharding(gomock.Any(), gomock.Any()).DoAndReturn(
		func(targets []string, v *core.PreciseShardingValue) (string, bool, error) {
			suffix := strconv.Itoa(v.Value.(int) % 4)
			for _, t := range targets {
				if strings.HasSuffix(t, suffix) {
					return t, true, nil
				}
			}
			return "", false, nil
		}).AnyTimes()
	algo.EXPECT().DoRangeSharding(gomock.Any(), gomock.Any()).DoAndReturn(
		func(targets []string, v *core.RangeShardingValue) ([]string, error) {
			return []string{fmt.Sprint(v.Range.LowerBound())}, nil
		}).AnyTimes()
	return algo
}

func newStandard(t *testing.T, ctrl *gomock.Controller, capability algorithm.Capability) *Standard {
	s, err := NewStandard("column", modFixture(ctrl, capability))
	require.NoError(t, err)
	return s
}

func TestNoneStrategy(t *testing.T) {
	values := testkit.Values(testkit.Precise("t", "column", 1), testkit.Between(t, "t", "column", 1, 3))

	result, err := NoneStrategy.DoSharding(numbers, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, numbers, result)

	result, err = NoneStrategy.DoSharding([]string{}, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, "none", NoneStrategy.Type().String())
}

func TestStandardPrecise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newStandard(t, ctrl, algorithm.CapabilityPrecise)

	targets := []string{"t_0", "t_1", "t_2", "t_3"}
	result, err := s.DoSharding(targets, testkit.Values(testkit.Precise("t", "column", 6)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_2"}, result)

	result, err = s.DoSharding(targets, testkit.Values(testkit.List("t", "column", 5, 2, 1)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_1", "t_2"}, result, "union in candidate order")
}

func TestStandardRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newStandard(t, ctrl, algorithm.CapabilityPrecise|algorithm.CapabilityRange)

	result, err := s.DoSharding(numbers, testkit.Values(testkit.Open(t, "t", "column", 1, 3)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, result)

	again, err := s.DoSharding(numbers, testkit.Values(testkit.Open(t, "t", "column", 1, 3)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestStandardRangeWithoutCapability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newStandard(t, ctrl, algorithm.CapabilityPrecise)

	_, err := s.DoSharding(numbers, testkit.Values(testkit.Open(t, "t", "column", 1, 3)), nil, core.EmptyProperties)
	var capErr *core.UnsupportedCapabilityError
	if assert.True(t, errors.As(err, &capErr)) {
		assert.Equal(t, "range", capErr.Capability)
		assert.Equal(t, "column", capErr.Column)
		assert.Equal(t, "MOD_FIXTURE", capErr.Algorithm)
	}
}

func TestStandardColumnFiltering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newStandard(t, ctrl, algorithm.CapabilityPrecise)

	result, err := s.DoSharding(numbers, testkit.Values(testkit.Precise("t", "other", 2)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, numbers, result, "no condition falls back to all targets")

	result, err = s.DoSharding(numbers, testkit.Values(testkit.Precise("t", " COLUMN ", 2), testkit.Precise("t", "other", 3)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2"}, result)

	result, err = s.DoSharding(numbers, testkit.Values(core.NewHintShardingValue("t", "column", 3)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, numbers, result, "hint values are ignored")
}

func TestStandardEmptyInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	algo := mock.NewMockStandardAlgorithm(ctrl)
	algo.EXPECT().Type().Return("MOCK").AnyTimes()
	algo.EXPECT().Capabilities().Return(algorithm.CapabilityPrecise).AnyTimes()
	s, err := NewStandard("column", algo)
	require.NoError(t, err)

	result, err := s.DoSharding([]string{}, testkit.Values(testkit.Precise("t", "column", 1)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Empty(t, result)

	result, err = s.DoSharding(numbers, testkit.Values(testkit.List("t", "column")), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestStandardUnknownTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	algo := mock.NewMockStandardAlgorithm(ctrl)
	algo.EXPECT().Type().Return("MOCK").AnyTimes()
	algo.EXPECT().Capabilities().Return(algorithm.CapabilityPrecise).AnyTimes()
	algo.EXPECT().DoPreciseSharding(gomock.Any(), gomock.Any()).Return("9", true, nil)
	s, err := NewStandard("column", algo)
	require.NoError(t, err)

	_, err = s.DoSharding(numbers, testkit.Values(testkit.Precise("t", "column", 1)), nil, core.EmptyProperties)
	var unknown *core.UnknownTargetError
	if assert.True(t, errors.As(err, &unknown)) {
		assert.Equal(t, "9", unknown.Target)
	}
}

func TestStandardPassesDataNodeInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	info := core.NewDataNodeInfo("t_", 1)
	algo := mock.NewMockStandardAlgorithm(ctrl)
	algo.EXPECT().Type().Return("MOCK").AnyTimes()
	algo.EXPECT().Capabilities().Return(algorithm.CapabilityPrecise).AnyTimes()
	algo.EXPECT().DoPreciseSharding(gomock.Any(), gomock.Any()).DoAndReturn(
		func(targets []string, v *core.PreciseShardingValue) (string, bool, error) {
			assert.Same(t, info, v.DataNodeInfo)
			assert.Equal(t, "Column", v.Column)
			return info.Format(1), true, nil
		})
	s, err := NewStandard("Column", algo)
	require.NoError(t, err)

	result, err := s.DoSharding([]string{"t_0", "t_1"}, testkit.Values(testkit.Precise("t", "column", 1)), info, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_1"}, result)
}

func TestNewStandardCapabilityMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	hint := mock.NewMockHintAlgorithm(ctrl)
	hint.EXPECT().Type().Return("HINT_MOCK").AnyTimes()
	hint.EXPECT().Capabilities().Return(algorithm.CapabilityHint).AnyTimes()

	_, err := NewStandard("column", hint)
	var capErr *core.UnsupportedCapabilityError
	assert.True(t, errors.As(err, &capErr))

	_, err = NewStandard("1column", modFixture(ctrl, algorithm.CapabilityPrecise))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "invalid sharding column of standard strategy")
	}

	_, err = NewComplex("column1", hint)
	assert.True(t, errors.As(err, &capErr))

	_, err = NewHint(modFixture(ctrl, algorithm.CapabilityPrecise))
	assert.True(t, errors.As(err, &capErr))
}

func TestComplex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	algo := mock.NewMockComplexAlgorithm(ctrl)
	algo.EXPECT().Type().Return("COMPLEX_FIXTURE").AnyTimes()
	algo.EXPECT().Capabilities().Return(algorithm.CapabilityComplex).AnyTimes()
	algo.EXPECT().DoComplexSharding(gomock.Any(), gomock.Any()).DoAndReturn(
		func(targets []string, v *core.ComplexKeysShardingValue) ([]string, error) {
			assert.Len(t, v.Values, 2)
			return targets, nil
		})

	s, err := NewComplex("column1, column2", algo)
	require.NoError(t, err)
	assert.Equal(t, []string{"column1", "column2"}, s.Columns())

	values := testkit.Values(
		testkit.List("t", "column1", 1),
		testkit.Open(t, "t", "column2", 1, 3),
		testkit.Precise("t", "column3", 1),
	)
	result, err := s.DoSharding(numbers, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, result)

	result, err = s.DoSharding(numbers, testkit.Values(testkit.Precise("t", "column3", 1)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, numbers, result)

	result, err = s.DoSharding(nil, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestComplexNormalizesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	algo := mock.NewMockComplexAlgorithm(ctrl)
	algo.EXPECT().Type().Return("MOCK").AnyTimes()
	algo.EXPECT().Capabilities().Return(algorithm.CapabilityComplex).AnyTimes()
	algo.EXPECT().DoComplexSharding(gomock.Any(), gomock.Any()).Return([]string{"3", "1", "3"}, nil)
	algo.EXPECT().DoComplexSharding(gomock.Any(), gomock.Any()).Return([]string{"4"}, nil)

	s, err := NewComplex("column1", algo)
	require.NoError(t, err)

	values := testkit.Values(testkit.Precise("t", "column1", 1))
	result, err := s.DoSharding(numbers, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, result)

	_, err = s.DoSharding(numbers, values, nil, core.EmptyProperties)
	var unknown *core.UnknownTargetError
	assert.True(t, errors.As(err, &unknown))
}

func TestHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	algo := mock.NewMockHintAlgorithm(ctrl)
	algo.EXPECT().Type().Return("HINT_FIXTURE").AnyTimes()
	algo.EXPECT().Capabilities().Return(algorithm.CapabilityHint).AnyTimes()
	algo.EXPECT().DoHintSharding(gomock.Any(), gomock.Any()).DoAndReturn(
		func(targets []string, v *core.HintShardingValue) ([]string, error) {
			result := make([]string, 0, len(v.Values))
			for _, value := range v.Values {
				result = append(result, fmt.Sprint(value))
			}
			return result, nil
		}).AnyTimes()

	s, err := NewHint(algo)
	require.NoError(t, err)

	values := testkit.Values(testkit.Precise("t", "column", 1), core.NewHintShardingValue("t", "", 3, 2))
	result, err := s.DoSharding(numbers, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, result)

	result, err = s.DoSharding(numbers, testkit.Values(testkit.Precise("t", "column", 1)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, numbers, result)

	result, err = s.DoSharding(numbers, testkit.Values(core.NewHintShardingValue("t", "")), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Equal(t, numbers, result)

	result, err = s.DoSharding(nil, values, nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Empty(t, result)

	result, err = s.DoSharding([]string{}, testkit.Values(testkit.Precise("t", "column", 1)), nil, core.EmptyProperties)
	assert.NoError(t, err)
	assert.Empty(t, result)

	assert.True(t, HasCondition(s, values))
	assert.False(t, HasCondition(s, testkit.Values(core.NewHintShardingValue("t", ""))))
}

func TestHasCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newStandard(t, ctrl, algorithm.CapabilityPrecise)

	assert.True(t, HasCondition(s, testkit.Values(testkit.Precise("t", "Column", 1))))
	assert.False(t, HasCondition(s, testkit.Values(testkit.Precise("t", "other", 1))))
	assert.True(t, HasCondition(NoneStrategy, nil))
}
