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
	"errors"
	"math"
	"testing"

	"github.com/endink/go-sharding-route/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tables = []string{"t_order_0", "t_order_1", "t_order_2", "t_order_3"}

func tableInfo() *core.DataNodeInfo {
	return core.NewDataNodeInfo("t_order_", 1)
}

func precise(value interface{}) *core.PreciseShardingValue {
	return &core.PreciseShardingValue{Table: "t_order", Column: "order_id", DataNodeInfo: tableInfo(), Value: value}
}

func mustRange(r core.Range, err error) core.Range {
	if err != nil {
		panic(err)
	}
	return r
}

func ranged(r core.Range) *core.RangeShardingValue {
	return &core.RangeShardingValue{Table: "t_order", Column: "order_id", DataNodeInfo: tableInfo(), Range: r}
}

func props(values map[string]string) core.Properties {
	return core.NewMapProperties(values)
}

func TestModPrecise(t *testing.T) {
	mod, err := NewMod(props(map[string]string{PropShardingCount: "4"}))
	require.NoError(t, err)

	for value, expected := range map[interface{}]string{
		5:         "t_order_1",
		int64(8):  "t_order_0",
		uint16(7): "t_order_3",
		"6":       "t_order_2",
		-1:        "t_order_3",
	} {
		target, ok, err := mod.DoPreciseSharding(tables, precise(value))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, expected, target, "%v", value)
	}

	_, ok, err := mod.DoPreciseSharding([]string{"t_order_0", "t_order_2"}, precise(1))
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = mod.DoPreciseSharding(tables, precise("abc"))
	assert.Error(t, err)
}

func TestModPaddedTargets(t *testing.T) {
	mod, _ := NewMod(props(map[string]string{PropShardingCount: "2"}))
	v := precise(3)
	v.DataNodeInfo = core.NewDataNodeInfo("t_order_", 2)
	target, ok, err := mod.DoPreciseSharding([]string{"t_order_00", "t_order_01"}, v)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t_order_01", target)

	v.DataNodeInfo = nil
	target, ok, _ = mod.DoPreciseSharding([]string{"t_order_00", "t_order_01"}, v)
	assert.True(t, ok)
	assert.Equal(t, "t_order_01", target)
}

func TestModRange(t *testing.T) {
	mod, _ := NewMod(props(map[string]string{PropShardingCount: "4"}))

	result, err := mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(5, 6))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_1", "t_order_2"}, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.OpenRange(4, 6))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_1"}, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedOpenRange(4, 4))))
	assert.NoError(t, err)
	assert.Empty(t, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(1, 100))))
	assert.NoError(t, err)
	assert.Equal(t, tables, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.AtLeast(3))))
	assert.NoError(t, err)
	assert.Equal(t, tables, result)
}

func TestModWideRange(t *testing.T) {
	mod, _ := NewMod(props(map[string]string{PropShardingCount: "4"}))

	result, err := mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(int64(-5000000000000000000), int64(5000000000000000000)))))
	assert.NoError(t, err)
	assert.Equal(t, tables, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(int64(math.MinInt64), int64(math.MaxInt64)))))
	assert.NoError(t, err)
	assert.Equal(t, tables, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.OpenRange(int64(math.MaxInt64-2), int64(math.MaxInt64)))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_2"}, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.OpenRange(int64(math.MaxInt64-1), int64(math.MaxInt64)))))
	assert.NoError(t, err)
	assert.Empty(t, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(int64(math.MaxInt64-1), int64(math.MaxInt64)))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_2", "t_order_3"}, result)

	result, err = mod.DoRangeSharding(tables, ranged(mustRange(core.ClosedOpenRange(int64(math.MinInt64), int64(math.MinInt64)))))
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestHashMod(t *testing.T) {
	for _, fn := range []string{HashIdentity, HashMurmur, HashCity, HashXX} {
		algo, err := NewHashMod(props(map[string]string{PropShardingCount: "4", PropHashFunction: fn}))
		require.NoError(t, err, fn)

		first, ok, err := algo.DoPreciseSharding(tables, precise(12345))
		assert.NoError(t, err, fn)
		assert.True(t, ok, fn)
		assert.Contains(t, tables, first)

		second, _, _ := algo.DoPreciseSharding(tables, precise(12345))
		assert.Equal(t, first, second, "hash must be deterministic: %s", fn)

		all, err := algo.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(1, 2))))
		assert.NoError(t, err)
		assert.Equal(t, tables, all)
	}

	identity, _ := NewHashMod(props(map[string]string{PropShardingCount: "4", PropHashFunction: HashIdentity}))
	target, _, _ := identity.DoPreciseSharding(tables, precise(6))
	assert.Equal(t, "t_order_2", target)

	_, _, err := identity.DoPreciseSharding(tables, precise("x"))
	assert.Error(t, err)

	murmur, _ := NewHashMod(props(map[string]string{PropShardingCount: "4"}))
	_, ok, err := murmur.DoPreciseSharding(tables, precise("user-a"))
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBoundaryRange(t *testing.T) {
	algo, err := NewBoundaryRange(props(map[string]string{PropShardingRanges: "10, 20, 30"}))
	require.NoError(t, err)
	p := algo.(PreciseShardingAlgorithm)
	r := algo.(RangeShardingAlgorithm)

	for value, expected := range map[int]string{-5: "t_order_0", 9: "t_order_0", 10: "t_order_1", 25: "t_order_2", 30: "t_order_3", 1000: "t_order_3"} {
		target, ok, err := p.DoPreciseSharding(tables, precise(value))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, expected, target, "%d", value)
	}

	result, err := r.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(15, 25))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_1", "t_order_2"}, result)

	result, err = r.DoRangeSharding(tables, ranged(mustRange(core.ClosedOpenRange(15, 20))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_1"}, result)

	result, err = r.DoRangeSharding(tables, ranged(mustRange(core.LessThan(10))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_0"}, result)
}

func TestVolumeRange(t *testing.T) {
	algo, err := NewVolumeRange(props(map[string]string{PropRangeLower: "10", PropRangeUpper: "40", PropShardingVolume: "10"}))
	require.NoError(t, err)
	p := algo.(PreciseShardingAlgorithm)
	r := algo.(RangeShardingAlgorithm)
	targets := []string{"t_order_0", "t_order_1", "t_order_2", "t_order_3", "t_order_4"}

	for value, expected := range map[int]string{1: "t_order_0", 10: "t_order_1", 19: "t_order_1", 35: "t_order_3", 40: "t_order_4"} {
		target, ok, err := p.DoPreciseSharding(targets, precise(value))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, expected, target, "%d", value)
	}

	result, err := r.DoRangeSharding(targets, ranged(mustRange(core.AtLeast(30))))
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_3", "t_order_4"}, result)
}

func TestInline(t *testing.T) {
	algo, err := NewInline(props(map[string]string{PropAlgorithmExpression: "t_order_${order_id % 4}"}))
	require.NoError(t, err)

	target, ok, err := algo.DoPreciseSharding(tables, precise(7))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t_order_3", target)

	_, ok, err = algo.DoPreciseSharding([]string{"t_order_0"}, precise(7))
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = algo.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(1, 2))))
	var capErr *core.UnsupportedCapabilityError
	assert.True(t, errors.As(err, &capErr))

	v := precise(1)
	v.Column = "user_id"
	_, _, err = algo.DoPreciseSharding(tables, v)
	assert.Error(t, err, "expression refers to order_id only")
}

func TestInlineAllowRange(t *testing.T) {
	algo, err := NewInline(props(map[string]string{
		PropAlgorithmExpression: "t_order_${order_id % 4}",
		PropAllowRangeQuery:     "true",
	}))
	require.NoError(t, err)
	assert.True(t, Supports(algo, CapabilityRange))

	result, err := algo.DoRangeSharding(tables, ranged(mustRange(core.ClosedRange(1, 2))))
	assert.NoError(t, err)
	assert.Equal(t, tables, result)
}

func TestComplexInline(t *testing.T) {
	algo, err := NewComplexInline(props(map[string]string{
		PropShardingColumns:     "user_id, order_id",
		PropAlgorithmExpression: "t_order_${(user_id + order_id) % 4}",
	}))
	require.NoError(t, err)

	v := &core.ComplexKeysShardingValue{
		Table: "t_order",
		Values: []core.ShardingValue{
			core.NewListShardingValue("t_order", "user_id", 1, 2),
			core.NewPreciseShardingValue("t_order", "ORDER_ID", 1),
		},
	}
	result, err := algo.DoComplexSharding(tables, v)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t_order_2", "t_order_3"}, result)

	partial := &core.ComplexKeysShardingValue{
		Table:  "t_order",
		Values: []core.ShardingValue{core.NewPreciseShardingValue("t_order", "user_id", 1)},
	}
	result, err = algo.DoComplexSharding(tables, partial)
	assert.NoError(t, err)
	assert.Equal(t, tables, result)

	r, _ := core.ClosedRange(1, 3)
	withRange := &core.ComplexKeysShardingValue{
		Table:  "t_order",
		Values: []core.ShardingValue{core.NewRangeShardingValue("t_order", "order_id", r)},
	}
	_, err = algo.DoComplexSharding(tables, withRange)
	var capErr *core.UnsupportedCapabilityError
	if assert.True(t, errors.As(err, &capErr)) {
		assert.Equal(t, "order_id", capErr.Column)
	}
}

func TestHintInline(t *testing.T) {
	algo, err := NewHintInline(props(nil))
	require.NoError(t, err)

	result, err := algo.DoHintSharding([]string{"ds0", "ds1"}, core.NewHintShardingValue("t_order", "", "ds1", "ds9"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"ds1"}, result)

	algo, err = NewHintInline(props(map[string]string{PropAlgorithmExpression: "ds${value % 2}"}))
	require.NoError(t, err)
	result, err = algo.DoHintSharding([]string{"ds0", "ds1"}, core.NewHintShardingValue("t_order", "", 3, 4))
	assert.NoError(t, err)
	assert.Equal(t, []string{"ds0", "ds1"}, result)
}
