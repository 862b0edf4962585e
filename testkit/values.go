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


package testkit

import (
	"testing"

	"github.com/endink/go-sharding-route/core"
)

// Precise builds "table.column = value".
func Precise(table, column string, value interface{}) core.ShardingValue {
	return core.NewPreciseShardingValue(table, column, value)
}

// List builds "table.column IN (values)".
func List(table, column string, values ...interface{}) core.ShardingValue {
	return core.NewListShardingValue(table, column, values...)
}

// Between builds a closed range value and fails the test on invalid bounds.
func Between(t testing.TB, table, column string, lower, upper interface{}) core.ShardingValue {
	t.Helper()
	r, err := core.ClosedRange(lower, upper)
	if err != nil {
		t.Fatalf("invalid range [%v, %v]: %v", lower, upper, err)
	}
	return core.NewRangeShardingValue(table, column, r)
}

// Open builds an open range value and fails the test on invalid bounds.
func Open(t testing.TB, table, column string, lower, upper interface{}) core.ShardingValue {
	t.Helper()
	r, err := core.OpenRange(lower, upper)
	if err != nil {
		t.Fatalf("invalid range (%v, %v): %v", lower, upper, err)
	}
	return core.NewRangeShardingValue(table, column, r)
}

func Values(values ...core.ShardingValue) []core.ShardingValue {
	return values
}
