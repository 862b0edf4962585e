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
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDataNodeInfoFormat(t *testing.T) {
	info := NewDataNodeInfo("t_order_", 2)
	assert.Equal(t, "t_order_01", info.Format(1))
	assert.Equal(t, "t_order_12", info.Format(12))
	assert.Equal(t, "t_order_123", info.Format(123))

	info = NewDataNodeInfo("ds", 0)
	assert.Equal(t, "ds3", info.Format(3))

	info = &DataNodeInfo{Prefix: "t_", SuffixMinLength: 3, PaddingChar: 'x'}
	assert.Equal(t, "t_xx7", info.Format(7))

	info = &DataNodeInfo{Prefix: "t_", SuffixMinLength: 3}
	assert.Equal(t, "t_007", info.Format(7))
}

func TestParseDataNodeInfo(t *testing.T) {
	cases := []struct {
		logic  string
		actual string
		prefix string
		length int
	}{
		{"t_order", "t_order_01", "t_order_", 2},
		{"t_order", "t_order_1", "t_order_", 1},
		{"t_order", "t_order", "t_order", 0},
		{"", "ds0", "ds", 1},
		{"", "ds_000", "ds_", 3},
		{"t_user2", "t_user2_05", "t_user2_", 2},
		{"order", "t_order_9", "t_order_", 1},
	}
	for _, c := range cases {
		info := ParseDataNodeInfo(c.logic, c.actual)
		assert.Equal(t, c.prefix, info.Prefix, c.actual)
		assert.Equal(t, c.length, info.SuffixMinLength, c.actual)
		if c.length > 0 {
			assert.Equal(t, c.actual, info.Format(parseIndex(c.actual[len(info.Prefix):])), c.actual)
		}
	}
}

func parseIndex(s string) int64 {
	var n int64
	for _, r := range s {
		n = n*10 + int64(r-'0')
	}
	return n
}
