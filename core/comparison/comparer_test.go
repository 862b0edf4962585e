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

package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSameKind(t *testing.T) {
	c, err := Compare(1, 2)
	assert.Nil(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare("b", "a")
	assert.Nil(t, err)
	assert.Equal(t, 1, c)

	c, err = Compare(3.3, 3.3)
	assert.Nil(t, err)
	assert.Equal(t, 0, c)
}

func TestCompareWidening(t *testing.T) {
	c, err := Compare(int32(7), int64(7))
	assert.Nil(t, err)
	assert.Equal(t, 0, c)

	c, err = Compare(uint8(3), 4)
	assert.Nil(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(-1, uint64(0))
	assert.Nil(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(uint(10), -5)
	assert.Nil(t, err)
	assert.Equal(t, 1, c)

	c, err = Compare(2, 2.5)
	assert.Nil(t, err)
	assert.Equal(t, -1, c)
}

func TestCompareMismatch(t *testing.T) {
	_, err := Compare("1", 1)
	assert.Error(t, err)

	_, err = Compare(nil, 1)
	assert.Error(t, err)

	_, err = Compare([]byte("a"), []byte("b"))
	assert.Error(t, err)
}

func TestMinMax(t *testing.T) {
	v, err := Min(5, 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, v)

	v, err = Max("a", "z")
	assert.Nil(t, err)
	assert.Equal(t, "z", v)
}

func TestAsInt64(t *testing.T) {
	v, err := AsInt64(uint16(12))
	assert.Nil(t, err)
	assert.Equal(t, int64(12), v)

	v, err = AsInt64(float64(4))
	assert.Nil(t, err)
	assert.Equal(t, int64(4), v)

	_, err = AsInt64(4.5)
	assert.Error(t, err)

	_, err = AsInt64("4")
	assert.Error(t, err)
}
