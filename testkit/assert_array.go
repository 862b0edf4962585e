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
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/endink/go-sharding-route/core/comparison"
	"github.com/stretchr/testify/assert"
)

type equatable interface {
	Equals(v interface{}) bool
}

func ErrorDifferentInfo(excepted interface{}, actual interface{}) string {
	sb := &strings.Builder{}
	sb.WriteString("item not same\n")
	fmt.Fprintf(sb, "excepted: \n%v\n\n", excepted)
	fmt.Fprintf(sb, "actual: \n%v\n\n", actual)
	return sb.String()
}

func errorDifferent(excepted []interface{}, actual []interface{}) string {
	sb := &strings.Builder{}
	sb.WriteString("array not same\n")

	sb.WriteString("excepted: ")
	writeArray(sb, sorted(excepted))
	sb.WriteString("\n")

	sb.WriteString("actual: ")
	writeArray(sb, sorted(actual))
	sb.WriteString("\n")

	return sb.String()
}

func sorted(values []interface{}) []interface{} {
	copied := make([]interface{}, len(values))
	copy(copied, values)
	utils.Sort(copied, func(a, b interface{}) int {
		i, err := comparison.Compare(a, b)
		if err != nil {
			return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
		}
		return i
	})
	return copied
}

func writeArray(sb *strings.Builder, excepted []interface{}) {
	if len(excepted) == 0 {
		sb.WriteString("<empty array>")
		return
	}
	for i, e := range excepted {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(e))
	}
}

func AssertEmptyArray(t assert.TestingT, actual []interface{}, msgAndArgs ...interface{}) bool {
	return AssertArrayEquals(t, nil, actual, msgAndArgs...)
}

// AssertStrArrayEquals checks both slices hold the same strings regardless of order.
func AssertStrArrayEquals(t assert.TestingT, excepted []string, actual []string, msgAndArgs ...interface{}) bool {
	return AssertArrayEquals(t, convertStrArray(excepted), convertStrArray(actual), msgAndArgs...)
}

func AssertArrayEquals(t assert.TestingT, excepted []interface{}, actual []interface{}, msgAndArgs ...interface{}) bool {
	if len(excepted) == 0 && len(actual) == 0 {
		return true
	}

	if len(excepted) != len(actual) {
		return assert.Fail(t, errorDifferent(excepted, actual), msgAndArgs...)
	}

	for _, r := range excepted {
		if !arrayContains(actual, r) {
			return assert.Fail(t, errorDifferent(excepted, actual), msgAndArgs...)
		}
	}
	return true
}

func convertStrArray(values []string) []interface{} {
	r := make([]interface{}, len(values))

	for i, value := range values {
		r[i] = value
	}
	return r
}

func arrayContains(ranges []interface{}, value interface{}) bool {
	for _, r := range ranges {
		if r == value {
			return true
		}
		if eq, ok := value.(equatable); ok && eq.Equals(r) {
			return true
		}
	}
	return false
}
