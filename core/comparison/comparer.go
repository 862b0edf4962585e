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
	"fmt"
	"reflect"
	"strings"

	"github.com/pingcap/errors"
)

var ErrTypeNotComparable = errors.New("values have different types cannot be compared")

type kindClass int

const (
	classInvalid kindClass = iota
	classSigned
	classUnsigned
	classFloat
	classString
)

func classOf(value interface{}) kindClass {
	if value == nil {
		return classInvalid
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUnsigned
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	}
	return classInvalid
}

func IsCompareSupported(value interface{}) bool {
	return classOf(value) != classInvalid
}

// IsNumber reports whether value is an integer or floating point number.
func IsNumber(value interface{}) bool {
	c := classOf(value)
	return c == classSigned || c == classUnsigned || c == classFloat
}

// AsInt64 converts an integer value of any width to int64.
// Floating point values are accepted when they carry no fraction.
func AsInt64(value interface{}) (int64, error) {
	switch classOf(value) {
	case classSigned:
		return reflect.ValueOf(value).Int(), nil
	case classUnsigned:
		u := reflect.ValueOf(value).Uint()
		if u > 1<<63-1 {
			return 0, fmt.Errorf("unsigned value %d overflows int64", u)
		}
		return int64(u), nil
	case classFloat:
		f := reflect.ValueOf(value).Float()
		if f != float64(int64(f)) {
			return 0, fmt.Errorf("float value %v is not an integer", f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("value %v of type %T is not an integer", value, value)
}

// Compare returns -1, 0 or 1. Integers of different width and signedness are compared by value,
// integers and floats are compared as float64. Strings only compare to strings.
func Compare(a, b interface{}) (int, error) {
	ca, cb := classOf(a), classOf(b)
	if ca == classInvalid || cb == classInvalid {
		return 0, fmt.Errorf("unsupported type for comparison: %T, %T", a, b)
	}

	if ca == classString || cb == classString {
		if ca != cb {
			return 0, typeError(a, b)
		}
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), nil
	}

	if ca == classFloat || cb == classFloat {
		return compareFloat64(toFloat64(a, ca), toFloat64(b, cb)), nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ca == classSigned && cb == classSigned:
		return compareInt64(va.Int(), vb.Int()), nil
	case ca == classUnsigned && cb == classUnsigned:
		return compareUint64(va.Uint(), vb.Uint()), nil
	case ca == classSigned:
		if va.Int() < 0 {
			return -1, nil
		}
		return compareUint64(uint64(va.Int()), vb.Uint()), nil
	default:
		if vb.Int() < 0 {
			return 1, nil
		}
		return compareUint64(va.Uint(), uint64(vb.Int())), nil
	}
}

// Equal reports whether a and b are comparable and hold the same value.
func Equal(a, b interface{}) bool {
	c, err := Compare(a, b)
	return err == nil && c == 0
}

func Min(a, b interface{}) (interface{}, error) {
	c, err := Compare(a, b)
	if err != nil {
		return nil, err
	}
	if c <= 0 {
		return a, nil
	}
	return b, nil
}

func Max(a, b interface{}) (interface{}, error) {
	c, err := Compare(a, b)
	if err != nil {
		return nil, err
	}
	if c >= 0 {
		return a, nil
	}
	return b, nil
}

func toFloat64(v interface{}, c kindClass) float64 {
	rv := reflect.ValueOf(v)
	switch c {
	case classSigned:
		return float64(rv.Int())
	case classUnsigned:
		return float64(rv.Uint())
	}
	return rv.Float()
}

func compareInt64(x, y int64) int {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}
	return 1
}

func compareUint64(x, y uint64) int {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}
	return 1
}

func compareFloat64(x, y float64) int {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}
	return 1
}

func typeError(a, b interface{}) error {
	return errors.Annotatef(ErrTypeNotComparable, "type a: %#v, type b: %#v", a, b)
}
