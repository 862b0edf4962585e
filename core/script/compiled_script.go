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
	"reflect"

	"github.com/d5/tengo/v2"
	"github.com/pingcap/errors"
	"github.com/scylladb/go-set/strset"
)

// CompiledScript is immutable and safe for concurrent use, each run works on its own copy.
type CompiledScript interface {
	Run(variables ...*Variable) ([]string, error)
	Raw() string
}

type tengoScript struct {
	raw       string
	compiled  *tengo.Compiled
	resultVar string
	names     *strset.Set
}

func (script *tengoScript) Raw() string {
	return script.raw
}

func (script *tengoScript) Run(variables ...*Variable) ([]string, error) {
	c := script.compiled.Clone()
	for _, v := range variables {
		if !script.names.Has(v.Name) {
			continue
		}
		if err := c.Set(v.Name, normalizeValue(v.Value)); err != nil {
			return nil, errors.Annotatef(err, "set variable '%s' fault", v.Name)
		}
	}
	if err := c.Run(); err != nil {
		return nil, err
	}
	return script.result(c.Get(script.resultVar))
}

func (script *tengoScript) result(v *tengo.Variable) ([]string, error) {
	golangValue := v.Value()
	if golangValue == nil {
		return nil, invalidReturnTypeError(script.raw, v)
	}
	switch reflect.TypeOf(golangValue).Kind() {
	case reflect.Array, reflect.Slice:
		if array, ok := golangValue.([]interface{}); ok {
			return stringArray(array), nil
		}
		return nil, invalidReturnTypeError(script.raw, v)
	case reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return []string{fmt.Sprint(golangValue)}, nil
	case reflect.Int32:
		// tengo chars
		return []string{string(golangValue.(rune))}, nil
	default:
		return nil, invalidReturnTypeError(script.raw, v)
	}
}

func stringArray(array []interface{}) []string {
	list := make([]string, len(array))
	for i, v := range array {
		list[i] = fmt.Sprint(v)
	}
	return list
}

func invalidReturnTypeError(raw string, v *tengo.Variable) error {
	return fmt.Errorf("script return invalid type, excepted array that element is number or string, and primitive number or string\nscript: %s\nreturn type: %s", raw, v.ValueType())
}
