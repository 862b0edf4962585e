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
	"strconv"
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/config"
)

// Properties are the free form settings of an algorithm or a rule.
type Properties interface {
	GetValues() map[string]string
	Get(key string) (string, bool)
	GetString(key string, defaultValue string) string
	GetInt(key string, defaultValue int) (int, error)
	GetBool(key string, defaultValue bool) (bool, error)
	PopulateValue(instance interface{}) error
}

var EmptyProperties Properties = &properties{values: make(map[string]string)}

func NewProperties(value config.Value) (Properties, error) {
	values := make(map[string]string)
	if value.HasValue() {
		if err := value.Populate(&values); err != nil {
			return nil, errors.Annotate(err, "populate properties fault")
		}
	}
	return &properties{values: normalizeKeys(values)}, nil
}

func NewMapProperties(values map[string]string) Properties {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &properties{values: normalizeKeys(copied)}
}

func normalizeKeys(values map[string]string) map[string]string {
	result := make(map[string]string, len(values))
	for k, v := range values {
		result[TrimAndLower(k)] = v
	}
	return result
}

type properties struct {
	values map[string]string
}

func (props *properties) GetValues() map[string]string {
	return props.values
}

func (props *properties) Get(key string) (string, bool) {
	v, ok := props.values[TrimAndLower(key)]
	return v, ok
}

func (props *properties) GetString(key string, defaultValue string) string {
	if v, ok := props.Get(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return defaultValue
}

func (props *properties) GetInt(key string, defaultValue int) (int, error) {
	v := props.GetString(key, "")
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Annotatef(err, "property '%s' must be an integer", key)
	}
	return n, nil
}

func (props *properties) GetBool(key string, defaultValue bool) (bool, error) {
	v := props.GetString(key, "")
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Annotatef(err, "property '%s' must be a boolean", key)
	}
	return b, nil
}

// PopulateValue decodes the properties into instance through yaml tags, keys the instance does not name are ignored.
func (props *properties) PopulateValue(instance interface{}) error {
	if len(props.values) == 0 {
		return nil
	}
	typed := make(map[string]interface{}, len(props.values))
	for k, v := range props.values {
		typed[k] = scalarValue(v)
	}
	provider, err := config.NewYAML(config.Static(typed), config.Permissive())
	if err != nil {
		return errors.Annotate(err, "load properties fault")
	}
	return errors.Annotate(provider.Get(config.Root).Populate(instance), "populate properties fault")
}

// scalarValue keeps the text of v intact when decoded back into a string field.
func scalarValue(v string) interface{} {
	s := strings.TrimSpace(v)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return n
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}
