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

package collection

import (
	"fmt"
	"reflect"
	"strings"
)

// HashSet holds distinct elements and remembers the order they were first added in.
// Elements whose type is not hashable are compared with reflect.DeepEqual.
type HashSet struct {
	items map[interface{}]struct{}
	order []interface{}
}

var justNothing = struct{}{}

// NewHashSet instantiates a new set and adds the passed values, if any, to the set
func NewHashSet(values ...interface{}) *HashSet {
	set := &HashSet{items: make(map[interface{}]struct{}, len(values))}
	if len(values) > 0 {
		set.Add(values...)
	}
	return set
}

func hashable(item interface{}) bool {
	return item == nil || reflect.TypeOf(item).Comparable()
}

// Add adds the items (one or more) to the set.
func (set *HashSet) Add(items ...interface{}) {
	for _, item := range items {
		if set.Contains(item) {
			continue
		}
		if hashable(item) {
			set.items[item] = justNothing
		}
		set.order = append(set.order, item)
	}
}

// Remove removes the items (one or more) from the set.
func (set *HashSet) Remove(items ...interface{}) {
	for _, item := range items {
		idx := set.indexOf(item)
		if idx < 0 {
			continue
		}
		if hashable(item) {
			delete(set.items, item)
		}
		set.order = append(set.order[:idx], set.order[idx+1:]...)
	}
}

func (set *HashSet) indexOf(item interface{}) int {
	for i, v := range set.order {
		if hashable(item) && hashable(v) {
			if v == item {
				return i
			}
		} else if reflect.DeepEqual(v, item) {
			return i
		}
	}
	return -1
}

// Contains check if items (one or more) are present in the set.
// Returns true if no arguments are passed at all, i.e. set is always superset of empty set.
func (set *HashSet) Contains(items ...interface{}) bool {
	for _, item := range items {
		if hashable(item) {
			if _, contains := set.items[item]; !contains {
				return false
			}
		} else if set.indexOf(item) < 0 {
			return false
		}
	}
	return true
}

// Empty returns true if set does not contain any elements.
func (set *HashSet) Empty() bool {
	return set.Size() == 0
}

// Size returns number of elements within the set.
func (set *HashSet) Size() int {
	return len(set.order)
}

// Clear clears all values in the set.
func (set *HashSet) Clear() {
	set.items = make(map[interface{}]struct{})
	set.order = nil
}

// Values returns all items in insertion order.
func (set *HashSet) Values() []interface{} {
	values := make([]interface{}, len(set.order))
	copy(values, set.order)
	return values
}

func (set *HashSet) Select(action func(item interface{}) (bool, error)) ([]interface{}, error) {
	var result []interface{}
	for _, item := range set.order {
		ok, err := action(item)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, item)
		}
	}
	return result, nil
}

// String returns a string representation of container
func (set *HashSet) String() string {
	items := make([]string, 0, len(set.order))
	for _, k := range set.order {
		items = append(items, fmt.Sprintf("%v", k))
	}
	return "HashSet\n" + strings.Join(items, ", ")
}
