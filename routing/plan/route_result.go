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


package plan

import (
	"fmt"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/scylladb/go-set/strset"
	"strings"
)

// RouteResult is the route result of a statement.
// Units are ordered by data source name, then by the order they were added.
// The cursor methods Next, Current and Reset are not safe for concurrent use.
type RouteResult struct {
	units *treemap.Map // key = data source name, value = *arraylist.List of *RouteUnit
	keys  *strset.Set
	size  int

	cursorDs    int
	cursorIndex int
}

// NewRouteResult constructor of RouteResult
func NewRouteResult() *RouteResult {
	r := &RouteResult{
		units: treemap.NewWithStringComparator(),
		keys:  strset.New(),
	}
	r.Reset()
	return r
}

// Add appends units, a unit equal to an existing one is ignored.
func (r *RouteResult) Add(units ...*RouteUnit) {
	for _, u := range units {
		key := u.String()
		if r.keys.Has(key) {
			continue
		}
		r.keys.Add(key)
		var list *arraylist.List
		if v, ok := r.units.Get(u.DataSource); ok {
			list = v.(*arraylist.List)
		} else {
			list = arraylist.New()
			r.units.Put(u.DataSource, list)
		}
		list.Add(u)
		r.size++
	}
}

func (r *RouteResult) Len() int {
	return r.size
}

func (r *RouteResult) IsEmpty() bool {
	return r.size == 0
}

// IsSingleDataSource reports whether all units share one data source.
func (r *RouteResult) IsSingleDataSource() bool {
	return r.units.Size() == 1
}

// Units returns all units in result order.
func (r *RouteResult) Units() []*RouteUnit {
	result := make([]*RouteUnit, 0, r.size)
	it := r.units.Iterator()
	for it.Next() {
		list := it.Value().(*arraylist.List)
		list.Each(func(_ int, value interface{}) {
			result = append(result, value.(*RouteUnit))
		})
	}
	return result
}

// DataSources returns the routed data sources sorted by name.
func (r *RouteResult) DataSources() []string {
	keys := r.units.Keys()
	result := make([]string, len(keys))
	for i, k := range keys {
		result[i] = k.(string)
	}
	return result
}

// ActualTables returns the distinct actual tables of the logic table in the data source, in unit order.
func (r *RouteResult) ActualTables(dataSource string, logicTable string) []string {
	v, ok := r.units.Get(dataSource)
	if !ok {
		return nil
	}
	seen := strset.New()
	var result []string
	v.(*arraylist.List).Each(func(_ int, value interface{}) {
		if t, ok := value.(*RouteUnit).ActualTable(logicTable); ok && !seen.Has(t) {
			seen.Add(t)
			result = append(result, t)
		}
	})
	return result
}

// Next moves the cursor to the next unit.
func (r *RouteResult) Next() bool {
	keys := r.units.Keys()
	for r.cursorDs < len(keys) {
		v, _ := r.units.Get(keys[r.cursorDs])
		list := v.(*arraylist.List)
		if r.cursorIndex+1 < list.Size() {
			r.cursorIndex++
			return true
		}
		r.cursorDs++
		r.cursorIndex = -1
	}
	return false
}

// Current returns the unit under the cursor.
func (r *RouteResult) Current() (*RouteUnit, error) {
	keys := r.units.Keys()
	if r.cursorDs >= len(keys) || r.cursorIndex < 0 {
		return nil, fmt.Errorf("route unit index out of range in route result")
	}
	v, _ := r.units.Get(keys[r.cursorDs])
	u, ok := v.(*arraylist.List).Get(r.cursorIndex)
	if !ok {
		return nil, fmt.Errorf("route unit index out of range in route result")
	}
	return u.(*RouteUnit), nil
}

// Reset reset the cursor of units
func (r *RouteResult) Reset() {
	r.cursorDs = 0
	r.cursorIndex = -1
}

func (r *RouteResult) String() string {
	units := r.Units()
	s := make([]string, len(units))
	for i, u := range units {
		s[i] = u.String()
	}
	return strings.Join(s, "; ")
}
