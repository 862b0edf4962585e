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


package rule

import (
	"fmt"
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/dialect"
	"github.com/scylladb/go-set/strset"
	"go.uber.org/multierr"
	"sort"
	"strings"
)

// ShardingRule is the runtime rule of a logic database.
type ShardingRule struct {
	Dialect           dialect.Dialect
	DefaultDataSource string
	Props             core.Properties

	tables   map[string]*TableRule
	bindings map[string][]string
}

// NewShardingRule indexes the table rules by normalized name and validates binding groups.
// Tables in one binding group must share the data node layout.
func NewShardingRule(d dialect.Dialect, defaultDataSource string, props core.Properties, tables []*TableRule, bindingGroups [][]string) (*ShardingRule, error) {
	if d == nil {
		return nil, fmt.Errorf("sharding rule requires a dialect")
	}
	if props == nil {
		props = core.EmptyProperties
	}
	r := &ShardingRule{
		Dialect:           d,
		DefaultDataSource: strings.TrimSpace(defaultDataSource),
		Props:             props,
		tables:            make(map[string]*TableRule, len(tables)),
		bindings:          make(map[string][]string),
	}

	var err error
	for _, t := range tables {
		name := d.NormalizeIdentifier(t.LogicTable)
		if _, ok := r.tables[name]; ok {
			err = multierr.Append(err, fmt.Errorf("duplicate table rule '%s'", t.LogicTable))
			continue
		}
		r.tables[name] = t
	}

	for _, group := range bindingGroups {
		err = multierr.Append(err, r.addBindingGroup(group))
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ShardingRule) addBindingGroup(group []string) error {
	names := make([]string, 0, len(group))
	seen := strset.NewWithSize(len(group))
	for _, g := range group {
		n := r.NormalizeTable(g)
		if n == "" || seen.Has(n) {
			continue
		}
		seen.Add(n)
		names = append(names, n)
	}
	if len(names) < 2 {
		return fmt.Errorf("binding group [%s] needs at least two tables", strings.Join(group, ", "))
	}

	primary, ok := r.tables[names[0]]
	if !ok {
		return fmt.Errorf("binding table '%s' has no table rule", names[0])
	}
	for _, n := range names {
		if _, bound := r.bindings[n]; bound {
			return fmt.Errorf("table '%s' belongs to more than one binding group", n)
		}
		t, ok := r.tables[n]
		if !ok {
			return fmt.Errorf("binding table '%s' has no table rule", n)
		}
		if err := sameLayout(primary, t); err != nil {
			return err
		}
	}
	for _, n := range names {
		r.bindings[n] = names
	}
	return nil
}

func sameLayout(a *TableRule, b *TableRule) error {
	if len(a.dataNodes) != len(b.dataNodes) {
		return fmt.Errorf("binding tables '%s' and '%s' have different data node count: %d, %d",
			a.LogicTable, b.LogicTable, len(a.dataNodes), len(b.dataNodes))
	}
	for i := range a.dataNodes {
		if a.dataNodes[i].DataSource != b.dataNodes[i].DataSource {
			return fmt.Errorf("binding tables '%s' and '%s' have different data sources at node %d",
				a.LogicTable, b.LogicTable, i)
		}
	}
	return nil
}

// NormalizeTable turns a table name as written in SQL into the rule key.
func (r *ShardingRule) NormalizeTable(name string) string {
	return r.Dialect.NormalizeIdentifier(strings.TrimSpace(name))
}

func (r *ShardingRule) TableRule(name string) (*TableRule, bool) {
	t, ok := r.tables[r.NormalizeTable(name)]
	return t, ok
}

// TableRules returns all table rules ordered by logic table.
func (r *ShardingRule) TableRules() []*TableRule {
	names := make([]string, 0, len(r.tables))
	for n := range r.tables {
		names = append(names, n)
	}
	sort.Strings(names)
	result := make([]*TableRule, len(names))
	for i, n := range names {
		result[i] = r.tables[n]
	}
	return result
}

// BindingGroup returns the normalized tables bound with the table, the first one is the primary.
func (r *ShardingRule) BindingGroup(name string) ([]string, bool) {
	g, ok := r.bindings[r.NormalizeTable(name)]
	return g, ok
}

// IsBound reports whether all tables belong to one binding group.
func (r *ShardingRule) IsBound(names ...string) bool {
	if len(names) < 2 {
		return false
	}
	first, ok := r.BindingGroup(names[0])
	if !ok {
		return false
	}
	group := strset.New(first...)
	for _, n := range names[1:] {
		if !group.Has(r.NormalizeTable(n)) {
			return false
		}
	}
	return true
}

// BindingActualTable maps the actual table of a bound table onto the given bound table by data node index.
func (r *ShardingRule) BindingActualTable(dataSource string, logicTable string, boundLogicTable string, boundActualTable string) (string, error) {
	if !r.IsBound(logicTable, boundLogicTable) {
		return "", fmt.Errorf("tables '%s' and '%s' are not bound", logicTable, boundLogicTable)
	}
	bound, _ := r.TableRule(boundLogicTable)
	target, _ := r.TableRule(logicTable)
	idx := bound.DataNodeIndex(dataSource, boundActualTable)
	if idx < 0 {
		return "", fmt.Errorf("actual table '%s.%s' is not a data node of '%s'", dataSource, boundActualTable, boundLogicTable)
	}
	return target.dataNodes[idx].Table, nil
}

// DataSources returns every data source referenced by the rule, sorted.
func (r *ShardingRule) DataSources() []string {
	set := strset.New()
	if r.DefaultDataSource != "" {
		set.Add(r.DefaultDataSource)
	}
	for _, t := range r.tables {
		set.Add(t.dataSources...)
	}
	result := set.List()
	sort.Strings(result)
	return result
}
