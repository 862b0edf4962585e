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
	"github.com/endink/go-sharding-route/strategy"
	"github.com/scylladb/go-set/strset"
	"strings"
)

// TableRule is the runtime rule of one logic table. It is immutable once built.
type TableRule struct {
	LogicTable       string
	DatabaseStrategy strategy.Strategy
	TableStrategy    strategy.Strategy
	DatabaseInfo     *core.DataNodeInfo
	TableInfo        *core.DataNodeInfo
	AllowFullScan    bool

	dataNodes    []*DataNode
	dataSources  []string
	actualTables map[string][]string
}

// NewTableRule keeps the order of nodes, duplicated nodes are removed. Nil strategies mean none.
func NewTableRule(logicTable string, nodes []*DataNode, dbStrategy strategy.Strategy, tableStrategy strategy.Strategy, allowFullScan bool) (*TableRule, error) {
	logicTable = strings.TrimSpace(logicTable)
	if logicTable == "" {
		return nil, fmt.Errorf("logic table name can not be empty")
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("table '%s' has no data node", logicTable)
	}
	if dbStrategy == nil {
		dbStrategy = strategy.NoneStrategy
	}
	if tableStrategy == nil {
		tableStrategy = strategy.NoneStrategy
	}

	r := &TableRule{
		LogicTable:       logicTable,
		DatabaseStrategy: dbStrategy,
		TableStrategy:    tableStrategy,
		AllowFullScan:    allowFullScan,
		dataNodes:        make([]*DataNode, 0, len(nodes)),
		actualTables:     make(map[string][]string),
	}

	seen := strset.NewWithSize(len(nodes))
	for _, n := range nodes {
		key := n.String()
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		r.dataNodes = append(r.dataNodes, n)
		if _, ok := r.actualTables[n.DataSource]; !ok {
			r.dataSources = append(r.dataSources, n.DataSource)
		}
		r.actualTables[n.DataSource] = append(r.actualTables[n.DataSource], n.Table)
	}

	first := r.dataNodes[0]
	r.DatabaseInfo = core.ParseDataNodeInfo("", first.DataSource)
	r.TableInfo = core.ParseDataNodeInfo(logicTable, first.Table)
	return r, nil
}

func (r *TableRule) DataNodes() []*DataNode {
	nodes := make([]*DataNode, len(r.dataNodes))
	copy(nodes, r.dataNodes)
	return nodes
}

// DataSources returns the data sources in configuration order.
func (r *TableRule) DataSources() []string {
	result := make([]string, len(r.dataSources))
	copy(result, r.dataSources)
	return result
}

// ActualTables returns the actual tables of the data source in configuration order.
func (r *TableRule) ActualTables(dataSource string) []string {
	tables := r.actualTables[dataSource]
	result := make([]string, len(tables))
	copy(result, tables)
	return result
}

// DataNodeIndex returns the position of the node among all data nodes, -1 if absent.
func (r *TableRule) DataNodeIndex(dataSource string, table string) int {
	for i, n := range r.dataNodes {
		if n.DataSource == dataSource && strings.EqualFold(n.Table, table) {
			return i
		}
	}
	return -1
}

// IsSingle reports whether the table has exactly one data node.
func (r *TableRule) IsSingle() bool {
	return len(r.dataNodes) == 1
}

func (r *TableRule) String() string {
	nodes := make([]string, len(r.dataNodes))
	for i, n := range r.dataNodes {
		nodes[i] = n.String()
	}
	return fmt.Sprintf("%s -> [%s], db: %s, table: %s", r.LogicTable, strings.Join(nodes, ", "), r.DatabaseStrategy.Type(), r.TableStrategy.Type())
}
