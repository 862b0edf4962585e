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


package routing

import (
	"context"
	"errors"
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/hint"
	"github.com/endink/go-sharding-route/logging"
	"github.com/endink/go-sharding-route/routing/plan"
	"github.com/endink/go-sharding-route/rule"
	"github.com/endink/go-sharding-route/strategy"
	"github.com/endink/go-sharding-route/telemetry"
	"github.com/scylladb/go-set/strset"
	"sort"
	"time"
)

const defaultFullScanLogInterval = time.Minute

// Engine routes statements against an immutable sharding rule. It is safe for concurrent use.
type Engine struct {
	rule             *rule.ShardingRule
	metrics          *telemetry.RouteMetrics
	logger           logging.StandardLogger
	fullScanInterval time.Duration
	fullScanLogger   *logging.ThrottledLogger
}

func NewEngine(r *rule.ShardingRule, opts ...Option) (*Engine, error) {
	if r == nil {
		return nil, errors.New("routing engine requires a sharding rule")
	}
	e := &Engine{
		rule:             r,
		metrics:          telemetry.DefaultRouteMetrics(),
		logger:           logging.GetLogger("routing"),
		fullScanInterval: defaultFullScanLogInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.fullScanLogger = logging.NewThrottledLogger("full scan", e.logger, e.fullScanInterval)
	return e, nil
}

func (e *Engine) Rule() *rule.ShardingRule {
	return e.rule
}

// Route computes the data nodes of the statement. ctx only carries hint values.
func (e *Engine) Route(ctx context.Context, stmt *Statement) (*plan.RouteResult, error) {
	start := time.Now()
	result, err := e.route(ctx, stmt)

	table := ""
	if stmt != nil && len(stmt.Tables) > 0 {
		table = e.rule.NormalizeTable(stmt.Tables[0])
	}
	units := 0
	if result != nil {
		units = result.Len()
	}
	e.metrics.ObserveRoute(table, units, time.Since(start), err)

	if err != nil {
		e.logger.Debugf("route failed, tables: %v, error: %v", tableNames(stmt), err)
		return nil, err
	}
	e.logger.Debugf("route tables %v to %s", tableNames(stmt), result)
	return result, nil
}

func tableNames(stmt *Statement) []string {
	if stmt == nil {
		return nil
	}
	return stmt.Tables
}

func (e *Engine) route(ctx context.Context, stmt *Statement) (*plan.RouteResult, error) {
	if stmt == nil {
		return nil, errors.New("statement can not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	tables := e.distinctTables(stmt.Tables)
	if len(tables) == 0 {
		return e.routeWithoutTable()
	}

	values := e.groupValues(tables, stmt.Values)
	groups := e.groupTables(tables)

	routes := make([]*groupRoute, 0, len(groups))
	for _, g := range groups {
		var gr *groupRoute
		var err error
		if len(g) > 1 {
			gr, err = e.routeBindingGroup(ctx, g, values)
		} else {
			gr, err = e.routeTable(ctx, g[0], values[g[0]])
		}
		if err != nil {
			return nil, err
		}
		routes = append(routes, gr)
	}
	return e.combine(tables, routes)
}

func (e *Engine) routeWithoutTable() (*plan.RouteResult, error) {
	if e.rule.DefaultDataSource == "" {
		return nil, errors.New("statement has no table and no default data source is configured")
	}
	result := plan.NewRouteResult()
	result.Add(plan.NewRouteUnit(e.rule.DefaultDataSource))
	return result, nil
}

func (e *Engine) distinctTables(tables []string) []string {
	seen := strset.NewWithSize(len(tables))
	result := make([]string, 0, len(tables))
	for _, t := range tables {
		n := e.rule.NormalizeTable(t)
		if n == "" || seen.Has(n) {
			continue
		}
		seen.Add(n)
		result = append(result, n)
	}
	return result
}

func (e *Engine) groupValues(tables []string, values []core.ShardingValue) map[string][]core.ShardingValue {
	result := make(map[string][]core.ShardingValue, len(tables))
	for _, v := range values {
		if v == nil {
			continue
		}
		if v.GetTable() == "" {
			for _, t := range tables {
				result[t] = append(result[t], v)
			}
			continue
		}
		t := e.rule.NormalizeTable(v.GetTable())
		result[t] = append(result[t], v)
	}
	return result
}

// groupTables puts the tables of one binding group together, in statement order.
func (e *Engine) groupTables(tables []string) [][]string {
	var groups [][]string
	index := make(map[string]int)
	for _, t := range tables {
		if g, ok := e.rule.BindingGroup(t); ok {
			key := g[0]
			if i, found := index[key]; found {
				groups[i] = append(groups[i], t)
				continue
			}
			index[key] = len(groups)
		}
		groups = append(groups, []string{t})
	}
	return groups
}

// groupRoute holds, per data source, the table combinations of a table group.
type groupRoute struct {
	tables      []string
	dataSources []string
	units       map[string][][]plan.TableMapper
}

func newGroupRoute(tables ...string) *groupRoute {
	return &groupRoute{tables: tables, units: make(map[string][][]plan.TableMapper)}
}

func (g *groupRoute) add(ds string, mappers ...plan.TableMapper) {
	if _, ok := g.units[ds]; !ok {
		g.dataSources = append(g.dataSources, ds)
	}
	g.units[ds] = append(g.units[ds], mappers)
}

func (e *Engine) routeTable(ctx context.Context, table string, values []core.ShardingValue) (*groupRoute, error) {
	tr, ok := e.rule.TableRule(table)
	if !ok {
		if e.rule.DefaultDataSource == "" {
			return nil, &core.TableRuleNotFoundError{Table: table}
		}
		gr := newGroupRoute(table)
		gr.add(e.rule.DefaultDataSource, plan.TableMapper{LogicTable: table, ActualTable: table})
		return gr, nil
	}

	nodes, err := e.routeDataNodes(ctx, tr, values)
	if err != nil {
		return nil, err
	}
	gr := newGroupRoute(tr.LogicTable)
	for _, n := range nodes {
		gr.add(n.DataSource, plan.TableMapper{LogicTable: tr.LogicTable, ActualTable: n.Table})
	}
	return gr, nil
}

// routeBindingGroup routes the first table with the values of every table in the group and maps the others by data node index.
func (e *Engine) routeBindingGroup(ctx context.Context, tables []string, values map[string][]core.ShardingValue) (*groupRoute, error) {
	primary, _ := e.rule.TableRule(tables[0])
	var merged []core.ShardingValue
	for _, t := range tables {
		merged = append(merged, values[t]...)
	}
	nodes, err := e.routeDataNodes(ctx, primary, merged)
	if err != nil {
		return nil, err
	}

	gr := newGroupRoute(tables...)
	for _, n := range nodes {
		mappers := make([]plan.TableMapper, 0, len(tables))
		mappers = append(mappers, plan.TableMapper{LogicTable: primary.LogicTable, ActualTable: n.Table})
		for _, t := range tables[1:] {
			bound, _ := e.rule.TableRule(t)
			actual, err := e.rule.BindingActualTable(n.DataSource, t, primary.LogicTable, n.Table)
			if err != nil {
				return nil, err
			}
			mappers = append(mappers, plan.TableMapper{LogicTable: bound.LogicTable, ActualTable: actual})
		}
		gr.add(n.DataSource, mappers...)
	}
	return gr, nil
}

// routeDataNodes runs the database strategy, then the table strategy of every routed data source.
func (e *Engine) routeDataNodes(ctx context.Context, tr *rule.TableRule, values []core.ShardingValue) ([]*rule.DataNode, error) {
	dbValues := values
	if tr.DatabaseStrategy.Type() == strategy.TypeHint {
		dbValues = append(append([]core.ShardingValue{}, values...), hint.DatabaseValues(ctx, tr.LogicTable)...)
	}
	if err := e.checkCondition(tr, tr.DatabaseStrategy, dbValues, telemetry.LevelDatabase); err != nil {
		return nil, err
	}
	dataSources, err := tr.DatabaseStrategy.DoSharding(tr.DataSources(), dbValues, tr.DatabaseInfo, e.rule.Props)
	if err != nil {
		return nil, err
	}

	tableValues := values
	if tr.TableStrategy.Type() == strategy.TypeHint {
		tableValues = append(append([]core.ShardingValue{}, values...), hint.TableValues(ctx, tr.LogicTable)...)
	}
	if err = e.checkCondition(tr, tr.TableStrategy, tableValues, telemetry.LevelTable); err != nil {
		return nil, err
	}

	var nodes []*rule.DataNode
	for _, ds := range dataSources {
		tables, err := tr.TableStrategy.DoSharding(tr.ActualTables(ds), tableValues, tr.TableInfo, e.rule.Props)
		if err != nil {
			return nil, err
		}
		for _, t := range tables {
			nodes = append(nodes, rule.NewDataNode(ds, t))
		}
	}
	return nodes, nil
}

// checkCondition applies the full scan guard of the table rule.
func (e *Engine) checkCondition(tr *rule.TableRule, s strategy.Strategy, values []core.ShardingValue, level string) error {
	if s.Type() == strategy.TypeNone || strategy.HasCondition(s, values) {
		return nil
	}
	if !tr.AllowFullScan {
		return &core.MissingConditionError{Table: tr.LogicTable, Columns: s.Columns()}
	}
	e.metrics.FullScan(tr.LogicTable, level)
	e.fullScanLogger.Warnf("no %s sharding condition for table '%s', all %s nodes are routed", level, tr.LogicTable, level)
	return nil
}

// combine intersects the data sources of the groups and builds the cartesian product of their tables.
func (e *Engine) combine(tables []string, routes []*groupRoute) (*plan.RouteResult, error) {
	result := plan.NewRouteResult()

	// a group narrowed to no node leaves nothing to join with
	for _, r := range routes {
		if len(r.dataSources) == 0 {
			return result, nil
		}
	}

	common := strset.New(routes[0].dataSources...)
	for _, r := range routes[1:] {
		common = strset.Intersection(common, strset.New(r.dataSources...))
	}
	if common.IsEmpty() {
		return nil, &core.NoDataSourceIntersectionError{Tables: tables}
	}
	dataSources := common.List()
	sort.Strings(dataSources)

	for _, ds := range dataSources {
		lists := make([][]interface{}, len(routes))
		for i, r := range routes {
			combos := r.units[ds]
			lists[i] = make([]interface{}, len(combos))
			for j, c := range combos {
				lists[i][j] = c
			}
		}
		for _, product := range core.Permute(lists) {
			mappers := make([]plan.TableMapper, 0, len(tables))
			for _, p := range product {
				mappers = append(mappers, p.([]plan.TableMapper)...)
			}
			result.Add(plan.NewRouteUnit(ds, e.orderMappers(tables, mappers)...))
		}
	}
	return result, nil
}

// orderMappers puts mappers in statement table order.
func (e *Engine) orderMappers(tables []string, mappers []plan.TableMapper) []plan.TableMapper {
	if len(mappers) < 2 {
		return mappers
	}
	position := make(map[string]int, len(tables))
	for i, t := range tables {
		position[t] = i
	}
	sort.SliceStable(mappers, func(i, j int) bool {
		return position[e.rule.NormalizeTable(mappers[i].LogicTable)] < position[e.rule.NormalizeTable(mappers[j].LogicTable)]
	})
	return mappers
}
