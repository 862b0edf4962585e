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
	"github.com/endink/go-sharding-route/algorithm"
	"github.com/endink/go-sharding-route/config"
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/script"
	"github.com/endink/go-sharding-route/dialect"
	"github.com/endink/go-sharding-route/logging"
	"github.com/endink/go-sharding-route/strategy"
	"github.com/pingcap/errors"
	"go.uber.org/multierr"
	"sort"
	"strings"
)

var logger = logging.GetLogger("rule")

// BuildFromManager builds the rule from the settings held by the configuration manager.
func BuildFromManager(mgr config.Manager) (*ShardingRule, error) {
	return Build(mgr.GetSettings())
}

// Build creates the runtime rule. Errors of every table are reported together.
func Build(settings *config.Settings) (*ShardingRule, error) {
	if settings == nil {
		return nil, errors.New("sharding settings can not be nil")
	}
	d, err := dialect.Lookup(core.IfBlankAndTrim(settings.DatabaseType, config.DefaultDatabaseType))
	if err != nil {
		return nil, err
	}

	algorithms, err := buildAlgorithms(settings)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(settings.Tables))
	for n := range settings.Tables {
		names = append(names, n)
	}
	sort.Strings(names)

	var buildErr error
	tables := make([]*TableRule, 0, len(names))
	for _, name := range names {
		t, e := buildTableRule(name, settings.Tables[name], settings.DefaultDataSource, algorithms)
		if e != nil {
			buildErr = multierr.Append(buildErr, errors.Annotatef(e, "build rule of table '%s' failed", name))
			continue
		}
		logger.Debugf("table rule built: %s", t)
		tables = append(tables, t)
	}
	if buildErr != nil {
		return nil, buildErr
	}

	groups := make([][]string, 0, len(settings.BindingTables))
	for _, g := range settings.BindingTables {
		groups = append(groups, strings.Split(g, ","))
	}

	r, err := NewShardingRule(d, settings.DefaultDataSource, core.NewMapProperties(settings.Props), tables, groups)
	if err != nil {
		return nil, errors.Annotate(err, "build sharding rule failed")
	}
	logger.Infof("sharding rule built: %s, %d tables, %d data sources", d.Type(), len(tables), len(r.DataSources()))
	return r, nil
}

func buildAlgorithms(settings *config.Settings) (map[string]algorithm.ShardingAlgorithm, error) {
	result := make(map[string]algorithm.ShardingAlgorithm, len(settings.Algorithms))
	var err error
	for name, a := range settings.Algorithms {
		if a == nil || strings.TrimSpace(a.Type) == "" {
			err = multierr.Append(err, fmt.Errorf("algorithm '%s' has no type", name))
			continue
		}
		props := make(map[string]string, len(settings.Props)+len(a.Props))
		for k, v := range settings.Props {
			props[k] = v
		}
		for k, v := range a.Props {
			props[k] = v
		}
		algo, e := algorithm.New(a.Type, core.NewMapProperties(props))
		if e != nil {
			err = multierr.Append(err, errors.Annotatef(e, "build algorithm '%s' failed", name))
			continue
		}
		result[name] = algo
	}
	return result, err
}

func buildTableRule(name string, t *config.TableSettings, defaultDataSource string, algorithms map[string]algorithm.ShardingAlgorithm) (*TableRule, error) {
	if t == nil {
		t = &config.TableSettings{}
	}
	nodes, err := expandDataNodes(name, t.Resources, defaultDataSource)
	if err != nil {
		return nil, err
	}
	dbStrategy, err := buildStrategy(t.DatabaseStrategy, algorithms)
	if err != nil {
		return nil, errors.Annotate(err, "db-strategy")
	}
	tableStrategy, err := buildStrategy(t.TableStrategy, algorithms)
	if err != nil {
		return nil, errors.Annotate(err, "table-strategy")
	}
	return NewTableRule(name, nodes, dbStrategy, tableStrategy, t.FullScanAllowed())
}

// expandDataNodes flattens the resources expression, a blank expression puts the table on the default data source.
func expandDataNodes(logicTable string, resources string, defaultDataSource string) ([]*DataNode, error) {
	resources = strings.TrimSpace(resources)
	if resources == "" {
		if strings.TrimSpace(defaultDataSource) == "" {
			return nil, fmt.Errorf("resources are required when no default data source is configured")
		}
		return []*DataNode{NewDataNode(strings.TrimSpace(defaultDataSource), logicTable)}, nil
	}
	expr, err := script.NewInlineExpression(resources)
	if err != nil {
		return nil, err
	}
	names, err := expr.Flat()
	if err != nil {
		return nil, err
	}
	nodes := make([]*DataNode, 0, len(names))
	for _, n := range names {
		node, e := ParseDataNode(n)
		if e != nil {
			return nil, e
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func buildStrategy(s *config.StrategySettings, algorithms map[string]algorithm.ShardingAlgorithm) (strategy.Strategy, error) {
	kind, err := s.Kind()
	if err != nil {
		return nil, err
	}
	if kind == "none" {
		return strategy.NoneStrategy, nil
	}
	name := s.AlgorithmName()
	algo, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("algorithm '%s' is not defined", name)
	}
	switch kind {
	case "standard":
		return strategy.NewStandard(s.Standard.ShardingColumn, algo)
	case "complex":
		return strategy.NewComplex(s.Complex.ShardingColumns, algo)
	default:
		return strategy.NewHint(algo)
	}
}
