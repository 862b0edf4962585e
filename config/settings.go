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


package config

import (
	"fmt"
	"github.com/endink/go-sharding-route/core"
	"strings"
)

const DefaultDatabaseType = "mysql"

// Settings is the rule section of the configuration document.
type Settings struct {
	DatabaseType      string                        `yaml:"database-type"`
	DefaultDataSource string                        `yaml:"default-data-source"`
	Props             map[string]string             `yaml:"props"`
	Algorithms        map[string]*AlgorithmSettings `yaml:"algorithms"`
	Tables            map[string]*TableSettings     `yaml:"tables"`
	BindingTables     []string                      `yaml:"binding-tables"`
}

type AlgorithmSettings struct {
	Type  string            `yaml:"type"`
	Props map[string]string `yaml:"props"`
}

type TableSettings struct {
	Resources        string            `yaml:"resources"`
	AllowFullScan    *bool             `yaml:"allow-full-scan"`
	DatabaseStrategy *StrategySettings `yaml:"db-strategy"`
	TableStrategy    *StrategySettings `yaml:"table-strategy"`
}

// StrategySettings holds exactly one strategy kind. The scalar form `none` is accepted as well.
type StrategySettings struct {
	Standard *StandardStrategySettings `yaml:"standard"`
	Complex  *ComplexStrategySettings  `yaml:"complex"`
	Hint     *HintStrategySettings     `yaml:"hint"`
	None     bool                      `yaml:"none"`
}

type StandardStrategySettings struct {
	ShardingColumn string `yaml:"sharding-column"`
	Algorithm      string `yaml:"algorithm"`
}

type ComplexStrategySettings struct {
	ShardingColumns string `yaml:"sharding-columns"`
	Algorithm       string `yaml:"algorithm"`
}

type HintStrategySettings struct {
	Algorithm string `yaml:"algorithm"`
}

func (s *StrategySettings) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var scalar string
	if err := unmarshal(&scalar); err == nil {
		if core.TrimAndLower(scalar) != "none" {
			return fmt.Errorf("unknown sharding strategy '%s'", scalar)
		}
		*s = StrategySettings{None: true}
		return nil
	}
	type plain StrategySettings
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*s = StrategySettings(p)
	return nil
}

// Kind returns the configured strategy kind: none, standard, complex or hint.
func (s *StrategySettings) Kind() (string, error) {
	if s == nil {
		return "none", nil
	}
	var kinds []string
	if s.Standard != nil {
		kinds = append(kinds, "standard")
	}
	if s.Complex != nil {
		kinds = append(kinds, "complex")
	}
	if s.Hint != nil {
		kinds = append(kinds, "hint")
	}
	switch len(kinds) {
	case 0:
		return "none", nil
	case 1:
		if s.None {
			return "", fmt.Errorf("strategy can not be both none and %s", kinds[0])
		}
		return kinds[0], nil
	default:
		return "", fmt.Errorf("only one sharding strategy is allowed, got %s", strings.Join(kinds, ", "))
	}
}

// AlgorithmName returns the algorithm referenced by the configured strategy.
func (s *StrategySettings) AlgorithmName() string {
	switch {
	case s == nil:
		return ""
	case s.Standard != nil:
		return strings.TrimSpace(s.Standard.Algorithm)
	case s.Complex != nil:
		return strings.TrimSpace(s.Complex.Algorithm)
	case s.Hint != nil:
		return strings.TrimSpace(s.Hint.Algorithm)
	default:
		return ""
	}
}

// FullScanAllowed reports the allow-full-scan flag, absent means allowed.
func (t *TableSettings) FullScanAllowed() bool {
	return t == nil || t.AllowFullScan == nil || *t.AllowFullScan
}

func (s *Settings) normalize() {
	s.DatabaseType = core.IfBlankAndTrim(s.DatabaseType, DefaultDatabaseType)
	s.DefaultDataSource = strings.TrimSpace(s.DefaultDataSource)
	if s.Props == nil {
		s.Props = make(map[string]string)
	}
	if s.Algorithms == nil {
		s.Algorithms = make(map[string]*AlgorithmSettings)
	}
	if s.Tables == nil {
		s.Tables = make(map[string]*TableSettings)
	}
	for name, t := range s.Tables {
		if t == nil {
			s.Tables[name] = &TableSettings{}
		}
	}
}

// Validate checks references between sections; algorithms and expressions are checked when the rule is built.
func (s *Settings) Validate() error {
	for name, t := range s.Tables {
		for level, st := range map[string]*StrategySettings{"db-strategy": t.DatabaseStrategy, "table-strategy": t.TableStrategy} {
			kind, err := st.Kind()
			if err != nil {
				return fmt.Errorf("table '%s' %s: %v", name, level, err)
			}
			if kind == "none" {
				continue
			}
			algo := st.AlgorithmName()
			if algo == "" {
				return fmt.Errorf("table '%s' %s: algorithm is required", name, level)
			}
			if a, ok := s.Algorithms[algo]; !ok || a == nil {
				return fmt.Errorf("table '%s' %s: algorithm '%s' is not defined", name, level, algo)
			}
		}
	}
	for _, group := range s.BindingTables {
		for _, table := range strings.Split(group, ",") {
			table = strings.TrimSpace(table)
			if _, ok := s.Tables[table]; !ok {
				return fmt.Errorf("binding table '%s' has no table rule", table)
			}
		}
	}
	return nil
}
