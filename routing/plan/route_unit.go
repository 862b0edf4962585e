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
	"strings"
)

// TableMapper maps a logic table to the actual table a route unit sends it to.
type TableMapper struct {
	LogicTable  string
	ActualTable string
}

func (m TableMapper) String() string {
	return m.LogicTable + ":" + m.ActualTable
}

// RouteUnit is one execution target: a data source and the actual tables of the statement.
type RouteUnit struct {
	DataSource string
	Tables     []TableMapper
}

func NewRouteUnit(dataSource string, tables ...TableMapper) *RouteUnit {
	return &RouteUnit{DataSource: dataSource, Tables: tables}
}

// ActualTable returns the actual table of the logic table, the lookup is case-insensitive.
func (u *RouteUnit) ActualTable(logicTable string) (string, bool) {
	for _, m := range u.Tables {
		if strings.EqualFold(m.LogicTable, logicTable) {
			return m.ActualTable, true
		}
	}
	return "", false
}

// ActualTables returns the actual tables in statement order.
func (u *RouteUnit) ActualTables() []string {
	result := make([]string, len(u.Tables))
	for i, m := range u.Tables {
		result[i] = m.ActualTable
	}
	return result
}

func (u *RouteUnit) String() string {
	tables := make([]string, len(u.Tables))
	for i, m := range u.Tables {
		tables[i] = m.String()
	}
	return u.DataSource + "[" + strings.Join(tables, ", ") + "]"
}
