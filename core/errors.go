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
	"fmt"
	"strings"
)

type UnsupportedDatabaseTypeError struct {
	DatabaseType string
}

func (e *UnsupportedDatabaseTypeError) Error() string {
	return fmt.Sprintf("unsupported database type: '%s'", e.DatabaseType)
}

// UnsupportedCapabilityError is returned when a value kind reaches an algorithm that cannot handle it.
type UnsupportedCapabilityError struct {
	Capability string
	Column     string
	Algorithm  string
}

func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("sharding algorithm '%s' does not support %s sharding, column: '%s'", e.Algorithm, e.Capability, e.Column)
}

// MissingConditionError is returned when a table that forbids full scan has no sharding condition.
type MissingConditionError struct {
	Table   string
	Columns []string
}

func (e *MissingConditionError) Error() string {
	return fmt.Sprintf("missing sharding condition for table '%s', columns: %s, full table scan is not allowed", e.Table, strings.Join(e.Columns, ", "))
}

// UnknownTargetError is returned when an algorithm routes to a name that is not a candidate.
type UnknownTargetError struct {
	Target    string
	Algorithm string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("sharding algorithm '%s' returned unknown target '%s'", e.Algorithm, e.Target)
}

type TableRuleNotFoundError struct {
	Table string
}

func (e *TableRuleNotFoundError) Error() string {
	return fmt.Sprintf("sharding rule for table '%s' was not found and no default data source is configured", e.Table)
}

type NoDataSourceIntersectionError struct {
	Tables []string
}

func (e *NoDataSourceIntersectionError) Error() string {
	return fmt.Sprintf("tables %s have no data source in common", strings.Join(e.Tables, ", "))
}
