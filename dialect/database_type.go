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


package dialect

import (
	"strings"

	"github.com/endink/go-sharding-route/core"
)

type DatabaseType int

const (
	MySQL DatabaseType = iota
	H2
	PostgreSQL
	OpenGauss
	SQLServer
	Oracle
	SQL92
)

var databaseTypeNames = map[DatabaseType]string{
	MySQL:      "MySQL",
	H2:         "H2",
	PostgreSQL: "PostgreSQL",
	OpenGauss:  "openGauss",
	SQLServer:  "SQLServer",
	Oracle:     "Oracle",
	SQL92:      "SQL92",
}

func (t DatabaseType) String() string {
	if n, ok := databaseTypeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// ParseDatabaseType resolves a configured database type name, the match is case-insensitive.
func ParseDatabaseType(name string) (DatabaseType, error) {
	n := core.TrimAndLower(name)
	for tp, typeName := range databaseTypeNames {
		if strings.ToLower(typeName) == n {
			return tp, nil
		}
	}
	switch n {
	case "postgres", "pg":
		return PostgreSQL, nil
	case "mssql":
		return SQLServer, nil
	}
	return 0, &core.UnsupportedDatabaseTypeError{DatabaseType: name}
}
