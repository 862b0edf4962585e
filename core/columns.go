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

	"github.com/pingcap/errors"
)

// ParseColumns splits a column list like "column1, column2" into distinct, validated names.
func ParseColumns(columnsExpr string) ([]string, error) {
	columns := DistinctSliceAndTrim(strings.Split(columnsExpr, ","))
	if len(columns) == 0 {
		return nil, fmt.Errorf("have no columns can be parsed from '%s'", columnsExpr)
	}

	for _, col := range columns {
		if err := ValidateIdentifier(col); err != nil {
			return nil, errors.Annotatef(err, "invalid column name '%s'", col)
		}
	}
	return columns, nil
}
