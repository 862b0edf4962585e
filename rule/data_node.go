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
	"strings"
)

// DataNode is one physical table: a data source and an actual table name.
type DataNode struct {
	DataSource string
	Table      string
}

func NewDataNode(dataSource string, table string) *DataNode {
	return &DataNode{DataSource: dataSource, Table: table}
}

// ParseDataNode parses "ds.table".
func ParseDataNode(s string) (*DataNode, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data node '%s', format must be <data source>.<table>", s)
	}
	ds, table := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if ds == "" || table == "" {
		return nil, fmt.Errorf("invalid data node '%s', data source and table can not be empty", s)
	}
	return NewDataNode(ds, table), nil
}

func (n *DataNode) String() string {
	return n.DataSource + "." + n.Table
}
