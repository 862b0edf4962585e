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
	"github.com/endink/go-sharding-route/core"
)

// Statement is what the routing engine needs from a parsed SQL statement.
// Values with a blank table apply to every table of the statement.
type Statement struct {
	Tables []string
	Values []core.ShardingValue
}

func NewStatement(tables []string, values ...core.ShardingValue) *Statement {
	return &Statement{Tables: tables, Values: values}
}
