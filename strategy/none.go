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


package strategy

import "github.com/endink/go-sharding-route/core"

// None routes to every target.
type None struct{}

var NoneStrategy = &None{}

func (n *None) Type() Type {
	return TypeNone
}

func (n *None) Columns() []string {
	return nil
}

func (n *None) DoSharding(targets []string, _ []core.ShardingValue, _ *core.DataNodeInfo, _ core.Properties) ([]string, error) {
	return allTargets(targets), nil
}
