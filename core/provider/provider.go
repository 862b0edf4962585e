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


package provider

import "fmt"

type Type int

const (
	ConfigSource Type = iota
	ShardingAlgorithm
)

func (t Type) String() string {
	switch t {
	case ConfigSource:
		return "config-source"
	case ShardingAlgorithm:
		return "sharding-algorithm"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Provider is a named extension registered in a Registry.
type Provider interface {
	GetName() string
}
