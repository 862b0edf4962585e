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


package algorithm

import "strings"

// Capability is a set of value kinds an algorithm can shard.
type Capability uint8

const (
	CapabilityPrecise Capability = 1 << iota
	CapabilityRange
	CapabilityComplex
	CapabilityHint
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapabilityPrecise, "precise"},
	{CapabilityRange, "range"},
	{CapabilityComplex, "complex"},
	{CapabilityHint, "hint"},
}

func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	var names []string
	for _, n := range capabilityNames {
		if c.Has(n.c) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Supports reports whether algo declares every capability of c and implements the matching interfaces.
func Supports(algo ShardingAlgorithm, c Capability) bool {
	if algo == nil || !algo.Capabilities().Has(c) {
		return false
	}
	if c.Has(CapabilityPrecise) {
		if _, ok := algo.(PreciseShardingAlgorithm); !ok {
			return false
		}
	}
	if c.Has(CapabilityRange) {
		if _, ok := algo.(RangeShardingAlgorithm); !ok {
			return false
		}
	}
	if c.Has(CapabilityComplex) {
		if _, ok := algo.(ComplexKeysShardingAlgorithm); !ok {
			return false
		}
	}
	if c.Has(CapabilityHint) {
		if _, ok := algo.(HintShardingAlgorithm); !ok {
			return false
		}
	}
	return true
}
