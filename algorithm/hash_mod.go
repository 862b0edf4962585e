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

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/comparison"
	"github.com/go-faster/city"
	"github.com/pingcap/errors"
	"github.com/spaolacci/murmur3"
)

const PropHashFunction = "hash-function"

const (
	HashIdentity = "identity"
	HashMurmur   = "murmur"
	HashCity     = "city"
	HashXX       = "xxhash"
)

type hashFunc func(value interface{}) (uint64, error)

var hashFunctions = map[string]hashFunc{
	HashIdentity: identityHash,
	HashMurmur: func(value interface{}) (uint64, error) {
		return uint64(murmur3.Sum32(hashInput(value))), nil
	},
	HashCity: func(value interface{}) (uint64, error) {
		return uint64(city.Hash32(hashInput(value))), nil
	},
	HashXX: func(value interface{}) (uint64, error) {
		return xxhash.Sum64(hashInput(value)), nil
	},
}

// HashMod routes to hash(value) % sharding-count.
type HashMod struct {
	count    uint64
	hashName string
	hash     hashFunc
}

func NewHashMod(props core.Properties) (*HashMod, error) {
	s, err := populateModSettings(props)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(s.HashFunction))
	if name == "" {
		name = HashMurmur
	}
	fn, ok := hashFunctions[name]
	if !ok {
		return nil, fmt.Errorf("unknown hash function '%s' in property '%s'", name, PropHashFunction)
	}
	return &HashMod{count: uint64(s.Count), hashName: name, hash: fn}, nil
}

func (h *HashMod) Type() string {
	return TypeHashMod
}

func (h *HashMod) Capabilities() Capability {
	return CapabilityPrecise | CapabilityRange
}

func (h *HashMod) DoPreciseSharding(targets []string, v *core.PreciseShardingValue) (string, bool, error) {
	sum, err := h.hash(v.Value)
	if err != nil {
		return "", false, err
	}
	t, ok := shardTarget(targets, v.DataNodeInfo, int64(sum%h.count))
	return t, ok, nil
}

// DoRangeSharding returns all targets, hashing does not keep order.
func (h *HashMod) DoRangeSharding(targets []string, _ *core.RangeShardingValue) ([]string, error) {
	return allTargets(targets), nil
}

func identityHash(value interface{}) (uint64, error) {
	n, err := toInt64(value)
	if err != nil {
		return 0, errors.Annotate(err, "identity hash requires integer values")
	}
	return uint64(n), nil
}

func hashInput(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}
	if n, err := comparison.AsInt64(value); err == nil {
		return encodeUInt64(uint64(n))
	}
	return []byte(fmt.Sprint(value))
}

func encodeUInt64(input uint64) []byte {
	const bound = 1 << 56
	sz := 8
	if input >= bound {
		sz = binary.MaxVarintLen64
	}
	buf := make([]byte, sz)
	binary.PutUvarint(buf, input)
	return buf
}
