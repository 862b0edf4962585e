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
	"fmt"
	"strings"

	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/provider"
	"github.com/pingcap/errors"
)

const (
	TypeInline        = "INLINE"
	TypeMod           = "MOD"
	TypeHashMod       = "HASH_MOD"
	TypeBoundaryRange = "BOUNDARY_RANGE"
	TypeVolumeRange   = "VOLUME_RANGE"
	TypeComplexInline = "COMPLEX_INLINE"
	TypeHintInline    = "HINT_INLINE"
)

// Factory creates algorithms of one type from properties.
type Factory interface {
	provider.Provider
	Create(props core.Properties) (ShardingAlgorithm, error)
}

type factoryFunc struct {
	name   string
	create func(props core.Properties) (ShardingAlgorithm, error)
}

func (f *factoryFunc) GetName() string {
	return f.name
}

func (f *factoryFunc) Create(props core.Properties) (ShardingAlgorithm, error) {
	return f.create(props)
}

func NewFactory(name string, create func(props core.Properties) (ShardingAlgorithm, error)) Factory {
	return &factoryFunc{name: name, create: create}
}

// Register adds a factory to the default provider registry.
func Register(f Factory) error {
	return provider.DefaultRegistry().Register(provider.ShardingAlgorithm, f)
}

// New creates an algorithm by type name, the name is case-insensitive.
func New(tp string, props core.Properties) (ShardingAlgorithm, error) {
	p, ok := provider.DefaultRegistry().TryLoad(provider.ShardingAlgorithm, tp)
	if !ok {
		names := provider.DefaultRegistry().Names(provider.ShardingAlgorithm)
		return nil, fmt.Errorf("unknown sharding algorithm type '%s', supported types: %s", tp, strings.Join(names, ", "))
	}
	f, ok := p.(Factory)
	if !ok {
		return nil, fmt.Errorf("provider '%s' is not a sharding algorithm factory", tp)
	}
	if props == nil {
		props = core.EmptyProperties
	}
	algo, err := f.Create(props)
	if err != nil {
		return nil, errors.Annotatef(err, "create '%s' sharding algorithm fault", p.GetName())
	}
	return algo, nil
}

func init() {
	builtins := []Factory{
		NewFactory(TypeInline, func(props core.Properties) (ShardingAlgorithm, error) { return NewInline(props) }),
		NewFactory(TypeMod, func(props core.Properties) (ShardingAlgorithm, error) { return NewMod(props) }),
		NewFactory(TypeHashMod, func(props core.Properties) (ShardingAlgorithm, error) { return NewHashMod(props) }),
		NewFactory(TypeBoundaryRange, func(props core.Properties) (ShardingAlgorithm, error) { return NewBoundaryRange(props) }),
		NewFactory(TypeVolumeRange, func(props core.Properties) (ShardingAlgorithm, error) { return NewVolumeRange(props) }),
		NewFactory(TypeComplexInline, func(props core.Properties) (ShardingAlgorithm, error) { return NewComplexInline(props) }),
		NewFactory(TypeHintInline, func(props core.Properties) (ShardingAlgorithm, error) { return NewHintInline(props) }),
	}
	for _, f := range builtins {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}
