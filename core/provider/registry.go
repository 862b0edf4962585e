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

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var onceReg sync.Once
var instance Registry

// Registry keeps providers by type and case-insensitive name.
type Registry interface {
	TryLoad(tp Type, name string) (Provider, bool)
	Load(tp Type, name string) Provider
	Names(tp Type) []string
	Register(tp Type, provider Provider) error
	LoadOrStore(tp Type, name string, creation func() Provider) (actual Provider, loaded bool)
	LoadAndDelete(tp Type, name string) (value Provider, loaded bool)
	Delete(tp Type, name string)
}

func DefaultRegistry() Registry {
	onceReg.Do(func() {
		instance = NewRegistry()
	})
	return instance
}

func NewRegistry() Registry {
	return &registry{}
}

type registry struct {
	mp sync.Map
}

type registryKey struct {
	tp   Type
	name string
}

func getKey(tp Type, name string) registryKey {
	return registryKey{tp: tp, name: strings.ToLower(strings.TrimSpace(name))}
}

func (r *registry) TryLoad(tp Type, name string) (Provider, bool) {
	v, ok := r.mp.Load(getKey(tp, name))
	if ok {
		p, ok := v.(Provider)
		return p, ok
	}
	return nil, false
}

func (r *registry) Load(tp Type, name string) Provider {
	p, _ := r.TryLoad(tp, name)
	return p
}

func (r *registry) Names(tp Type) []string {
	var names []string
	r.mp.Range(func(key, value interface{}) bool {
		if k := key.(registryKey); k.tp == tp {
			names = append(names, value.(Provider).GetName())
		}
		return true
	})
	sort.Strings(names)
	return names
}

func (r *registry) Register(tp Type, provider Provider) error {
	if provider == nil {
		return errors.New("provider can not be null")
	}
	n := strings.TrimSpace(provider.GetName())
	if n == "" {
		return errors.New("provider name can not be empty")
	}
	if _, loaded := r.mp.LoadOrStore(getKey(tp, n), provider); loaded {
		return fmt.Errorf("%s provider named '%s' has already been registered", tp, n)
	}
	return nil
}

func (r *registry) LoadOrStore(tp Type, name string, creation func() Provider) (actual Provider, loaded bool) {
	key := getKey(tp, name)
	if v, ok := r.mp.Load(key); ok {
		return v.(Provider), true
	}
	v, loaded := r.mp.LoadOrStore(key, creation())
	return v.(Provider), loaded
}

func (r *registry) LoadAndDelete(tp Type, name string) (value Provider, loaded bool) {
	v, ok := r.mp.LoadAndDelete(getKey(tp, name))
	if ok {
		p, ok := v.(Provider)
		return p, ok
	}
	return nil, false
}

func (r *registry) Delete(tp Type, name string) {
	r.mp.Delete(getKey(tp, name))
}
