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


// Package hint carries sharding values supplied out of band, e.g. by a SQL comment or the caller.
package hint

import (
	"context"
	"github.com/endink/go-sharding-route/core"
)

type contextKey struct{}

type level int

const (
	levelDatabase level = iota
	levelTable
)

// Manager holds hint values by logic table. A Manager placed in a context is never mutated.
type Manager struct {
	values map[level]map[string][]interface{}
}

func (m *Manager) clone() *Manager {
	c := &Manager{values: make(map[level]map[string][]interface{}, 2)}
	if m == nil {
		return c
	}
	for l, tables := range m.values {
		c.values[l] = make(map[string][]interface{}, len(tables))
		for t, v := range tables {
			c.values[l][t] = v
		}
	}
	return c
}

func fromContext(ctx context.Context) *Manager {
	if ctx == nil {
		return nil
	}
	m, _ := ctx.Value(contextKey{}).(*Manager)
	return m
}

func with(ctx context.Context, l level, table string, values []interface{}) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	m := fromContext(ctx).clone()
	if m.values[l] == nil {
		m.values[l] = make(map[string][]interface{})
	}
	key := core.TrimAndLower(table)
	merged := make([]interface{}, 0, len(m.values[l][key])+len(values))
	merged = append(merged, m.values[l][key]...)
	merged = append(merged, values...)
	m.values[l][key] = merged
	return context.WithValue(ctx, contextKey{}, m)
}

// WithDatabaseValues returns a context routing the table's database hint strategy by values.
// Calling it again for the same table appends values.
func WithDatabaseValues(ctx context.Context, table string, values ...interface{}) context.Context {
	return with(ctx, levelDatabase, table, values)
}

// WithTableValues returns a context routing the table's table hint strategy by values.
func WithTableValues(ctx context.Context, table string, values ...interface{}) context.Context {
	return with(ctx, levelTable, table, values)
}

// Clear returns a context without any hint value.
func Clear(ctx context.Context) context.Context {
	if fromContext(ctx) == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, (*Manager)(nil))
}

func values(ctx context.Context, l level, table string) []core.ShardingValue {
	m := fromContext(ctx)
	if m == nil {
		return nil
	}
	v, ok := m.values[l][core.TrimAndLower(table)]
	if !ok {
		return nil
	}
	return []core.ShardingValue{core.NewHintShardingValue(table, "", v...)}
}

// DatabaseValues returns the database hint values of the table, nil when none were set.
func DatabaseValues(ctx context.Context, table string) []core.ShardingValue {
	return values(ctx, levelDatabase, table)
}

// TableValues returns the table hint values of the table, nil when none were set.
func TableValues(ctx context.Context, table string) []core.ShardingValue {
	return values(ctx, levelTable, table)
}

// HasValues reports whether any hint is set in the context.
func HasValues(ctx context.Context) bool {
	m := fromContext(ctx)
	if m == nil {
		return false
	}
	for _, tables := range m.values {
		if len(tables) > 0 {
			return true
		}
	}
	return false
}
