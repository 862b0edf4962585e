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


package dialect

import (
	"strings"
	"sync"

	"github.com/endink/go-sharding-route/core"
)

// Dialect holds the identifier rules of a database kind.
type Dialect interface {
	Type() DatabaseType
	QuoteIdentifier(name string) string
	// NormalizeIdentifier removes quotes and returns the name routing rules are matched with.
	NormalizeIdentifier(name string) string
}

type quotedDialect struct {
	tp         DatabaseType
	openQuote  byte
	closeQuote byte
	// unquoted identifiers are folded to upper case
	upperFold bool
}

func (d *quotedDialect) Type() DatabaseType {
	return d.tp
}

func (d *quotedDialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, string(d.closeQuote), string([]byte{d.closeQuote, d.closeQuote}))
	return string(d.openQuote) + escaped + string(d.closeQuote)
}

func (d *quotedDialect) NormalizeIdentifier(name string) string {
	n := strings.TrimSpace(name)
	parts := strings.Split(n, ".")
	for i, p := range parts {
		parts[i] = d.normalizePart(p)
	}
	return strings.Join(parts, ".")
}

func (d *quotedDialect) normalizePart(p string) string {
	if len(p) >= 2 && p[0] == d.openQuote && p[len(p)-1] == d.closeQuote {
		inner := p[1 : len(p)-1]
		return strings.ReplaceAll(inner, string([]byte{d.closeQuote, d.closeQuote}), string(d.closeQuote))
	}
	if d.upperFold {
		return strings.ToUpper(p)
	}
	return strings.ToLower(p)
}

var (
	mysqlDialect = &quotedDialect{tp: MySQL, openQuote: '`', closeQuote: '`'}

	registryMu sync.RWMutex
	registry   = map[DatabaseType]Dialect{}
)

func init() {
	MustRegister(MySQL, mysqlDialect)
	MustRegister(H2, mysqlDialect)
	MustRegister(PostgreSQL, &quotedDialect{tp: PostgreSQL, openQuote: '"', closeQuote: '"'})
	MustRegister(OpenGauss, &quotedDialect{tp: OpenGauss, openQuote: '"', closeQuote: '"'})
	MustRegister(SQLServer, &quotedDialect{tp: SQLServer, openQuote: '[', closeQuote: ']'})
	MustRegister(Oracle, &quotedDialect{tp: Oracle, openQuote: '"', closeQuote: '"', upperFold: true})
	MustRegister(SQL92, &quotedDialect{tp: SQL92, openQuote: '"', closeQuote: '"'})
}

// Register binds a dialect to a database type, replacing the previous one.
func Register(tp DatabaseType, d Dialect) error {
	if d == nil {
		return &core.UnsupportedDatabaseTypeError{DatabaseType: tp.String()}
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tp] = d
	return nil
}

func MustRegister(tp DatabaseType, d Dialect) {
	if err := Register(tp, d); err != nil {
		panic(err)
	}
}

// Get returns the dialect registered for tp or an UnsupportedDatabaseTypeError.
func Get(tp DatabaseType) (Dialect, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if d, ok := registry[tp]; ok {
		return d, nil
	}
	return nil, &core.UnsupportedDatabaseTypeError{DatabaseType: tp.String()}
}

// Lookup resolves a dialect by database type name.
func Lookup(name string) (Dialect, error) {
	tp, err := ParseDatabaseType(name)
	if err != nil {
		return nil, err
	}
	return Get(tp)
}
