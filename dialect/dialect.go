// Copyright © 2024 Meroxa, Inc. & Yalantis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:generate mockgen -package mock -source dialect.go -destination mock/dialect.go

// Package dialect describes SQL-variant-specific behavior of databases
// reachable over JDBC-style connection URLs, and a registry that resolves
// a dialect from such a URL.
package dialect

import (
	"sync"
)

// Dialect encapsulates the behavior that differs between SQL variants:
// which URLs belong to it, which database/sql driver it uses by default,
// how identifiers are quoted, and how common statements are spelled.
type Dialect interface {
	// Name identifies the dialect variant. Two connection options records
	// are considered to carry the same dialect iff the names match.
	Name() string

	// CanHandle reports whether the dialect recognizes the connection URL.
	CanHandle(url string) bool

	// DefaultDriverName returns the database/sql driver name used when the
	// caller does not supply one. The second return value is false if the
	// dialect has no default driver.
	DefaultDriverName() (string, bool)

	// DataSourceName converts a JDBC-style connection URL into the DSN
	// form the dialect's Go driver expects.
	DataSourceName(url string) string

	// QuoteIdentifier quotes a table or column identifier.
	QuoteIdentifier(identifier string) string

	// InsertStatement returns a parameterized statement inserting one row.
	InsertStatement(table string, columns []string) string

	// UpdateStatement returns a parameterized statement updating the
	// columns of rows matched by the key columns.
	UpdateStatement(table string, columns, keyColumns []string) string

	// UpsertStatement returns a parameterized statement inserting one row
	// or updating it if a row with the same key columns already exists.
	UpsertStatement(table string, columns, keyColumns []string) string

	// DeleteStatement returns a parameterized statement deleting rows
	// matched by the key columns.
	DeleteStatement(table string, keyColumns []string) string

	// RowExistsStatement returns a parameterized statement selecting 1 for
	// rows matched by the key columns.
	RowExistsStatement(table string, keyColumns []string) string
}

// Registry is an ordered set of dialects resolvable by connection URL or
// by name. The zero value is empty and ready to use.
type Registry struct {
	mu       sync.RWMutex
	dialects []Dialect
}

// NewRegistry returns a registry holding the provided dialects.
func NewRegistry(dialects ...Dialect) *Registry {
	return &Registry{dialects: dialects}
}

// Register appends a dialect to the registry.
func (r *Registry) Register(d Dialect) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dialects = append(r.dialects, d)
}

// Get returns the first registered dialect that recognizes the URL.
func (r *Registry) Get(url string) (Dialect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.dialects {
		if d.CanHandle(url) {
			return d, true
		}
	}

	return nil, false
}

// ByName returns the registered dialect with the given name.
func (r *Registry) ByName(name string) (Dialect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.dialects {
		if d.Name() == name {
			return d, true
		}
	}

	return nil, false
}

// defaultRegistry holds the built-in dialects.
var defaultRegistry = NewRegistry(Phoenix{}, Postgres{}, MySQL{})

// Default returns the process-wide registry pre-populated with the
// built-in dialects.
func Default() *Registry {
	return defaultRegistry
}

// Register appends a dialect to the default registry.
func Register(d Dialect) {
	defaultRegistry.Register(d)
}

// Get returns the first dialect in the default registry that recognizes
// the URL.
func Get(url string) (Dialect, bool) {
	return defaultRegistry.Get(url)
}
