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

package options

import (
	"github.com/conduitio-labs/jdbc-conn/common"
	"github.com/conduitio-labs/jdbc-conn/dialect"
)

const (
	// FieldURL is the name of the connection URL field.
	FieldURL = "url"
	// FieldTable is the name of the table name field.
	FieldTable = "table"
	// FieldDriverName is the name of the driver name field.
	FieldDriverName = "driverName"

	// DefaultConnectionCheckTimeoutSeconds is applied when no timeout is
	// set on the builder.
	DefaultConnectionCheckTimeoutSeconds = 60
)

// Builder accumulates connection option fields and materializes immutable
// ConnectionOptions records. Setters perform no validation, Build does.
//
// A Builder is not safe for concurrent mutation, synchronization is the
// caller's responsibility. It stays reusable after Build and produces an
// independent record on every call.
type Builder struct {
	registry                      *dialect.Registry
	url                           string
	tableName                     string
	driverName                    string
	username                      *string
	password                      *string
	dialect                       dialect.Dialect
	parallelism                   *int
	connectionCheckTimeoutSeconds int
	namespaceMappingEnabled       bool
	mapSystemTablesEnabled        bool
}

// NewBuilder returns a builder resolving dialects from the default
// registry.
func NewBuilder() *Builder {
	return &Builder{
		registry:                      dialect.Default(),
		connectionCheckTimeoutSeconds: DefaultConnectionCheckTimeoutSeconds,
	}
}

// SetDialectRegistry replaces the registry used to resolve a dialect from
// the URL when no dialect is set explicitly.
func (b *Builder) SetDialectRegistry(registry *dialect.Registry) *Builder {
	b.registry = registry

	return b
}

// SetURL sets the connection URL. Required.
func (b *Builder) SetURL(url string) *Builder {
	b.url = url

	return b
}

// SetTableName sets the target table name. Required.
func (b *Builder) SetTableName(tableName string) *Builder {
	b.tableName = tableName

	return b
}

// SetDriverName sets the database/sql driver name. Optional, the dialect
// provides a default, see dialect.Dialect.DefaultDriverName.
func (b *Builder) SetDriverName(driverName string) *Builder {
	b.driverName = driverName

	return b
}

// SetUsername sets the username. Optional.
func (b *Builder) SetUsername(username string) *Builder {
	b.username = &username

	return b
}

// SetPassword sets the password. Optional.
func (b *Builder) SetPassword(password string) *Builder {
	b.password = &password

	return b
}

// SetDialect sets the SQL dialect. Optional, if unset it is inferred from
// the URL via the builder's registry.
func (b *Builder) SetDialect(d dialect.Dialect) *Builder {
	b.dialect = d

	return b
}

// SetParallelism sets the downstream parallelism hint. Optional.
func (b *Builder) SetParallelism(parallelism int) *Builder {
	b.parallelism = &parallelism

	return b
}

// SetConnectionCheckTimeoutSeconds sets the connection check timeout in
// seconds. Optional, defaults to 60.
func (b *Builder) SetConnectionCheckTimeoutSeconds(seconds int) *Builder {
	b.connectionCheckTimeoutSeconds = seconds

	return b
}

// SetNamespaceMappingEnabled enables schema-to-namespace mapping.
// Optional, defaults to false.
func (b *Builder) SetNamespaceMappingEnabled(enabled bool) *Builder {
	b.namespaceMappingEnabled = enabled

	return b
}

// SetMapSystemTablesEnabled enables mapping of system tables to the
// namespace. Optional, defaults to false.
func (b *Builder) SetMapSystemTablesEnabled(enabled bool) *Builder {
	b.mapSystemTablesEnabled = enabled

	return b
}

// Build validates the accumulated fields and returns a new immutable
// record. It fails with common.MissingFieldError when the URL, the table
// name, or a resolvable driver name is absent, and with
// common.UnresolvedDialectError when no registered dialect recognizes the
// URL. A failed Build leaves the builder untouched, the caller may
// correct fields and build again.
func (b *Builder) Build() (*ConnectionOptions, error) {
	if b.url == "" {
		return nil, common.NewMissingFieldError(FieldURL)
	}
	if b.tableName == "" {
		return nil, common.NewMissingFieldError(FieldTable)
	}

	d := b.dialect
	if d == nil {
		registry := b.registry
		if registry == nil {
			registry = dialect.Default()
		}

		var ok bool
		d, ok = registry.Get(b.url)
		if !ok {
			return nil, common.NewUnresolvedDialectError(b.url)
		}
	}

	driverName := b.driverName
	if driverName == "" {
		name, ok := d.DefaultDriverName()
		if !ok {
			return nil, common.NewMissingFieldError(FieldDriverName)
		}
		driverName = name
	}

	return &ConnectionOptions{
		url:                           b.url,
		tableName:                     b.tableName,
		driverName:                    driverName,
		username:                      copyString(b.username),
		password:                      copyString(b.password),
		dialect:                       d,
		parallelism:                   copyInt(b.parallelism),
		connectionCheckTimeoutSeconds: b.connectionCheckTimeoutSeconds,
		namespaceMappingEnabled:       b.namespaceMappingEnabled,
		mapSystemTablesEnabled:        b.mapSystemTablesEnabled,
	}, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s

	return &c
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	c := *i

	return &c
}
