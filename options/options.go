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

// Package options holds the connection options of a JDBC-style database
// table and the builder that validates and materializes them.
package options

import (
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/conduitio-labs/jdbc-conn/dialect"
)

// ConnectionOptions describes how to connect to and interact with one
// table of a database. Instances are immutable once built and safe for
// concurrent use by any number of readers.
type ConnectionOptions struct {
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

// URL returns the connection URL.
func (o *ConnectionOptions) URL() string {
	return o.url
}

// TableName returns the target table name.
func (o *ConnectionOptions) TableName() string {
	return o.tableName
}

// DriverName returns the database/sql driver name.
func (o *ConnectionOptions) DriverName() string {
	return o.driverName
}

// Username returns the username, if one was set.
func (o *ConnectionOptions) Username() (string, bool) {
	if o.username == nil {
		return "", false
	}

	return *o.username, true
}

// Password returns the password, if one was set.
func (o *ConnectionOptions) Password() (string, bool) {
	if o.password == nil {
		return "", false
	}

	return *o.password, true
}

// Dialect returns the SQL dialect of the database.
func (o *ConnectionOptions) Dialect() dialect.Dialect {
	return o.dialect
}

// Parallelism returns the downstream parallelism hint, if one was set.
func (o *ConnectionOptions) Parallelism() (int, bool) {
	if o.parallelism == nil {
		return 0, false
	}

	return *o.parallelism, true
}

// ConnectionCheckTimeoutSeconds returns the timeout, in seconds, that a
// connection check against the database should be bounded by. The options
// layer only carries the value.
func (o *ConnectionOptions) ConnectionCheckTimeoutSeconds() int {
	return o.connectionCheckTimeoutSeconds
}

// NamespaceMappingEnabled reports whether schema-to-namespace mapping is
// enabled.
func (o *ConnectionOptions) NamespaceMappingEnabled() bool {
	return o.namespaceMappingEnabled
}

// MapSystemTablesEnabled reports whether system tables are mapped to the
// namespace as well.
func (o *ConnectionOptions) MapSystemTablesEnabled() bool {
	return o.mapSystemTablesEnabled
}

// Equal reports whether two records hold the same values in every field.
// Dialects are compared by variant name, not structurally, and optional
// fields compare equal when both are unset or both hold the same value.
func (o *ConnectionOptions) Equal(other *ConnectionOptions) bool {
	if o == nil || other == nil {
		return o == other
	}

	return o.url == other.url &&
		o.tableName == other.tableName &&
		o.driverName == other.driverName &&
		equalString(o.username, other.username) &&
		equalString(o.password, other.password) &&
		o.dialect.Name() == other.dialect.Name() &&
		equalInt(o.parallelism, other.parallelism) &&
		o.connectionCheckTimeoutSeconds == other.connectionCheckTimeoutSeconds &&
		o.namespaceMappingEnabled == other.namespaceMappingEnabled &&
		o.mapSystemTablesEnabled == other.mapSystemTablesEnabled
}

// Hash returns a 64-bit FNV-1a hash over every field, consistent with
// Equal.
func (o *ConnectionOptions) Hash() uint64 {
	h := fnv.New64a()

	writeString := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	writeOptionalString := func(s *string) {
		if s == nil {
			h.Write([]byte{0})

			return
		}
		h.Write([]byte{1})
		writeString(*s)
	}
	writeBool := func(b bool) {
		if b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	writeString(o.url)
	writeString(o.tableName)
	writeString(o.driverName)
	writeOptionalString(o.username)
	writeOptionalString(o.password)
	writeString(o.dialect.Name())
	if o.parallelism == nil {
		h.Write([]byte{0})
	} else {
		h.Write([]byte{1})
		writeString(strconv.Itoa(*o.parallelism))
	}
	writeString(strconv.Itoa(o.connectionCheckTimeoutSeconds))
	writeBool(o.namespaceMappingEnabled)
	writeBool(o.mapSystemTablesEnabled)

	return h.Sum64()
}

// MarshalZerologObject logs every field except the password.
func (o *ConnectionOptions) MarshalZerologObject(e *zerolog.Event) {
	e.Str("url", o.url).
		Str("table", o.tableName).
		Str("driver", o.driverName).
		Str("dialect", o.dialect.Name()).
		Int("connectionCheckTimeoutSeconds", o.connectionCheckTimeoutSeconds).
		Bool("namespaceMapping", o.namespaceMappingEnabled).
		Bool("mapSystemTables", o.mapSystemTablesEnabled)

	if o.username != nil {
		e.Str("username", *o.username)
	}
	if o.parallelism != nil {
		e.Int("parallelism", *o.parallelism)
	}
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
