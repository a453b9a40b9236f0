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

// Package config parses raw string-map configuration into validated
// connection options.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conduitio-labs/jdbc-conn/common"
	"github.com/conduitio-labs/jdbc-conn/dialect"
	"github.com/conduitio-labs/jdbc-conn/options"
)

const (
	// ConfigURL is the configuration name of the connection URL.
	ConfigURL = "url"
	// ConfigTable is the configuration name of the table.
	ConfigTable = "table"
	// ConfigDriverName is the configuration name of the database/sql driver.
	ConfigDriverName = "driverName"
	// ConfigUsername is the configuration name of the username.
	ConfigUsername = "username"
	// ConfigPassword is the configuration name of the password.
	ConfigPassword = "password"
	// ConfigDialect is the configuration name of the dialect.
	ConfigDialect = "dialect"
	// ConfigParallelism is the configuration name of the parallelism hint.
	ConfigParallelism = "parallelism"
	// ConfigConnectionCheckTimeoutSeconds is the configuration name of the
	// connection check timeout.
	ConfigConnectionCheckTimeoutSeconds = "connectionCheckTimeoutSeconds"
	// ConfigNamespaceMapping is the configuration name of the namespace
	// mapping flag.
	ConfigNamespaceMapping = "namespaceMapping"
	// ConfigMapSystemTables is the configuration name of the system table
	// mapping flag.
	ConfigMapSystemTables = "mapSystemTables"
)

// Configuration holds the configurable values of a connection. Zero
// values mean "not provided".
type Configuration struct {
	// URL is the JDBC-style connection URL.
	URL string `key:"url" validate:"required"`
	// Table is the target table name.
	Table string `key:"table" validate:"required"`
	// DriverName is the database/sql driver name, the dialect's default is
	// used when empty.
	DriverName string `key:"driverName"`
	// Username is the username to authenticate with.
	Username string `key:"username"`
	// Password is the password to authenticate with.
	Password string `key:"password"`
	// Dialect is the name of a registered dialect, inferred from the URL
	// when empty.
	Dialect string `key:"dialect"`
	// Parallelism is a hint for downstream task parallelism.
	Parallelism int `key:"parallelism" validate:"omitempty,gte=1"`
	// ConnectionCheckTimeoutSeconds bounds connection checks.
	ConnectionCheckTimeoutSeconds int `key:"connectionCheckTimeoutSeconds" validate:"omitempty,gte=1"`
	// NamespaceMapping enables schema-to-namespace mapping.
	NamespaceMapping bool `key:"namespaceMapping"`
	// MapSystemTables enables mapping of system tables to the namespace.
	MapSystemTables bool `key:"mapSystemTables"`
}

// Parse parses and validates a raw configuration map.
func Parse(cfg map[string]string) (Configuration, error) {
	config := Configuration{
		URL:        strings.TrimSpace(cfg[ConfigURL]),
		Table:      strings.TrimSpace(cfg[ConfigTable]),
		DriverName: strings.TrimSpace(cfg[ConfigDriverName]),
		Username:   strings.TrimSpace(cfg[ConfigUsername]),
		Password:   cfg[ConfigPassword],
		Dialect:    strings.TrimSpace(cfg[ConfigDialect]),
	}

	var err error
	config.Parallelism, err = parseIntValue(cfg, ConfigParallelism)
	if err != nil {
		return Configuration{}, err
	}

	config.ConnectionCheckTimeoutSeconds, err = parseIntValue(cfg, ConfigConnectionCheckTimeoutSeconds)
	if err != nil {
		return Configuration{}, err
	}

	config.NamespaceMapping, err = parseBoolValue(cfg, ConfigNamespaceMapping)
	if err != nil {
		return Configuration{}, err
	}

	config.MapSystemTables, err = parseBoolValue(cfg, ConfigMapSystemTables)
	if err != nil {
		return Configuration{}, err
	}

	err = validateStruct(config)
	if err != nil {
		return Configuration{}, fmt.Errorf("validate configuration: %w", err)
	}

	return config, nil
}

// Options builds an immutable connection options record from the parsed
// configuration, resolving a dialect name against the provided registry.
// A nil registry means the default one.
func (c Configuration) Options(registry *dialect.Registry) (*options.ConnectionOptions, error) {
	if registry == nil {
		registry = dialect.Default()
	}

	builder := options.NewBuilder().
		SetDialectRegistry(registry).
		SetURL(c.URL).
		SetTableName(c.Table).
		SetNamespaceMappingEnabled(c.NamespaceMapping).
		SetMapSystemTablesEnabled(c.MapSystemTables)

	if c.DriverName != "" {
		builder.SetDriverName(c.DriverName)
	}
	if c.Username != "" {
		builder.SetUsername(c.Username)
	}
	if c.Password != "" {
		builder.SetPassword(c.Password)
	}
	if c.Parallelism > 0 {
		builder.SetParallelism(c.Parallelism)
	}
	if c.ConnectionCheckTimeoutSeconds > 0 {
		builder.SetConnectionCheckTimeoutSeconds(c.ConnectionCheckTimeoutSeconds)
	}

	if c.Dialect != "" {
		d, ok := registry.ByName(c.Dialect)
		if !ok {
			return nil, common.NewUnknownDialectNameError(c.Dialect)
		}
		builder.SetDialect(d)
	}

	opts, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build connection options: %w", err)
	}

	return opts, nil
}

// parseIntValue parses an optional integer value, absent or blank means 0.
func parseIntValue(cfg map[string]string, key string) (int, error) {
	value := strings.TrimSpace(cfg[key])
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", key, err)
	}

	return parsed, nil
}

// parseBoolValue parses an optional boolean value, absent or blank means
// false.
func parseBoolValue(cfg map[string]string, key string) (bool, error) {
	value := strings.TrimSpace(cfg[key])
	if value == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %q: %w", key, err)
	}

	return parsed, nil
}
