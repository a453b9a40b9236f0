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

// Package repository opens database connections described by connection
// options records.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/conduitio-labs/jdbc-conn/options"

	// Go drivers of the built-in dialects.
	_ "github.com/apache/calcite-avatica-go/v5"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Database wraps an open connection pool to the database a connection
// options record describes.
type Database struct {
	DB *sqlx.DB

	opts *options.ConnectionOptions
}

// New opens a database with the record's driver and URL and verifies the
// connection with a ping bounded by the record's connection check
// timeout.
func New(ctx context.Context, opts *options.ConnectionOptions) (*Database, error) {
	db, err := sqlx.Open(opts.DriverName(), opts.Dialect().DataSourceName(opts.URL()))
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	timeout := time.Duration(opts.ConnectionCheckTimeoutSeconds()) * time.Second

	ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if pingErr := db.PingContext(ctxTimeout); pingErr != nil {
		return nil, multierr.Append(fmt.Errorf("ping with timeout: %w", pingErr), db.Close())
	}

	zerolog.Ctx(ctx).Debug().Object("options", opts).Msg("opened database connection")

	return &Database{DB: db, opts: opts}, nil
}

// RowExists reports whether a row matching the key columns exists in the
// record's table.
func (d *Database) RowExists(ctx context.Context, keyColumns []string, keyValues ...any) (bool, error) {
	query := d.opts.Dialect().RowExistsStatement(d.opts.TableName(), keyColumns)

	var one int
	err := d.DB.QueryRowxContext(ctx, query, keyValues...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query row exists %q: %w", query, err)
	}

	return true, nil
}

// Close closes the database.
func (d *Database) Close() error {
	if d != nil {
		if err := d.DB.Close(); err != nil {
			return fmt.Errorf("close db connection: %w", err)
		}
	}

	return nil
}
