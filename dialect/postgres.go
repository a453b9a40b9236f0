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

package dialect

import (
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

const jdbcPostgresPrefix = "jdbc:postgresql:"

// Postgres is the dialect of PostgreSQL and Postgres-compatible databases.
type Postgres struct{}

func (Postgres) Name() string {
	return "postgres"
}

func (Postgres) CanHandle(url string) bool {
	return strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://") ||
		strings.HasPrefix(url, jdbcPostgresPrefix)
}

func (Postgres) DefaultDriverName() (string, bool) {
	return "pgx", true
}

// DataSourceName strips the JDBC envelope, pgx accepts the remaining
// postgresql:// URL as is.
func (Postgres) DataSourceName(url string) string {
	if strings.HasPrefix(url, jdbcPostgresPrefix) {
		return strings.TrimPrefix(url, "jdbc:")
	}

	return url
}

func (Postgres) QuoteIdentifier(identifier string) string {
	return `"` + identifier + `"`
}

func (p Postgres) InsertStatement(table string, columns []string) string {
	return buildInsert(sqlbuilder.PostgreSQL, p, table, columns, dollarMark)
}

func (p Postgres) UpdateStatement(table string, columns, keyColumns []string) string {
	return buildUpdate(sqlbuilder.PostgreSQL, p, table, columns, keyColumns, dollarMark)
}

// UpsertStatement builds INSERT ... ON CONFLICT updating every non-key
// column from the excluded row. Without key columns there is nothing to
// conflict on and the statement degrades to a plain insert; when every
// column is a key column there is nothing to update and the conflict
// action degrades to DO NOTHING.
func (p Postgres) UpsertStatement(table string, columns, keyColumns []string) string {
	if len(keyColumns) == 0 {
		return p.InsertStatement(table, columns)
	}

	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto(p.QuoteIdentifier(table))
	ib.Cols(quoteAll(p, columns)...)

	values := make([]interface{}, len(columns))
	for i := range columns {
		values[i] = sqlbuilder.Raw(dollarMark(i))
	}
	ib.Values(values...)

	assignments := make([]string, 0, len(columns))
	for _, column := range columns {
		if contains(keyColumns, column) {
			continue
		}
		quoted := p.QuoteIdentifier(column)
		assignments = append(assignments, quoted+" = EXCLUDED."+quoted)
	}

	action := "DO NOTHING"
	if len(assignments) > 0 {
		action = "DO UPDATE SET " + strings.Join(assignments, ", ")
	}

	ib.SQL("ON CONFLICT (" + strings.Join(quoteAll(p, keyColumns), ", ") + ") " + action)

	query, _ := ib.Build()

	return query
}

func (p Postgres) DeleteStatement(table string, keyColumns []string) string {
	return buildDelete(sqlbuilder.PostgreSQL, p, table, keyColumns, dollarMark)
}

func (p Postgres) RowExistsStatement(table string, keyColumns []string) string {
	return buildRowExists(sqlbuilder.PostgreSQL, p, table, keyColumns, dollarMark)
}
