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
	"net/url"
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

const jdbcMySQLPrefix = "jdbc:mysql:"

// MySQL is the dialect of MySQL and MySQL-compatible databases.
type MySQL struct{}

func (MySQL) Name() string {
	return "mysql"
}

func (MySQL) CanHandle(url string) bool {
	return strings.HasPrefix(url, "mysql://") ||
		strings.HasPrefix(url, jdbcMySQLPrefix)
}

func (MySQL) DefaultDriverName() (string, bool) {
	return "mysql", true
}

// DataSourceName converts a URL form into the go-sql-driver DSN form,
// user:pass@tcp(host:port)/dbname?params. A URL that cannot be parsed is
// returned unchanged and left to the driver to reject.
func (MySQL) DataSourceName(rawURL string) string {
	u, err := url.Parse(strings.TrimPrefix(rawURL, "jdbc:"))
	if err != nil || u.Host == "" {
		return rawURL
	}

	// credentials are written unescaped, the driver expects them raw
	var dsn strings.Builder
	if u.User != nil {
		dsn.WriteString(u.User.Username())
		if password, ok := u.User.Password(); ok {
			dsn.WriteByte(':')
			dsn.WriteString(password)
		}
		dsn.WriteByte('@')
	}
	dsn.WriteString("tcp(")
	dsn.WriteString(u.Host)
	dsn.WriteString(")/")
	dsn.WriteString(strings.TrimPrefix(u.Path, "/"))
	if u.RawQuery != "" {
		dsn.WriteByte('?')
		dsn.WriteString(u.RawQuery)
	}

	return dsn.String()
}

func (MySQL) QuoteIdentifier(identifier string) string {
	return "`" + identifier + "`"
}

func (m MySQL) InsertStatement(table string, columns []string) string {
	return buildInsert(sqlbuilder.MySQL, m, table, columns, questionMark)
}

func (m MySQL) UpdateStatement(table string, columns, keyColumns []string) string {
	return buildUpdate(sqlbuilder.MySQL, m, table, columns, keyColumns, questionMark)
}

// UpsertStatement builds INSERT ... ON DUPLICATE KEY UPDATE for every
// non-key column. The duplicate key is whatever unique key the table
// defines, so keyColumns only select the columns to update. When every
// column is a key column there is nothing to update and a no-op
// assignment on the first column keeps duplicates from failing.
func (m MySQL) UpsertStatement(table string, columns, keyColumns []string) string {
	ib := sqlbuilder.MySQL.NewInsertBuilder()
	ib.InsertInto(m.QuoteIdentifier(table))
	ib.Cols(quoteAll(m, columns)...)

	values := make([]interface{}, len(columns))
	for i := range columns {
		values[i] = sqlbuilder.Raw(questionMark(i))
	}
	ib.Values(values...)

	assignments := make([]string, 0, len(columns))
	for _, column := range columns {
		if contains(keyColumns, column) {
			continue
		}
		quoted := m.QuoteIdentifier(column)
		assignments = append(assignments, quoted+" = VALUES("+quoted+")")
	}

	if len(assignments) == 0 && len(columns) > 0 {
		quoted := m.QuoteIdentifier(columns[0])
		assignments = append(assignments, quoted+" = "+quoted)
	}

	ib.SQL("ON DUPLICATE KEY UPDATE " + strings.Join(assignments, ", "))

	query, _ := ib.Build()

	return query
}

func (m MySQL) DeleteStatement(table string, keyColumns []string) string {
	return buildDelete(sqlbuilder.MySQL, m, table, keyColumns, questionMark)
}

func (m MySQL) RowExistsStatement(table string, keyColumns []string) string {
	return buildRowExists(sqlbuilder.MySQL, m, table, keyColumns, questionMark)
}
