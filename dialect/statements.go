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
	"strconv"

	"github.com/huandu/go-sqlbuilder"
)

// placeholderFunc renders the i-th (zero-based) statement placeholder.
type placeholderFunc func(i int) string

func questionMark(int) string {
	return "?"
}

func dollarMark(i int) string {
	return "$" + strconv.Itoa(i+1)
}

// quoteAll quotes every identifier with the dialect's quoting rule.
func quoteAll(d Dialect, identifiers []string) []string {
	quoted := make([]string, len(identifiers))
	for i := range identifiers {
		quoted[i] = d.QuoteIdentifier(identifiers[i])
	}

	return quoted
}

// buildInsert builds a single-row INSERT with one placeholder per column.
func buildInsert(flavor sqlbuilder.Flavor, d Dialect, table string, columns []string, ph placeholderFunc) string {
	ib := flavor.NewInsertBuilder()
	ib.InsertInto(d.QuoteIdentifier(table))
	ib.Cols(quoteAll(d, columns)...)

	values := make([]interface{}, len(columns))
	for i := range columns {
		values[i] = sqlbuilder.Raw(ph(i))
	}
	ib.Values(values...)

	query, _ := ib.Build()

	return query
}

// buildUpdate builds an UPDATE setting every column, with the key columns
// in the WHERE clause. Placeholder numbering runs through the SET clause
// first, then the WHERE clause.
func buildUpdate(flavor sqlbuilder.Flavor, d Dialect, table string, columns, keyColumns []string, ph placeholderFunc) string {
	ub := flavor.NewUpdateBuilder()
	ub.Update(d.QuoteIdentifier(table))

	assignments := make([]string, len(columns))
	for i := range columns {
		assignments[i] = ub.Assign(d.QuoteIdentifier(columns[i]), sqlbuilder.Raw(ph(i)))
	}
	ub.Set(assignments...)

	for i := range keyColumns {
		ub.Where(ub.Equal(d.QuoteIdentifier(keyColumns[i]), sqlbuilder.Raw(ph(len(columns)+i))))
	}

	query, _ := ub.Build()

	return query
}

// buildDelete builds a DELETE matched by the key columns.
func buildDelete(flavor sqlbuilder.Flavor, d Dialect, table string, keyColumns []string, ph placeholderFunc) string {
	db := flavor.NewDeleteBuilder()
	db.DeleteFrom(d.QuoteIdentifier(table))

	for i := range keyColumns {
		db.Where(db.Equal(d.QuoteIdentifier(keyColumns[i]), sqlbuilder.Raw(ph(i))))
	}

	query, _ := db.Build()

	return query
}

// buildRowExists builds a SELECT 1 matched by the key columns.
func buildRowExists(flavor sqlbuilder.Flavor, d Dialect, table string, keyColumns []string, ph placeholderFunc) string {
	sb := flavor.NewSelectBuilder()
	sb.Select("1")
	sb.From(d.QuoteIdentifier(table))

	for i := range keyColumns {
		sb.Where(sb.Equal(d.QuoteIdentifier(keyColumns[i]), sqlbuilder.Raw(ph(i))))
	}

	query, _ := sb.Build()

	return query
}

// contains reports whether the list holds the identifier.
func contains(list []string, identifier string) bool {
	for i := range list {
		if list[i] == identifier {
			return true
		}
	}

	return false
}
