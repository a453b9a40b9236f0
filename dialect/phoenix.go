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

const (
	phoenixPrefix     = "jdbc:phoenix:"
	phoenixThinPrefix = "jdbc:phoenix:thin:"

	// defaultQueryServerPort is the default port of the Phoenix Query
	// Server the Avatica driver speaks to.
	defaultQueryServerPort = "8765"
)

// Phoenix is the dialect of Apache Phoenix.
type Phoenix struct{}

func (Phoenix) Name() string {
	return "phoenix"
}

func (Phoenix) CanHandle(url string) bool {
	return strings.HasPrefix(url, phoenixPrefix)
}

func (Phoenix) DefaultDriverName() (string, bool) {
	return "avatica", true
}

// DataSourceName maps a Phoenix JDBC URL to the Avatica driver's DSN, the
// HTTP address of a Phoenix Query Server. The thin form carries that
// address explicitly; for the ZooKeeper form the query server is assumed
// to run on its default port on the first quorum host.
func (Phoenix) DataSourceName(url string) string {
	if rest, ok := strings.CutPrefix(url, phoenixThinPrefix); ok {
		// jdbc:phoenix:thin:url=http://host:8765;serialization=PROTOBUF
		for _, property := range strings.Split(rest, ";") {
			if value, ok := strings.CutPrefix(property, "url="); ok {
				return value
			}
		}

		return url
	}

	rest, ok := strings.CutPrefix(url, phoenixPrefix)
	if !ok {
		return url
	}

	// jdbc:phoenix:zk1,zk2,zk3:2181:/hbase
	quorum := rest
	if i := strings.IndexByte(quorum, ':'); i >= 0 {
		quorum = quorum[:i]
	}
	host := quorum
	if i := strings.IndexByte(host, ','); i >= 0 {
		host = host[:i]
	}

	return "http://" + host + ":" + defaultQueryServerPort
}

func (Phoenix) QuoteIdentifier(identifier string) string {
	return `"` + identifier + `"`
}

// InsertStatement returns an UPSERT statement, since Phoenix has no plain
// INSERT.
func (p Phoenix) InsertStatement(table string, columns []string) string {
	return p.UpsertStatement(table, columns, nil)
}

func (p Phoenix) UpdateStatement(table string, columns, keyColumns []string) string {
	return buildUpdate(sqlbuilder.MySQL, p, table, columns, keyColumns, questionMark)
}

// UpsertStatement spells the statement with the UPSERT verb. Phoenix
// resolves inserts and updates on the primary key itself, so keyColumns
// do not appear in the statement.
func (p Phoenix) UpsertStatement(table string, columns, _ []string) string {
	query := buildInsert(sqlbuilder.MySQL, p, table, columns, questionMark)

	return "UPSERT" + strings.TrimPrefix(query, "INSERT")
}

func (p Phoenix) DeleteStatement(table string, keyColumns []string) string {
	return buildDelete(sqlbuilder.MySQL, p, table, keyColumns, questionMark)
}

func (p Phoenix) RowExistsStatement(table string, keyColumns []string) string {
	return buildRowExists(sqlbuilder.MySQL, p, table, keyColumns, questionMark)
}

// SystemTableName returns the physical name of a Phoenix system table.
// With namespace mapping enabled the schema separator of SYSTEM tables
// becomes a colon, e.g. SYSTEM.CATALOG is stored as SYSTEM:CATALOG.
func (Phoenix) SystemTableName(table string, namespaceMapped bool) string {
	if namespaceMapped {
		return strings.Replace(table, ".", ":", 1)
	}

	return table
}
