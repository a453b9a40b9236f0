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
	"testing"

	"github.com/matryer/is"
	"go.uber.org/mock/gomock"

	"github.com/conduitio-labs/jdbc-conn/dialect"
	"github.com/conduitio-labs/jdbc-conn/dialect/mock"
)

func TestConnectionOptions_Equal_identicalBuilders(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	build := func() *ConnectionOptions {
		opts, err := NewBuilder().
			SetURL(testPhoenixURL).
			SetTableName(testTable).
			SetUsername("username").
			SetParallelism(2).
			Build()
		is.NoErr(err)

		return opts
	}

	first, second := build(), build()

	is.True(first.Equal(second))
	is.True(second.Equal(first))
	is.Equal(first.Hash(), second.Hash())
}

func TestConnectionOptions_Equal_dialectVariantIdentity(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	// one dialect inferred from the URL, the other set explicitly; the
	// variant is the same, so the records are equal
	inferred, err := NewBuilder().
		SetURL(testPhoenixURL).
		SetTableName(testTable).
		Build()
	is.NoErr(err)

	explicit, err := NewBuilder().
		SetURL(testPhoenixURL).
		SetTableName(testTable).
		SetDialect(dialect.Phoenix{}).
		Build()
	is.NoErr(err)

	is.True(inferred.Equal(explicit))
	is.Equal(inferred.Hash(), explicit.Hash())
}

func TestConnectionOptions_Equal_sameNameDifferentInstances(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	ctrl := gomock.NewController(t)

	// a mock posing as the phoenix variant compares equal to the real one
	d := mock.NewMockDialect(ctrl)
	d.EXPECT().DefaultDriverName().Return("avatica", true)
	d.EXPECT().Name().Return("phoenix").AnyTimes()

	mocked, err := NewBuilder().
		SetURL(testPhoenixURL).
		SetTableName(testTable).
		SetDialect(d).
		Build()
	is.NoErr(err)

	direct, err := NewBuilder().
		SetURL(testPhoenixURL).
		SetTableName(testTable).
		SetDialect(dialect.Phoenix{}).
		Build()
	is.NoErr(err)

	is.True(mocked.Equal(direct))
	is.Equal(mocked.Hash(), direct.Hash())
}

func TestConnectionOptions_Equal_differentFields(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	base := func() *Builder {
		return NewBuilder().
			SetURL(testPostgresURL).
			SetTableName(testTable)
	}

	reference, err := base().Build()
	is.NoErr(err)

	tests := []struct {
		name    string
		builder *Builder
	}{
		{
			name:    "different_table",
			builder: base().SetTableName("T2"),
		},
		{
			name:    "different_driver",
			builder: base().SetDriverName("postgres"),
		},
		{
			name:    "username_set",
			builder: base().SetUsername("username"),
		},
		{
			name:    "parallelism_set",
			builder: base().SetParallelism(1),
		},
		{
			name:    "different_timeout",
			builder: base().SetConnectionCheckTimeoutSeconds(10),
		},
		{
			name:    "namespace_mapping_enabled",
			builder: base().SetNamespaceMappingEnabled(true),
		},
		{
			name:    "map_system_tables_enabled",
			builder: base().SetMapSystemTablesEnabled(true),
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			is := is.New(t)

			other, err := tt.builder.Build()
			is.NoErr(err)

			is.True(!reference.Equal(other))
		})
	}
}

func TestConnectionOptions_Equal_differentDialectVariants(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	postgres, err := NewBuilder().
		SetURL(testPostgresURL).
		SetTableName(testTable).
		SetDriverName("driver").
		Build()
	is.NoErr(err)

	mysql, err := NewBuilder().
		SetURL(testPostgresURL).
		SetTableName(testTable).
		SetDriverName("driver").
		SetDialect(dialect.MySQL{}).
		Build()
	is.NoErr(err)

	is.True(!postgres.Equal(mysql))
}

func TestConnectionOptions_Equal_nil(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	opts, err := NewBuilder().
		SetURL(testPhoenixURL).
		SetTableName(testTable).
		Build()
	is.NoErr(err)

	var nilOpts *ConnectionOptions

	is.True(!opts.Equal(nil))
	is.True(nilOpts.Equal(nil))
}
