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

package config

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/matryer/is"
	"go.uber.org/multierr"

	"github.com/conduitio-labs/jdbc-conn/common"
)

const (
	testURL   = "jdbc:phoenix:localhost:2181"
	testTable = "T1"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]string
		want Configuration
		err  error
	}{
		{
			name: "success_required_values",
			in: map[string]string{
				ConfigURL:   testURL,
				ConfigTable: testTable,
			},
			want: Configuration{
				URL:   testURL,
				Table: testTable,
			},
		},
		{
			name: "success_all_values",
			in: map[string]string{
				ConfigURL:                           testURL,
				ConfigTable:                         testTable,
				ConfigDriverName:                    "avatica",
				ConfigUsername:                      "username",
				ConfigPassword:                      "password",
				ConfigDialect:                       "phoenix",
				ConfigParallelism:                   "4",
				ConfigConnectionCheckTimeoutSeconds: "30",
				ConfigNamespaceMapping:              "true",
				ConfigMapSystemTables:               "true",
			},
			want: Configuration{
				URL:                           testURL,
				Table:                         testTable,
				DriverName:                    "avatica",
				Username:                      "username",
				Password:                      "password",
				Dialect:                       "phoenix",
				Parallelism:                   4,
				ConnectionCheckTimeoutSeconds: 30,
				NamespaceMapping:              true,
				MapSystemTables:               true,
			},
		},
		{
			name: "success_trims_spaces",
			in: map[string]string{
				ConfigURL:   "   " + testURL + "   ",
				ConfigTable: testTable,
			},
			want: Configuration{
				URL:   testURL,
				Table: testTable,
			},
		},
		{
			name: "failure_required_url",
			in: map[string]string{
				ConfigTable: testTable,
			},
			err: fmt.Errorf("validate configuration: %w", common.NewMissingFieldError(ConfigURL)),
		},
		{
			name: "failure_required_table",
			in: map[string]string{
				ConfigURL: testURL,
			},
			err: fmt.Errorf("validate configuration: %w", common.NewMissingFieldError(ConfigTable)),
		},
		{
			name: "failure_required_url_and_table",
			in:   map[string]string{},
			err: fmt.Errorf("validate configuration: %w",
				multierr.Combine(common.NewMissingFieldError(ConfigURL), common.NewMissingFieldError(ConfigTable))),
		},
		{
			name: "failure_invalid_parallelism",
			in: map[string]string{
				ConfigURL:         testURL,
				ConfigTable:       testTable,
				ConfigParallelism: "two",
			},
			err: fmt.Errorf(`parse "parallelism": strconv.Atoi: parsing "two": invalid syntax`),
		},
		{
			name: "failure_negative_parallelism",
			in: map[string]string{
				ConfigURL:         testURL,
				ConfigTable:       testTable,
				ConfigParallelism: "-1",
			},
			err: fmt.Errorf("validate configuration: %w", common.NewGreaterThanError(ConfigParallelism, 1)),
		},
		{
			name: "failure_negative_timeout",
			in: map[string]string{
				ConfigURL:                           testURL,
				ConfigTable:                         testTable,
				ConfigConnectionCheckTimeoutSeconds: "-5",
			},
			err: fmt.Errorf("validate configuration: %w",
				common.NewGreaterThanError(ConfigConnectionCheckTimeoutSeconds, 1)),
		},
		{
			name: "failure_invalid_namespace_mapping",
			in: map[string]string{
				ConfigURL:              testURL,
				ConfigTable:            testTable,
				ConfigNamespaceMapping: "yes",
			},
			err: fmt.Errorf(`parse "namespaceMapping": strconv.ParseBool: parsing "yes": invalid syntax`),
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if err != nil {
				if tt.err == nil {
					t.Errorf("unexpected error: %s", err.Error())

					return
				}

				if err.Error() != tt.err.Error() {
					t.Errorf("unexpected error, got: %s, want: %s", err.Error(), tt.err.Error())

					return
				}

				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got: %v, want: %v", got, tt.want)
			}
		})
	}
}

func TestValidateStruct_notAStruct(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	err := validateStruct("not a struct")
	is.True(err != nil)
	is.True(strings.HasPrefix(err.Error(), "validate struct:"))
}

func TestConfiguration_Options(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	cfg, err := Parse(map[string]string{
		ConfigURL:                           testURL,
		ConfigTable:                         testTable,
		ConfigUsername:                      "username",
		ConfigPassword:                      "password",
		ConfigParallelism:                   "2",
		ConfigConnectionCheckTimeoutSeconds: "15",
		ConfigNamespaceMapping:              "true",
	})
	is.NoErr(err)

	opts, err := cfg.Options(nil)
	is.NoErr(err)

	is.Equal(opts.URL(), testURL)
	is.Equal(opts.TableName(), testTable)
	is.Equal(opts.Dialect().Name(), "phoenix")
	is.Equal(opts.DriverName(), "avatica")
	is.Equal(opts.ConnectionCheckTimeoutSeconds(), 15)
	is.True(opts.NamespaceMappingEnabled())
	is.True(!opts.MapSystemTablesEnabled())

	username, ok := opts.Username()
	is.True(ok)
	is.Equal(username, "username")

	parallelism, ok := opts.Parallelism()
	is.True(ok)
	is.Equal(parallelism, 2)
}

func TestConfiguration_Options_defaults(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	cfg, err := Parse(map[string]string{
		ConfigURL:   testURL,
		ConfigTable: testTable,
	})
	is.NoErr(err)

	opts, err := cfg.Options(nil)
	is.NoErr(err)

	is.Equal(opts.ConnectionCheckTimeoutSeconds(), 60)
	is.True(!opts.NamespaceMappingEnabled())
	is.True(!opts.MapSystemTablesEnabled())
}

func TestConfiguration_Options_dialectByName(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	cfg, err := Parse(map[string]string{
		// the URL alone would resolve to phoenix
		ConfigURL:        testURL,
		ConfigTable:      testTable,
		ConfigDialect:    "postgres",
		ConfigDriverName: "pgx",
	})
	is.NoErr(err)

	opts, err := cfg.Options(nil)
	is.NoErr(err)
	is.Equal(opts.Dialect().Name(), "postgres")
}

func TestConfiguration_Options_unknownDialectName(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	cfg, err := Parse(map[string]string{
		ConfigURL:     testURL,
		ConfigTable:   testTable,
		ConfigDialect: "oracle",
	})
	is.NoErr(err)

	_, err = cfg.Options(nil)
	is.Equal(err, common.NewUnknownDialectNameError("oracle"))
}

func TestConfiguration_Options_unresolvedDialect(t *testing.T) {
	t.Parallel()

	is := is.New(t)

	cfg, err := Parse(map[string]string{
		ConfigURL:   "jdbc:derby:memory:db",
		ConfigTable: testTable,
	})
	is.NoErr(err)

	_, err = cfg.Options(nil)
	is.True(err != nil)
	is.Equal(err.Error(),
		fmt.Errorf("build connection options: %w", common.NewUnresolvedDialectError("jdbc:derby:memory:db")).Error())
}
