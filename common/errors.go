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

package common

import (
	"fmt"
)

// MissingFieldError indicates that a required field was not supplied
// before an options record was built.
type MissingFieldError struct {
	fieldName string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%q value must be set", e.fieldName)
}

func NewMissingFieldError(fieldName string) MissingFieldError {
	return MissingFieldError{fieldName: fieldName}
}

// UnresolvedDialectError indicates that no registered dialect recognizes
// the supplied connection URL.
type UnresolvedDialectError struct {
	url string
}

func (e UnresolvedDialectError) Error() string {
	return fmt.Sprintf("no dialect registered for URL %q", e.url)
}

func NewUnresolvedDialectError(url string) UnresolvedDialectError {
	return UnresolvedDialectError{url: url}
}

// UnknownDialectNameError indicates that a dialect was requested by name
// but no dialect with that name is registered.
type UnknownDialectNameError struct {
	name string
}

func (e UnknownDialectNameError) Error() string {
	return fmt.Sprintf("unknown dialect %q", e.name)
}

func NewUnknownDialectNameError(name string) UnknownDialectNameError {
	return UnknownDialectNameError{name: name}
}

type LessThanError struct {
	fieldName string
	value     int
}

func (e LessThanError) Error() string {
	return fmt.Sprintf("%q value must be less than or equal to %d", e.fieldName, e.value)
}

func NewLessThanError(fieldName string, value int) LessThanError {
	return LessThanError{fieldName: fieldName, value: value}
}

type GreaterThanError struct {
	fieldName string
	value     int
}

func (e GreaterThanError) Error() string {
	return fmt.Sprintf("%q value must be greater than or equal to %d", e.fieldName, e.value)
}

func NewGreaterThanError(fieldName string, value int) GreaterThanError {
	return GreaterThanError{fieldName: fieldName, value: value}
}
