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
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/conduitio-labs/jdbc-conn/common"
)

// keyStructTag is a tag which contains a field's key.
const keyStructTag = "key"

var (
	// validate is a singleton instance of the validator.
	validate *validator.Validate
	once     sync.Once
)

// validateStruct initializes the validator once and validates the struct,
// collecting one typed error per failed field.
func validateStruct(data any) error {
	once.Do(func() {
		validate = validator.New()
	})

	var err error
	if validationErr := validate.Struct(data); validationErr != nil {
		var invalidValidationErr *validator.InvalidValidationError
		if errors.As(validationErr, &invalidValidationErr) {
			return fmt.Errorf("validate struct: %w", validationErr)
		}

		var validationErrs validator.ValidationErrors
		if !errors.As(validationErr, &validationErrs) {
			return nil
		}

		for _, fieldErr := range validationErrs {
			fieldName := getFieldKey(data, fieldErr.StructField())

			switch fieldErr.ActualTag() {
			case "required":
				err = multierr.Append(err, common.NewMissingFieldError(fieldName))
			case "gte":
				err = multierr.Append(err, common.NewGreaterThanError(fieldName, mustAtoi(fieldErr.Param())))
			case "lte":
				err = multierr.Append(err, common.NewLessThanError(fieldName, mustAtoi(fieldErr.Param())))
			}
		}
	}

	return err //nolint:wrapcheck // since we use multierr here, we don't want to wrap the error
}

// mustAtoi converts a validation tag parameter, known to be numeric, to
// an int.
func mustAtoi(param string) int {
	value, err := strconv.Atoi(param)
	if err != nil {
		return 0
	}

	return value
}

// getFieldKey returns a key ("key" tag) for the provided fieldName.
// If the "key" tag is not present, the function will return a fieldName.
func getFieldKey(data any, fieldName string) string {
	// if the data is not pointer or is nil, return a fieldName.
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return fieldName
	}

	structField, ok := val.Type().FieldByName(fieldName)
	if !ok {
		return fieldName
	}

	fieldKey := structField.Tag.Get(keyStructTag)
	if fieldKey == "" {
		return fieldName
	}

	return fieldKey
}
