// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

// Package validation provides struct validation using go-playground/validator
// v10 for the SDK's wire payloads.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Field names taken from json tags, so messages match the wire contract
//     ("item_id is required", not "ItemID is required")
//   - Error translation to short human-readable messages
//   - Uses WithRequiredStructEnabled option (v11+ compatibility)
//
// Cross-field rules that the tag language cannot express (the impression/value
// invariant, batch shape rules) live with the payload definitions in the root
// package; this package only covers per-struct tag rules.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError represents a single field validation failure with structured
// information about the violated rule.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the wire (json tag) name of the field that failed validation.
func (e *FieldError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string {
	return e.tag
}

// Param returns the parameter of the validation tag (e.g. "0" for "gt=0").
func (e *FieldError) Param() string {
	return e.param
}

// Error returns a human-readable message for this field failure.
func (e *FieldError) Error() string {
	return e.message
}

// Error represents a collection of field validation failures for one struct.
type Error struct {
	fields []FieldError
}

// Fields returns the individual field failures.
func (e *Error) Fields() []FieldError {
	return e.fields
}

// Error implements the error interface, joining all field messages.
func (e *Error) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}

	messages := make([]string, len(e.fields))
	for i, fe := range e.fields {
		messages[i] = fe.message
	}

	return strings.Join(messages, "; ")
}

// Validator returns the singleton validator instance. The validator is
// initialized once and is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report wire names in messages: prefer the json tag over the Go
		// field name, falling back to the Go name for untagged fields.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})

	return validate
}

// ValidateStruct validates a struct against its validate tags.
// Returns nil if validation passes, or *Error listing every failed field.
func ValidateStruct(s interface{}) *Error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type (e.g. InvalidValidationError) - wrap it
		return &Error{
			fields: []FieldError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(fe),
		}
	}

	return &Error{fields: fields}
}

// errorMessageTemplates maps validation tags to message templates that take
// only the field name.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"datetime": "%s must be a valid date/time in RFC3339 format",
	"url":      "%s must be a valid URL",
}

// errorMessageWithParam maps validation tags to templates that include the
// tag parameter.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
