// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import "fmt"

// ConfigurationError reports that a Client could not be constructed from the
// supplied Config. It is returned by New before any network I/O.
type ConfigurationError struct {
	msg string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.msg
}

func newConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports that a payload violated a local validation rule.
// It is raised synchronously before any request is dispatched, so an
// operation that returns a ValidationError has had no network side effects.
//
// The message names the violated rule (missing field, impression/value
// conflict, nil or empty batch). Batch element failures are qualified with
// the offending index, e.g. "interactions[2]: value is required".
type ValidationError struct {
	msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// StatusError is returned by the default transport when the service responds
// with a non-2xx status. It preserves the raw response detail; the Client
// never wraps or reinterprets it.
type StatusError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the raw response body, capped at 64KB.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}
