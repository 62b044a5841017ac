// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// Test assertion helpers. Each encapsulates a common nil-check + comparison
// pattern; t.Helper() keeps failure messages pointed at the calling line.

// checkNoError fails the test if err is not nil
func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// checkStringEqual checks that got equals want
func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

// checkIntEqual checks that got equals want
func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

// checkValidationError checks that err is a *ValidationError whose message
// contains want
func checkValidationError(t *testing.T, err error, want string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if !strings.Contains(verr.Error(), want) {
		t.Errorf("error message %q should contain %q", verr.Error(), want)
	}
}

// checkConfigurationError checks that err is a *ConfigurationError
func checkConfigurationError(t *testing.T, err error) {
	t.Helper()
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError, got %T (%v)", err, err)
	}
}

// stubCall records one dispatched request seen by a stubTransport.
type stubCall struct {
	method string
	path   string
	body   interface{}
}

// stubTransport is an in-memory Transport that records calls and optionally
// fails or populates results. Safe for concurrent use.
type stubTransport struct {
	mu    sync.Mutex
	calls []stubCall

	// err, when set, is returned by every call.
	err error

	// respond, when set, populates the result out-param of Get/Post.
	respond func(result interface{})
}

func (s *stubTransport) record(call stubCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubTransport) Get(_ context.Context, path string, _ url.Values, result interface{}) error {
	s.record(stubCall{method: "GET", path: path})
	if s.err != nil {
		return s.err
	}
	if s.respond != nil {
		s.respond(result)
	}
	return nil
}

func (s *stubTransport) Post(_ context.Context, path string, body, result interface{}) error {
	s.record(stubCall{method: "POST", path: path, body: body})
	if s.err != nil {
		return s.err
	}
	if s.respond != nil {
		s.respond(result)
	}
	return nil
}

func (s *stubTransport) Delete(_ context.Context, path string) error {
	s.record(stubCall{method: "DELETE", path: path})
	return s.err
}

func (s *stubTransport) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubTransport) lastCall(t *testing.T) stubCall {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		t.Fatal("expected at least one dispatched call")
	}
	return s.calls[len(s.calls)-1]
}

// newStubClient builds a Client wired to a fresh stubTransport.
func newStubClient(t *testing.T) (*Client, *stubTransport) {
	t.Helper()
	stub := &stubTransport{}
	client, err := New(Config{APIKey: "test-key", ProjectID: "p1"}, WithTransport(stub))
	checkNoError(t, err)
	return client, stub
}
