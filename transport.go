// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxErrorBodySize limits how much of a failed response body is read for
// error reporting. This prevents unbounded memory allocation when the
// service returns a large error response.
const maxErrorBodySize = 64 * 1024 // 64KB

// Transport is the HTTP collaborator behind a Client. The default
// implementation dispatches JSON requests with the x-api-key header over
// net/http; tests and callers with special needs may substitute their own
// via WithTransport.
//
// Contract: paths are service-relative ("/items", "/recommendations"); body
// is JSON-serialized when non-nil; a non-nil result is populated from the
// JSON response body. Implementations must not retry, and must surface
// failures (network errors, non-2xx statuses, timeouts) without translating
// them.
type Transport interface {
	// Get performs a GET request against path.
	Get(ctx context.Context, path string, query url.Values, result interface{}) error

	// Post performs a POST request with a JSON body against path.
	Post(ctx context.Context, path string, body, result interface{}) error

	// Delete performs a DELETE request against path.
	Delete(ctx context.Context, path string) error
}

// httpTransport is the default Transport. Each request carries the API key,
// a JSON content type, and a generated x-request-id for server-side
// correlation. Safe for concurrent use: every call builds its own request
// and all fields are read-only after construction.
type httpTransport struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   zerolog.Logger
}

func newHTTPTransport(endpoint, apiKey string, client *http.Client, logger zerolog.Logger) *httpTransport {
	return &httpTransport{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
		logger:   logger,
	}
}

func (t *httpTransport) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	reqURL := t.endpoint + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	return t.do(ctx, http.MethodGet, reqURL, nil, result)
}

func (t *httpTransport) Post(ctx context.Context, path string, body, result interface{}) error {
	return t.do(ctx, http.MethodPost, t.endpoint+path, body, result)
}

func (t *httpTransport) Delete(ctx context.Context, path string) error {
	return t.do(ctx, http.MethodDelete, t.endpoint+path, nil, nil)
}

// do issues a single request and decodes the response. Network and context
// errors from net/http propagate unmodified; non-2xx statuses become
// *StatusError carrying the capped response body.
func (t *httpTransport) do(ctx context.Context, method, reqURL string, body, result interface{}) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", t.apiKey)
	req.Header.Set("x-request-id", requestID)

	t.logger.Debug().
		Str("method", method).
		Str("url", reqURL).
		Str("request_id", requestID).
		Msg("dispatching request")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// readBodyForError reads a response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
// Uses io.LimitReader to prevent unbounded memory allocation.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
