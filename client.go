// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultHost is the default Relevia API host used when the endpoint is
	// composed from a project id.
	DefaultHost = "https://api.relevia.io"

	// DefaultTimeout is applied when Config.Timeout is unset or non-positive.
	DefaultTimeout = 10 * time.Second
)

// Config holds the construction inputs for a Client. It is resolved once by
// New and never consulted again; a Client is immutable after construction.
type Config struct {
	// APIKey authenticates every request via the x-api-key header. Required.
	APIKey string

	// ProjectID composes the canonical endpoint
	// https://api.relevia.io/api/v1/projects/<ProjectID>.
	// Ignored when BaseURL is set.
	ProjectID string

	// BaseURL, when set, is used verbatim as the endpoint root and takes
	// precedence over ProjectID.
	BaseURL string

	// Timeout bounds each request end to end. Values <= 0 fall back to
	// DefaultTimeout. Ignored when WithHTTPClient supplies a custom client.
	Timeout time.Duration
}

// Option customizes a Client beyond the Config knobs.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	transport  Transport
	logger     zerolog.Logger
}

// WithHTTPClient substitutes the *http.Client used by the default transport.
// The supplied client is used as-is; its own Timeout governs requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTransport substitutes the entire Transport. Intended for tests and for
// callers that need custom dispatch behavior; when set, WithHTTPClient and
// Config.Timeout have no effect.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithLogger attaches a zerolog logger; the SDK logs each dispatched request
// at debug level. The default is a no-op logger, so the SDK is silent unless
// asked.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// Client is a typed gateway to the Relevia recommendation API. Construct it
// with New; the zero value is not usable.
//
// All methods validate their payload locally, then dispatch exactly one HTTP
// request. Safe for concurrent use.
type Client struct {
	endpoint  string
	transport Transport
	logger    zerolog.Logger
}

// New builds a Client from cfg. It performs no network I/O; it only resolves
// the endpoint, timeout, and credentials.
//
// Returns *ConfigurationError when the API key is missing or when neither
// BaseURL nor ProjectID yields a usable endpoint.
func New(cfg Config, opts ...Option) (*Client, error) {
	options := clientOptions{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	if cfg.APIKey == "" {
		return nil, newConfigurationError("api key is required")
	}

	endpoint, err := resolveEndpoint(cfg)
	if err != nil {
		return nil, err
	}

	transport := options.transport
	if transport == nil {
		httpClient := options.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: resolveTimeout(cfg.Timeout)}
		}
		transport = newHTTPTransport(endpoint, cfg.APIKey, httpClient, options.logger)
	}

	return &Client{
		endpoint:  endpoint,
		transport: transport,
		logger:    options.logger,
	}, nil
}

// Endpoint returns the resolved endpoint root, e.g.
// "https://api.relevia.io/api/v1/projects/p1".
func (c *Client) Endpoint() string {
	return c.endpoint
}

// resolveEndpoint determines the endpoint root from the config.
// BaseURL wins over ProjectID; neither is a configuration error.
func resolveEndpoint(cfg Config) (string, error) {
	if cfg.BaseURL != "" {
		return cfg.BaseURL, nil
	}
	if cfg.ProjectID != "" {
		return fmt.Sprintf("%s/api/v1/projects/%s", DefaultHost, cfg.ProjectID), nil
	}
	return "", newConfigurationError("either base url or project id is required")
}

// resolveTimeout applies the default for unset or non-positive values.
func resolveTimeout(timeout time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return DefaultTimeout
}
