// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

// Package relevia is the official Go client for the Relevia recommendation
// service HTTP API.
//
// The client exposes typed operations to register items and users, record
// user-item interactions, and fetch personalized recommendations. Every
// operation validates its payload locally, then dispatches exactly one
// authenticated HTTP request; there is no caching, retrying, or background
// work inside the SDK.
//
// # Quick Start
//
//	client, err := relevia.New(relevia.Config{
//	    APIKey:    os.Getenv("RELEVIA_API_KEY"),
//	    ProjectID: "my-project",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	recs, err := client.GetRecommendations(ctx, relevia.RecommendationRequest{
//	    UserID: "u42",
//	    Limit:  relevia.Int(10),
//	})
//
// # Endpoint Resolution
//
// The service endpoint is resolved once at construction and is immutable
// afterward:
//
//   - Config.BaseURL, when set, is used verbatim and takes precedence.
//   - Otherwise Config.ProjectID composes the canonical endpoint
//     https://api.relevia.io/api/v1/projects/<ProjectID>.
//   - Neither set is a *ConfigurationError; no client is produced.
//
// # Error Model
//
// Three error categories reach callers:
//
//   - *ConfigurationError: construction-time, a usable endpoint or API key
//     could not be resolved.
//   - *ValidationError: a payload violated a local rule. Raised synchronously
//     before any network I/O, so a failed call has no partial side effects.
//   - Transport errors: connection failures and context errors propagate
//     unmodified from net/http; non-2xx responses surface as *StatusError
//     carrying the status code and response body.
//
// The SDK never wraps, retries, or reinterprets transport errors.
//
// # Thread Safety
//
// A Client is immutable after New and safe for concurrent use. Concurrent
// calls are independent and share only the read-only configuration and the
// underlying *http.Client, which handles connection pooling and keep-alive.
package relevia
