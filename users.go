// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import (
	"context"
	"net/url"
)

type userBatch struct {
	Users []User `json:"users"`
}

type userIDBatch struct {
	UserIDs []string `json:"user_ids"`
}

// UpsertUser creates or replaces a single user.
func (c *Client) UpsertUser(ctx context.Context, user User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/users", user, nil)
}

// BatchUpsertUsers creates or replaces multiple users in one request.
// Every user is validated before dispatch; the slice must be non-nil.
func (c *Client) BatchUpsertUsers(ctx context.Context, users []User) error {
	if err := validateUserBatch(users); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/users/bulk", userBatch{Users: users}, nil)
}

// DeleteUser removes a single user by id.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return newValidationError("user_id is required")
	}
	return c.transport.Delete(ctx, "/users/"+url.PathEscape(userID))
}

// BatchDeleteUsers removes multiple users by id in one request.
// The id slice must be non-empty.
func (c *Client) BatchDeleteUsers(ctx context.Context, userIDs []string) error {
	if err := validateIDBatch("user_ids", userIDs); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/users/bulk-delete", userIDBatch{UserIDs: userIDs}, nil)
}
