// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import (
	"context"
	"net/url"
)

// Item catalog operations. Upserts are create-or-replace on the server side;
// the SDK forwards payloads unmodified beyond the bulk wrapping keys.

type itemBatch struct {
	Items []Item `json:"items"`
}

type itemIDBatch struct {
	ItemIDs []string `json:"item_ids"`
}

// UpsertItem creates or replaces a single item.
func (c *Client) UpsertItem(ctx context.Context, item Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/items", item, nil)
}

// BatchUpsertItems creates or replaces multiple items in one request.
// Every item is validated before dispatch; the slice must be non-nil.
func (c *Client) BatchUpsertItems(ctx context.Context, items []Item) error {
	if err := validateItemBatch(items); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/items/bulk", itemBatch{Items: items}, nil)
}

// DeleteItem removes a single item by id.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return newValidationError("item_id is required")
	}
	return c.transport.Delete(ctx, "/items/"+url.PathEscape(itemID))
}

// BatchDeleteItems removes multiple items by id in one request.
// The id slice must be non-empty.
func (c *Client) BatchDeleteItems(ctx context.Context, itemIDs []string) error {
	if err := validateIDBatch("item_ids", itemIDs); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/items/bulk-delete", itemIDBatch{ItemIDs: itemIDs}, nil)
}
