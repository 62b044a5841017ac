// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import "context"

type interactionBatch struct {
	Interactions []Interaction `json:"interactions"`
}

// TrackInteraction records a single user-item event.
//
// Interactions of type "impression" must carry a Value of exactly 0; any
// other value fails validation before a request is issued.
func (c *Client) TrackInteraction(ctx context.Context, interaction Interaction) error {
	if err := validateInteraction(interaction); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/interactions", interaction, nil)
}

// BatchTrackInteractions records multiple user-item events in one request.
// Every interaction is validated before dispatch, including the impression
// invariant; the slice must be non-nil.
func (c *Client) BatchTrackInteractions(ctx context.Context, interactions []Interaction) error {
	if err := validateInteractionBatch(interactions); err != nil {
		return err
	}
	return c.transport.Post(ctx, "/interactions/bulk", interactionBatch{Interactions: interactions}, nil)
}
