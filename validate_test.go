// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import "testing"

func TestValidateItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		item    Item
		wantErr string // empty = valid
	}{
		{
			name: "valid with attributes",
			item: Item{ItemID: "sku-1", Attributes: map[string]interface{}{"title": "The Matrix"}},
		},
		{
			name: "valid minimal",
			item: Item{ItemID: "sku-1"},
		},
		{
			name:    "missing item_id",
			item:    Item{Attributes: map[string]interface{}{"title": "x"}},
			wantErr: "item_id is required",
		},
		{
			name:    "empty item_id",
			item:    Item{ItemID: ""},
			wantErr: "item_id is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateItem(tt.item)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			checkValidationError(t, err, tt.wantErr)
		})
	}
}

func TestValidateUser(t *testing.T) {
	t.Parallel()

	if err := validateUser(User{UserID: "u1"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	checkValidationError(t, validateUser(User{}), "user_id is required")
}

func TestValidateInteraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      Interaction
		wantErr string
	}{
		{
			name: "valid purchase",
			in:   Interaction{UserID: "u1", ItemID: "i1", Type: "purchase", Value: Float64(29.99)},
		},
		{
			name: "valid impression with zero value",
			in:   Interaction{UserID: "u1", ItemID: "i1", Type: "impression", Value: Float64(0)},
		},
		{
			name: "valid zero value for non-impression",
			in:   Interaction{UserID: "u1", ItemID: "i1", Type: "view", Value: Float64(0)},
		},
		{
			name:    "missing user_id",
			in:      Interaction{ItemID: "i1", Type: "view", Value: Float64(1)},
			wantErr: "user_id is required",
		},
		{
			name:    "missing item_id",
			in:      Interaction{UserID: "u1", Type: "view", Value: Float64(1)},
			wantErr: "item_id is required",
		},
		{
			name:    "missing type",
			in:      Interaction{UserID: "u1", ItemID: "i1", Value: Float64(1)},
			wantErr: "type is required",
		},
		{
			name:    "missing value",
			in:      Interaction{UserID: "u1", ItemID: "i1", Type: "view"},
			wantErr: "value is required",
		},
		{
			name:    "multiple missing fields named together",
			in:      Interaction{Type: "view", Value: Float64(1)},
			wantErr: "user_id is required; item_id is required",
		},
		{
			name:    "impression with non-zero value",
			in:      Interaction{UserID: "u1", ItemID: "i1", Type: "impression", Value: Float64(1)},
			wantErr: `value must be 0 for "impression" interactions`,
		},
		{
			name:    "impression with negative value",
			in:      Interaction{UserID: "u1", ItemID: "i1", Type: "impression", Value: Float64(-0.5)},
			wantErr: `value must be 0 for "impression" interactions`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateInteraction(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			checkValidationError(t, err, tt.wantErr)
		})
	}
}

func TestValidateRecommendationRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     RecommendationRequest
		wantErr string
	}{
		{
			name: "valid with limit and filters",
			req: RecommendationRequest{
				UserID:  "u1",
				Limit:   Int(10),
				Filters: map[string]interface{}{"category": "movies"},
			},
		},
		{
			name: "valid minimal",
			req:  RecommendationRequest{UserID: "u1"},
		},
		{
			name:    "missing user_id",
			req:     RecommendationRequest{Limit: Int(5)},
			wantErr: "user_id is required",
		},
		{
			name:    "zero limit",
			req:     RecommendationRequest{UserID: "u1", Limit: Int(0)},
			wantErr: "limit must be greater than 0",
		},
		{
			name:    "negative limit",
			req:     RecommendationRequest{UserID: "u1", Limit: Int(-3)},
			wantErr: "limit must be greater than 0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateRecommendationRequest(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			checkValidationError(t, err, tt.wantErr)
		})
	}
}

func TestValidateBatches(t *testing.T) {
	t.Parallel()

	t.Run("nil item batch", func(t *testing.T) {
		t.Parallel()
		checkValidationError(t, validateItemBatch(nil), "items must be a non-nil slice")
	})

	t.Run("empty item batch is allowed", func(t *testing.T) {
		t.Parallel()
		if err := validateItemBatch([]Item{}); err != nil {
			t.Fatalf("empty upsert batch should be valid, got %v", err)
		}
	})

	t.Run("invalid element is index qualified", func(t *testing.T) {
		t.Parallel()
		err := validateItemBatch([]Item{{ItemID: "a"}, {}, {ItemID: "c"}})
		checkValidationError(t, err, "items[1]: item_id is required")
	})

	t.Run("nil user batch", func(t *testing.T) {
		t.Parallel()
		checkValidationError(t, validateUserBatch(nil), "users must be a non-nil slice")
	})

	t.Run("interaction batch validates every element", func(t *testing.T) {
		t.Parallel()
		batch := []Interaction{
			{UserID: "u1", ItemID: "i1", Type: "view", Value: Float64(1)},
			{UserID: "u2", ItemID: "i2", Type: "impression", Value: Float64(2)},
		}
		err := validateInteractionBatch(batch)
		checkValidationError(t, err, "interactions[1]: value must be 0")
	})

	t.Run("nil interaction batch", func(t *testing.T) {
		t.Parallel()
		checkValidationError(t, validateInteractionBatch(nil), "interactions must be a non-nil slice")
	})
}

func TestValidateIDBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ids     []string
		wantErr string
	}{
		{name: "valid", ids: []string{"a", "b"}},
		{name: "nil slice", ids: nil, wantErr: "item_ids must be a non-empty slice"},
		{name: "empty slice", ids: []string{}, wantErr: "item_ids must be a non-empty slice"},
		{name: "empty element", ids: []string{"a", ""}, wantErr: "item_ids[1] must be non-empty"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateIDBatch("item_ids", tt.ids)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			checkValidationError(t, err, tt.wantErr)
		})
	}
}
