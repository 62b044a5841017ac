// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

// Wire types for the Relevia API. All records are caller-owned: the SDK
// validates and serializes them per call but never retains or mutates them.
//
// Open-ended custom fields live in the designated Attributes/Context maps
// (string keys, scalar or array values) rather than alongside the named
// fields, so the wire contract stays closed under the type system.

// Item is a recommendable entity tracked by the service.
type Item struct {
	// ItemID uniquely identifies the item within the project. Required.
	ItemID string `json:"item_id" validate:"required"`

	// Attributes carries item metadata (title, category, price, tags, ...).
	Attributes map[string]interface{} `json:"attributes,omitempty"`

	// Available marks whether the item may be recommended. Optional;
	// the server default applies when nil.
	Available *bool `json:"available,omitempty"`

	// CreatedAt is an optional ISO-8601 timestamp, passed through verbatim.
	CreatedAt string `json:"created_at,omitempty"`
}

// User is an entity that receives recommendations.
type User struct {
	// UserID uniquely identifies the user within the project. Required.
	UserID string `json:"user_id" validate:"required"`

	// Attributes carries user metadata (country, plan, segments, ...).
	Attributes map[string]interface{} `json:"attributes,omitempty"`

	// CreatedAt is an optional ISO-8601 timestamp, passed through verbatim.
	CreatedAt string `json:"created_at,omitempty"`
}

// Interaction is a recorded user-item event with a type and numeric
// magnitude (rating, revenue, dwell count, ...).
//
// Value is a pointer so that an explicit zero stays distinguishable from an
// absent value: "impression" interactions are constrained to Value == 0,
// while a missing Value is a validation failure for every type.
type Interaction struct {
	// UserID identifies the interacting user. Required.
	UserID string `json:"user_id" validate:"required"`

	// ItemID identifies the target item. Required.
	ItemID string `json:"item_id" validate:"required"`

	// Type is a free-form event category, e.g. "view", "click", "purchase",
	// "impression". Required.
	Type string `json:"type" validate:"required"`

	// Value is the magnitude of the interaction. Required; must be exactly 0
	// when Type is "impression".
	Value *float64 `json:"value" validate:"required"`

	// Timestamp is an optional ISO-8601 timestamp, passed through verbatim.
	Timestamp string `json:"timestamp,omitempty"`

	// Context carries event metadata (device, placement, session, ...).
	Context map[string]interface{} `json:"context,omitempty"`
}

// InteractionTypeImpression is the interaction type representing passive
// exposure. Interactions of this type must carry a Value of exactly 0.
const InteractionTypeImpression = "impression"

// RecommendationRequest describes a personalized recommendation query.
// Filter fields are opaque to the SDK and forwarded verbatim.
type RecommendationRequest struct {
	// UserID identifies the user to recommend for. Required.
	UserID string `json:"user_id" validate:"required"`

	// Limit caps the number of returned recommendations. Optional; must be
	// positive when set.
	Limit *int `json:"limit,omitempty" validate:"omitempty,gt=0"`

	// Filters is an opaque server-side filter object.
	Filters map[string]interface{} `json:"filters,omitempty"`

	// FilterExpressions are opaque server-side filter expressions.
	FilterExpressions []string `json:"filter_expressions,omitempty"`

	// FilterVariables binds variables referenced by FilterExpressions.
	FilterVariables map[string]interface{} `json:"filter_variables,omitempty"`

	// Cursor is an opaque pagination token from a previous response.
	Cursor string `json:"cursor,omitempty"`
}

// RecommendedItem is an Item augmented with an optional relevance score.
type RecommendedItem struct {
	Item

	// Score is the model's relevance score for this recommendation.
	Score *float64 `json:"score,omitempty"`
}

// RecommendationResponse is the parsed body of a recommendation call. The
// SDK deserializes it without further interpretation.
type RecommendationResponse struct {
	// Recommendations is the ordered result sequence, best match first.
	Recommendations []RecommendedItem `json:"recommendations"`

	// RecommendationID identifies this recommendation set for feedback
	// attribution, when the server provides one.
	RecommendationID string `json:"recommendation_id,omitempty"`

	// NextCursor pages through further results via
	// RecommendationRequest.Cursor, when the server provides one.
	NextCursor string `json:"next_cursor,omitempty"`

	// TotalCount is the total number of matches, when the server provides it.
	TotalCount *int `json:"total_count,omitempty"`
}

// Bool returns a pointer to v, for use in optional fields like Item.Available.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for use in optional fields like
// RecommendationRequest.Limit.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v, for use in Interaction.Value.
func Float64(v float64) *float64 { return &v }
