// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import (
	"fmt"

	"github.com/relevia/relevia-go/internal/validation"
)

// Payload validation. Every rule here runs synchronously before the
// corresponding request is built, so a validation failure has no network
// side effects. Struct tag rules (required fields, positive limit) are
// checked via internal/validation; the rules the tag language cannot express
// (impression/value invariant, batch shape) are explicit.
//
// Batch rules: every element of every batch is validated, a batch slice must
// be non-nil, and delete-by-id batches must additionally be non-empty.

// structError converts an internal validation result into the SDK's public
// error type, optionally qualifying messages with a batch element prefix.
func structError(err *validation.Error, prefix string) *ValidationError {
	if err == nil {
		return nil
	}
	if prefix == "" {
		return newValidationError("%s", err.Error())
	}
	return newValidationError("%s: %s", prefix, err.Error())
}

func validateItem(item Item) *ValidationError {
	return structError(validation.ValidateStruct(&item), "")
}

func validateUser(user User) *ValidationError {
	return structError(validation.ValidateStruct(&user), "")
}

func validateInteraction(in Interaction) *ValidationError {
	return validateInteractionAt(in, "")
}

func validateInteractionAt(in Interaction, prefix string) *ValidationError {
	if err := structError(validation.ValidateStruct(&in), prefix); err != nil {
		return err
	}
	// Impressions represent passive exposure and carry no magnitude.
	if in.Type == InteractionTypeImpression && *in.Value != 0 {
		msg := fmt.Sprintf("value must be 0 for %q interactions, got %v",
			InteractionTypeImpression, *in.Value)
		if prefix != "" {
			return newValidationError("%s: %s", prefix, msg)
		}
		return newValidationError("%s", msg)
	}
	return nil
}

func validateRecommendationRequest(req RecommendationRequest) *ValidationError {
	return structError(validation.ValidateStruct(&req), "")
}

func validateItemBatch(items []Item) *ValidationError {
	if items == nil {
		return newValidationError("items must be a non-nil slice")
	}
	for i := range items {
		if err := structError(validation.ValidateStruct(&items[i]), fmt.Sprintf("items[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateUserBatch(users []User) *ValidationError {
	if users == nil {
		return newValidationError("users must be a non-nil slice")
	}
	for i := range users {
		if err := structError(validation.ValidateStruct(&users[i]), fmt.Sprintf("users[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateInteractionBatch(interactions []Interaction) *ValidationError {
	if interactions == nil {
		return newValidationError("interactions must be a non-nil slice")
	}
	for i := range interactions {
		if err := validateInteractionAt(interactions[i], fmt.Sprintf("interactions[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// validateIDBatch checks a delete-by-id batch: non-nil, non-empty, and every
// id non-empty. name is the wire key ("item_ids" or "user_ids").
func validateIDBatch(name string, ids []string) *ValidationError {
	if len(ids) == 0 {
		return newValidationError("%s must be a non-empty slice", name)
	}
	for i, id := range ids {
		if id == "" {
			return newValidationError("%s[%d] must be non-empty", name, i)
		}
	}
	return nil
}
