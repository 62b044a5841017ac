// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

package relevia

import "context"

// GetRecommendations fetches personalized recommendations for a user.
//
// The request is forwarded verbatim (filters and cursor included) and the
// response body is returned as parsed, without interpretation. Pagination:
// pass RecommendationResponse.NextCursor back via
// RecommendationRequest.Cursor to fetch the next page.
func (c *Client) GetRecommendations(ctx context.Context, req RecommendationRequest) (*RecommendationResponse, error) {
	if err := validateRecommendationRequest(req); err != nil {
		return nil, err
	}

	var resp RecommendationResponse
	if err := c.transport.Post(ctx, "/recommendations", req, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("user_id", req.UserID).
		Int("count", len(resp.Recommendations)).
		Msg("recommendations received")

	return &resp, nil
}
