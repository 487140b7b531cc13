package backend

import (
	"context"

	"github.com/verifiedwealth/vw/internal/models"
)

type trackEventBody struct {
	UserID     string         `json:"userId"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
}

// TrackEvent records a usage analytics event. Callers treat failures as
// non-fatal; the event carries no user data beyond what is passed in.
func (c *Client) TrackEvent(ctx context.Context, userID string, req models.TrackEventRequest) error {
	body := trackEventBody{
		UserID:     userID,
		Name:       req.Name,
		Properties: req.Properties,
	}
	return c.post(ctx, "/analytics/track", body, nil)
}
