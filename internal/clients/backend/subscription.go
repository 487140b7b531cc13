package backend

import (
	"context"
	"fmt"

	"github.com/verifiedwealth/vw/internal/models"
)

// GetSubscription retrieves the user's current subscription.
func (c *Client) GetSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.get(ctx, fmt.Sprintf("/subscription/%s", userID), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

type upgradeRequest struct {
	UserID          string                  `json:"userId"`
	Tier            models.SubscriptionTier `json:"tier"`
	PaymentIntentID string                  `json:"paymentIntentId"`
}

// UpgradeSubscription moves the user to a paid tier.
func (c *Client) UpgradeSubscription(ctx context.Context, userID string, req models.UpgradeSubscriptionRequest) (*models.Subscription, error) {
	if req.Tier != models.TierPremium && req.Tier != models.TierPro {
		return nil, fmt.Errorf("cannot upgrade to tier %q", req.Tier)
	}

	body := upgradeRequest{
		UserID:          userID,
		Tier:            req.Tier,
		PaymentIntentID: req.PaymentIntentID,
	}

	var sub models.Subscription
	if err := c.post(ctx, "/subscription/upgrade", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DowngradeSubscription returns the user to the free tier.
func (c *Client) DowngradeSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	body := map[string]string{"userId": userID}

	var sub models.Subscription
	if err := c.post(ctx, "/subscription/downgrade", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
