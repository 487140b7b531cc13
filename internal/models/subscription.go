package models

import "time"

// SubscriptionTier is the product tier a user is subscribed to.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierPro     SubscriptionTier = "pro"
)

// Subscription describes a user's current subscription.
type Subscription struct {
	UserID        string           `json:"userId"`
	Tier          SubscriptionTier `json:"tier"`
	Status        string           `json:"status"` // active, canceled, expired
	StartedAt     time.Time        `json:"startedAt"`
	ExpiresAt     *time.Time       `json:"expiresAt,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
}
