// Package models defines data structures for the Verified Wealth client
package models

import "time"

// User represents the authenticated Verified Wealth user.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	AnnualIncome     float64   `json:"annualIncome,omitempty"`
	Country          string    `json:"country"`
	State            string    `json:"state"`
	City             string    `json:"city"`
	Alias            string    `json:"alias,omitempty"`
	Verified         bool      `json:"verified"`
	SubscriptionTier string    `json:"subscriptionTier"`
	CreatedAt        time.Time `json:"createdAt"`
}

// DisplayName returns the user's alias when set, otherwise first and last name.
func (u *User) DisplayName() string {
	if u.Alias != "" {
		return u.Alias
	}
	return u.FirstName + " " + u.LastName
}
