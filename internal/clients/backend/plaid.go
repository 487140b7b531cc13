package backend

import (
	"context"
	"fmt"
)

type linkTokenResponse struct {
	LinkToken  string `json:"linkToken"`
	Expiration string `json:"expiration,omitempty"`
}

// CreateLinkToken requests an aggregator link token for starting the
// account-linking flow. The backend resolves the user from the bearer
// credential; the token itself is opaque to the client.
func (c *Client) CreateLinkToken(ctx context.Context) (string, error) {
	var resp linkTokenResponse
	if err := c.post(ctx, "/plaid/create-link-token", nil, &resp); err != nil {
		return "", err
	}
	if resp.LinkToken == "" {
		return "", fmt.Errorf("backend returned empty link token")
	}
	return resp.LinkToken, nil
}
