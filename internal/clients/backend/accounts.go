package backend

import (
	"context"
	"fmt"

	"github.com/verifiedwealth/vw/internal/models"
)

type accountsResponse struct {
	Accounts []models.Account `json:"accounts"`
}

// ListAccounts retrieves all linked accounts for a user.
func (c *Client) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	var resp accountsResponse
	if err := c.get(ctx, fmt.Sprintf("/accounts/%s", userID), &resp); err != nil {
		return nil, err
	}
	return normalizeAccounts(resp.Accounts), nil
}

// LinkAccount exchanges an aggregator public token for a new linked account.
func (c *Client) LinkAccount(ctx context.Context, req models.LinkAccountRequest) (*models.Account, error) {
	var account models.Account
	if err := c.post(ctx, "/accounts/link", req, &account); err != nil {
		return nil, err
	}
	account.AccountType = account.AccountType.Normalize()
	return &account, nil
}

// RefreshAccounts asks the backend to re-sync balances from the aggregator.
func (c *Client) RefreshAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	var resp accountsResponse
	body := map[string]string{"userId": userID}
	if err := c.post(ctx, "/accounts/refresh", body, &resp); err != nil {
		return nil, err
	}
	return normalizeAccounts(resp.Accounts), nil
}

// normalizeAccounts maps unknown account types to "other" and guarantees
// a non-nil slice.
func normalizeAccounts(accounts []models.Account) []models.Account {
	if accounts == nil {
		return []models.Account{}
	}
	for i := range accounts {
		accounts[i].AccountType = accounts[i].AccountType.Normalize()
	}
	return accounts
}
