package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/verifiedwealth/vw/internal/models"
)

// netWorthWire is the loose wire shape of a net worth snapshot. History
// points may carry any combination of netWorth/value/assets/liabilities;
// normalization into models.NetWorthPoint happens here, at the gateway
// boundary, so consumers never probe field shapes.
type netWorthWire struct {
	UserID           string                    `json:"userId"`
	TotalAssets      float64                   `json:"totalAssets"`
	TotalLiabilities float64                   `json:"totalLiabilities"`
	NetWorth         float64                   `json:"netWorth"`
	Breakdown        *models.NetWorthBreakdown `json:"breakdown"`
	CalculatedAt     time.Time                 `json:"calculatedAt"`
	History          []historyPointWire        `json:"history"`
}

type historyPointWire struct {
	Date        string   `json:"date"`
	NetWorth    *float64 `json:"netWorth"`
	Value       *float64 `json:"value"`
	Assets      *float64 `json:"assets"`
	Liabilities *float64 `json:"liabilities"`
}

// CachedNetWorth retrieves the last calculated snapshot without forcing
// recalculation. 404 means no snapshot exists yet (check IsNotFound).
func (c *Client) CachedNetWorth(ctx context.Context, userID string) (*models.NetWorth, error) {
	var wire netWorthWire
	if err := c.get(ctx, fmt.Sprintf("/net-worth/%s/cache", userID), &wire); err != nil {
		return nil, err
	}
	return wire.normalize(), nil
}

// CalculateNetWorth asks the backend to recalculate and return a fresh
// snapshot.
func (c *Client) CalculateNetWorth(ctx context.Context, userID string) (*models.NetWorth, error) {
	var wire netWorthWire
	if err := c.get(ctx, fmt.Sprintf("/net-worth/%s", userID), &wire); err != nil {
		return nil, err
	}
	return wire.normalize(), nil
}

func (w *netWorthWire) normalize() *models.NetWorth {
	nw := &models.NetWorth{
		UserID:           w.UserID,
		TotalAssets:      w.TotalAssets,
		TotalLiabilities: w.TotalLiabilities,
		NetWorth:         w.NetWorth,
		Breakdown:        w.Breakdown,
		CalculatedAt:     w.CalculatedAt,
	}
	for _, p := range w.History {
		nw.History = append(nw.History, p.normalize())
	}
	return nw
}

// normalize resolves a loose history point into the single normalized
// type. Preference order mirrors the dashboard's needs: the net series
// prefers an explicit netWorth, then a generic value, then assets minus
// liabilities; the asset series prefers assets, then value, then netWorth.
func (p historyPointWire) normalize() models.NetWorthPoint {
	var liabilities float64
	if p.Liabilities != nil {
		liabilities = *p.Liabilities
	}

	var assets float64
	switch {
	case p.Assets != nil:
		assets = *p.Assets
	case p.Value != nil:
		assets = *p.Value
	case p.NetWorth != nil:
		assets = *p.NetWorth
	}

	var net float64
	switch {
	case p.NetWorth != nil:
		net = *p.NetWorth
	case p.Value != nil:
		net = *p.Value
	default:
		var rawAssets float64
		if p.Assets != nil {
			rawAssets = *p.Assets
		}
		net = rawAssets - liabilities
	}

	return models.NetWorthPoint{
		Date:        parsePointDate(p.Date),
		NetWorth:    net,
		Assets:      assets,
		Liabilities: liabilities,
	}
}

// parsePointDate accepts RFC3339 timestamps or bare dates.
func parsePointDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
