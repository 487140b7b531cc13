package dashboard

import (
	"time"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

// Totals derives the aggregate asset/liability/net figures. A snapshot is
// authoritative when present; without one, assets fall back to the sum of
// account balances, liabilities to zero (no source supplies them), and
// net to assets minus liabilities.
func (s *Service) Totals(accounts []models.Account, netWorth *models.NetWorth) interfaces.Totals {
	if netWorth != nil {
		liabilities := netWorth.TotalLiabilities
		if liabilities < 0 {
			liabilities = 0
		}
		return interfaces.Totals{
			Assets:      netWorth.TotalAssets,
			Liabilities: liabilities,
			Net:         netWorth.NetWorth,
		}
	}

	var assets float64
	for _, account := range accounts {
		assets += account.Balance
	}

	return interfaces.Totals{
		Assets:      assets,
		Liabilities: 0,
		Net:         assets,
	}
}

// LastSynced returns the most recent account sync timestamp, or the zero
// time when no account carries one.
func (s *Service) LastSynced(accounts []models.Account) time.Time {
	var latest time.Time
	for _, account := range accounts {
		if account.LastSynced.After(latest) {
			latest = account.LastSynced
		}
	}
	return latest
}
