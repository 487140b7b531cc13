package dashboard

import (
	"sort"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

// balanceBand returns the fixed band an account balance falls in.
// Boundaries are inclusive at the lower edge: 100,000 is "100k+",
// 99,999 is "20k-100k", 0 is "0-20k", anything negative is "negative".
func balanceBand(balance float64) (key, title string) {
	switch {
	case balance >= 100000:
		return "100k+", "High Balance (>= $100K)"
	case balance >= 20000:
		return "20k-100k", "Growth Zone ($20K - $99K)"
	case balance >= 0:
		return "0-20k", "Starter (< $20K)"
	default:
		return "negative", "Negative Balance"
	}
}

// Groups partitions accounts by the given dimension. Each group carries a
// display title and the sum of member balances. Groups are fully
// recomputed on every call and sorted by title for deterministic output.
func (s *Service) Groups(accounts []models.Account, dimension interfaces.GroupDimension) []interfaces.AccountGroup {
	byKey := make(map[string]*interfaces.AccountGroup)

	for _, account := range accounts {
		var key, title string

		switch dimension {
		case interfaces.GroupByInstitution:
			key = account.InstitutionName
			if key == "" {
				key = "Unknown Institution"
			}
			title = key
		case interfaces.GroupByType:
			meta := account.AccountType.Meta()
			key = meta.Label
			title = meta.Label
		case interfaces.GroupByCurrency:
			key = account.CurrencyOrDefault(s.defaultCurrency)
			title = key
		default: // balance band
			key, title = balanceBand(account.Balance)
		}

		group, ok := byKey[key]
		if !ok {
			group = &interfaces.AccountGroup{Key: key, Title: title}
			byKey[key] = group
		}
		group.Accounts = append(group.Accounts, account)
		group.Total += account.Balance
	}

	groups := make([]interfaces.AccountGroup, 0, len(byKey))
	for _, group := range byKey {
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Title < groups[j].Title
	})

	return groups
}
