package dashboard

import (
	"math"
	"sort"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

// fallbackOrder fixes the iteration order when summing accounts by
// category, keeping the derivation deterministic.
var fallbackOrder = []models.AccountType{
	models.AccountTypeCash,
	models.AccountTypeInvestment,
	models.AccountTypeCredit,
	models.AccountTypeLoan,
	models.AccountTypeCrypto,
	models.AccountTypeOther,
}

// Segments derives the asset-class breakdown. A snapshot breakdown is
// authoritative when present; otherwise category sums over the account
// list are used. Credit and loan magnitudes are sign-normalized with
// abs() on both paths. Percentages are computed over the filtered set
// only; a zero filtered total yields an empty result.
func (s *Service) Segments(accounts []models.Account, netWorth *models.NetWorth, mode interfaces.ValueMode) []interfaces.AssetSegment {
	var segments []interfaces.AssetSegment

	add := func(key models.AccountType, value float64) {
		if value <= 0 {
			return
		}
		meta := key.Meta()
		segments = append(segments, interfaces.AssetSegment{
			Key:   key,
			Label: meta.Label,
			Value: value,
			Color: meta.Color,
			Icon:  meta.Icon,
		})
	}

	if netWorth != nil && netWorth.Breakdown != nil {
		b := netWorth.Breakdown
		add(models.AccountTypeCash, b.Cash)
		add(models.AccountTypeInvestment, b.Investments)
		add(models.AccountTypeCrypto, b.Crypto)
		add(models.AccountTypeCredit, math.Abs(b.Credit))
		add(models.AccountTypeLoan, math.Abs(b.Loans))
	}

	if len(segments) == 0 && len(accounts) > 0 {
		sums := make(map[models.AccountType]float64)
		for _, account := range accounts {
			sums[account.AccountType.Normalize()] += account.Balance
		}
		for _, t := range fallbackOrder {
			value := sums[t]
			if t.IsLiability() {
				value = math.Abs(value)
			}
			add(t, value)
		}
	}

	filtered := segments[:0]
	for _, segment := range segments {
		if mode == interfaces.ValueModeAssets && segment.Key.IsLiability() {
			continue
		}
		filtered = append(filtered, segment)
	}

	var total float64
	for _, segment := range filtered {
		total += segment.Value
	}
	if total == 0 {
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Value > filtered[j].Value
	})

	for i := range filtered {
		filtered[i].Percent = int(math.Round(filtered[i].Value / total * 100))
	}

	return filtered
}

// LeadingSegment returns the largest segment, used as the summary
// caption's leading holding. Nil for an empty set.
func (s *Service) LeadingSegment(segments []interfaces.AssetSegment) *interfaces.AssetSegment {
	if len(segments) == 0 {
		return nil
	}
	leading := segments[0]
	return &leading
}
