package common

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// FormatMoney renders an amount in the given ISO currency, e.g. "$1,234.56".
// Unknown or empty currency codes fall back to USD.
func FormatMoney(amount float64, currency string) string {
	if money.GetCurrency(currency) == nil {
		currency = "USD"
	}
	cur := money.New(0, currency).Currency()
	minor := int64(math.Round(amount * math.Pow10(cur.Fraction)))
	return money.New(minor, currency).Display()
}

// FormatSignedMoney renders an amount with an explicit leading sign.
func FormatSignedMoney(amount float64, currency string) string {
	if amount >= 0 {
		return "+" + FormatMoney(amount, currency)
	}
	return FormatMoney(amount, currency)
}

// FormatSignedPct renders a percentage with an explicit leading sign.
func FormatSignedPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}
