package interfaces

import (
	"time"

	"github.com/verifiedwealth/vw/internal/models"
)

// ValueMode selects which balances the dashboard derivations consider.
type ValueMode string

const (
	// ValueModeNet keeps every asset and liability segment.
	ValueModeNet ValueMode = "net"
	// ValueModeAssets excludes credit and loan segments.
	ValueModeAssets ValueMode = "assets"
)

// GroupDimension is the attribute accounts are partitioned by for display.
type GroupDimension string

const (
	GroupByInstitution GroupDimension = "institution"
	GroupByType        GroupDimension = "type"
	GroupByCurrency    GroupDimension = "currency"
	GroupByBalance     GroupDimension = "balance"
)

// AssetSegment is a derived, client-only slice of the asset breakdown.
// Values are non-negative after sign normalization; Percent is the share
// of the filtered segment total, rounded to the nearest integer.
type AssetSegment struct {
	Key     models.AccountType `json:"key"`
	Label   string             `json:"label"`
	Value   float64            `json:"value"`
	Color   string             `json:"color"`
	Icon    string             `json:"icon"`
	Percent int                `json:"percent"`
}

// AccountGroup is a derived, client-only partition of the account list.
type AccountGroup struct {
	Key      string           `json:"key"`
	Title    string           `json:"title"`
	Accounts []models.Account `json:"accounts"`
	Total    float64          `json:"total"`
}

// Totals are the derived aggregate figures for the dashboard header.
type Totals struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Net         float64 `json:"net"`
}

// ChangeStats is the period-over-period movement of a history series.
type ChangeStats struct {
	Delta    float64 `json:"delta"`
	Percent  float64 `json:"percent"`
	Positive bool    `json:"positive"`
}

// DashboardService derives presentation-ready aggregates from the current
// account list and net worth snapshot. All derivations are pure and
// synchronous: identical inputs always produce identical output.
type DashboardService interface {
	Segments(accounts []models.Account, netWorth *models.NetWorth, mode ValueMode) []AssetSegment
	LeadingSegment(segments []AssetSegment) *AssetSegment
	Totals(accounts []models.Account, netWorth *models.NetWorth) Totals
	Change(history []models.NetWorthPoint, mode ValueMode) *ChangeStats
	Groups(accounts []models.Account, dimension GroupDimension) []AccountGroup
	LastSynced(accounts []models.Account) time.Time
	RenderBreakdownChart(segments []AssetSegment, mode ValueMode) ([]byte, error)
}
