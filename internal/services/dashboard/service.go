// Package dashboard derives presentation-ready aggregates from the
// current account list and net worth snapshot: asset-class segments with
// percentage shares, aggregate totals, period-over-period change
// statistics, and account groupings. Every derivation is a pure function
// of its inputs: no hidden accumulator state, no I/O, no suspension.
package dashboard

import (
	"github.com/verifiedwealth/vw/internal/common"
	"github.com/verifiedwealth/vw/internal/interfaces"
)

// Service implements DashboardService.
type Service struct {
	defaultCurrency string
	logger          *common.Logger
}

// NewService creates a dashboard service. defaultCurrency labels accounts
// that carry no currency code ("USD" when empty).
func NewService(defaultCurrency string, logger *common.Logger) *Service {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// Ensure Service implements DashboardService
var _ interfaces.DashboardService = (*Service)(nil)
