package dashboard

import (
	"math"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

// Change derives period-over-period movement from a history series.
// Mode selects the asset or net series from the normalized points. Fewer
// than two finite points means no reportable change (nil).
func (s *Service) Change(history []models.NetWorthPoint, mode interfaces.ValueMode) *interfaces.ChangeStats {
	values := make([]float64, 0, len(history))
	for _, point := range history {
		v := point.NetWorth
		if mode == interfaces.ValueModeAssets {
			v = point.Assets
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}

	if len(values) < 2 {
		return nil
	}

	first := values[0]
	last := values[len(values)-1]
	delta := last - first

	var percent float64
	if first != 0 {
		percent = delta / math.Abs(first) * 100
	}

	return &interfaces.ChangeStats{
		Delta:    delta,
		Percent:  percent,
		Positive: delta >= 0,
	}
}
