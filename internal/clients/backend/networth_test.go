package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestHistoryPointNormalizationPrefersExplicitFields(t *testing.T) {
	p := historyPointWire{
		Date:        "2026-02-01",
		NetWorth:    fp(1000),
		Value:       fp(900),
		Assets:      fp(1500),
		Liabilities: fp(500),
	}

	got := p.normalize()

	assert.Equal(t, float64(1000), got.NetWorth, "net prefers explicit netWorth")
	assert.Equal(t, float64(1500), got.Assets, "assets prefers explicit assets")
	assert.Equal(t, float64(500), got.Liabilities)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestHistoryPointNormalizationValueFallback(t *testing.T) {
	p := historyPointWire{Date: "2026-02-01T10:00:00Z", Value: fp(750)}

	got := p.normalize()

	assert.Equal(t, float64(750), got.NetWorth)
	assert.Equal(t, float64(750), got.Assets)
	assert.Equal(t, float64(0), got.Liabilities)
}

func TestHistoryPointNormalizationDerivesNetFromAssets(t *testing.T) {
	p := historyPointWire{Assets: fp(2000), Liabilities: fp(600)}

	got := p.normalize()

	assert.Equal(t, float64(1400), got.NetWorth, "net falls back to assets minus liabilities")
	assert.Equal(t, float64(2000), got.Assets)
}

func TestHistoryPointNormalizationAssetsFallsBackToNetWorth(t *testing.T) {
	p := historyPointWire{NetWorth: fp(1234)}

	got := p.normalize()

	assert.Equal(t, float64(1234), got.Assets)
	assert.Equal(t, float64(1234), got.NetWorth)
}

func TestHistoryPointNormalizationEmpty(t *testing.T) {
	got := historyPointWire{Date: "not-a-date"}.normalize()

	assert.Equal(t, float64(0), got.NetWorth)
	assert.Equal(t, float64(0), got.Assets)
	assert.True(t, got.Date.IsZero())
}

func TestNetWorthWireNormalize(t *testing.T) {
	wire := netWorthWire{
		UserID:           "u1",
		TotalAssets:      5000,
		TotalLiabilities: 1000,
		NetWorth:         4000,
		History: []historyPointWire{
			{Date: "2026-01-01", NetWorth: fp(3800)},
			{Date: "2026-02-01", NetWorth: fp(4000)},
		},
	}

	nw := wire.normalize()

	assert.Equal(t, "u1", nw.UserID)
	assert.Len(t, nw.History, 2)
	assert.Equal(t, float64(3800), nw.History[0].NetWorth)
}
