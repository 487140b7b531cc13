package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

func TestSegmentsFromSnapshotBreakdown(t *testing.T) {
	svc := NewService("USD", nil)

	netWorth := &models.NetWorth{
		Breakdown: &models.NetWorthBreakdown{
			Cash:        5000,
			Investments: 15000,
			Crypto:      0,
			Credit:      -2000, // signed on the wire, abs before use
			Loans:       -8000,
		},
	}

	segments := svc.Segments(nil, netWorth, interfaces.ValueModeNet)

	require.Len(t, segments, 4) // crypto skipped, non-positive
	assert.Equal(t, models.AccountTypeInvestment, segments[0].Key, "sorted descending by value")
	assert.Equal(t, float64(8000), segments[1].Value, "loans sign-normalized")
	assert.Equal(t, float64(2000), segments[3].Value, "credit sign-normalized")
}

func TestSegmentsFallbackToAccounts(t *testing.T) {
	svc := NewService("USD", nil)

	accounts := []models.Account{
		{AccountType: models.AccountTypeCash, Balance: 500},
		{AccountType: models.AccountTypeCash, Balance: 1500},
		{AccountType: models.AccountTypeCredit, Balance: -300},
		{AccountType: "unknown", Balance: 200},
	}

	segments := svc.Segments(accounts, nil, interfaces.ValueModeNet)

	require.Len(t, segments, 3)
	assert.Equal(t, models.AccountTypeCash, segments[0].Key)
	assert.Equal(t, float64(2000), segments[0].Value)

	found := map[models.AccountType]float64{}
	for _, s := range segments {
		found[s.Key] = s.Value
	}
	assert.Equal(t, float64(300), found[models.AccountTypeCredit], "credit summed then abs")
	assert.Equal(t, float64(200), found[models.AccountTypeOther], "unknown type mapped to other")
}

func TestSegmentsSnapshotAuthoritativeOverAccounts(t *testing.T) {
	svc := NewService("USD", nil)

	accounts := []models.Account{
		{AccountType: models.AccountTypeCrypto, Balance: 99999},
	}
	netWorth := &models.NetWorth{
		Breakdown: &models.NetWorthBreakdown{Cash: 100},
	}

	segments := svc.Segments(accounts, netWorth, interfaces.ValueModeNet)

	require.Len(t, segments, 1)
	assert.Equal(t, models.AccountTypeCash, segments[0].Key)
}

func TestSegmentsAssetsModeExcludesLiabilities(t *testing.T) {
	svc := NewService("USD", nil)

	netWorth := &models.NetWorth{
		Breakdown: &models.NetWorthBreakdown{
			Cash:        6000,
			Investments: 4000,
			Credit:      3000,
			Loans:       7000,
		},
	}

	segments := svc.Segments(nil, netWorth, interfaces.ValueModeAssets)

	require.Len(t, segments, 2)
	for _, segment := range segments {
		assert.False(t, segment.Key.IsLiability(), "assets mode must exclude credit and loan segments")
	}

	// Percentages computed over the filtered set, not the full set.
	assert.Equal(t, 60, segments[0].Percent)
	assert.Equal(t, 40, segments[1].Percent)
}

func TestSegmentPercentagesSumToRoughly100(t *testing.T) {
	svc := NewService("USD", nil)

	accounts := []models.Account{
		{AccountType: models.AccountTypeCash, Balance: 333},
		{AccountType: models.AccountTypeInvestment, Balance: 333},
		{AccountType: models.AccountTypeCrypto, Balance: 334},
	}

	segments := svc.Segments(accounts, nil, interfaces.ValueModeNet)
	require.NotEmpty(t, segments)

	sum := 0
	for _, segment := range segments {
		sum += segment.Percent
	}

	// Independent rounding allows drift up to the number of segments.
	assert.InDelta(t, 100, sum, float64(len(segments)))
}

func TestSegmentsEmptyInputs(t *testing.T) {
	svc := NewService("USD", nil)

	if got := svc.Segments(nil, nil, interfaces.ValueModeNet); got != nil {
		t.Fatalf("expected nil segments for empty inputs, got %d", len(got))
	}

	// All-non-positive balances must not divide by zero.
	accounts := []models.Account{
		{AccountType: models.AccountTypeCash, Balance: 0},
		{AccountType: models.AccountTypeInvestment, Balance: -50},
	}
	if got := svc.Segments(accounts, nil, interfaces.ValueModeNet); got != nil {
		t.Fatalf("expected nil segments for non-positive sums, got %d", len(got))
	}
}

func TestSegmentsIdempotent(t *testing.T) {
	svc := NewService("USD", nil)

	accounts := []models.Account{
		{AccountType: models.AccountTypeCash, Balance: 1200},
		{AccountType: models.AccountTypeLoan, Balance: -900},
	}

	first := svc.Segments(accounts, nil, interfaces.ValueModeNet)
	second := svc.Segments(accounts, nil, interfaces.ValueModeNet)

	assert.Equal(t, first, second, "pure derivation must not drift between calls")
}

func TestLeadingSegment(t *testing.T) {
	svc := NewService("USD", nil)

	if got := svc.LeadingSegment(nil); got != nil {
		t.Fatalf("expected nil leading segment for empty set, got %+v", got)
	}

	segments := []interfaces.AssetSegment{
		{Key: models.AccountTypeInvestment, Value: 900},
		{Key: models.AccountTypeCash, Value: 100},
	}
	leading := svc.LeadingSegment(segments)
	require.NotNil(t, leading)
	assert.Equal(t, models.AccountTypeInvestment, leading.Key)
}
