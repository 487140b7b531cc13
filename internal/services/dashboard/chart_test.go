package dashboard

import (
	"bytes"
	"testing"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

func TestRenderBreakdownChart(t *testing.T) {
	svc := NewService("USD", nil)

	segments := []interfaces.AssetSegment{
		{Key: models.AccountTypeInvestment, Label: "Investments", Value: 6000, Color: "3b82f6", Percent: 60},
		{Key: models.AccountTypeCash, Label: "Cash", Value: 4000, Color: "10b981", Percent: 40},
	}

	png, err := svc.RenderBreakdownChart(segments, interfaces.ValueModeNet)
	if err != nil {
		t.Fatalf("RenderBreakdownChart returned error: %v", err)
	}

	// PNG magic bytes
	if !bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("output does not look like a PNG (first bytes: %x)", png[:4])
	}
}

func TestRenderBreakdownChartEmpty(t *testing.T) {
	svc := NewService("USD", nil)

	if _, err := svc.RenderBreakdownChart(nil, interfaces.ValueModeNet); err == nil {
		t.Fatal("expected error for empty segment set")
	}
}
