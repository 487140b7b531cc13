package dashboard

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/verifiedwealth/vw/internal/interfaces"
)

// RenderBreakdownChart renders the asset breakdown as a PNG donut chart.
// One slice per segment, colored with the segment's category color.
// Returns raw PNG bytes.
func (s *Service) RenderBreakdownChart(segments []interfaces.AssetSegment, mode interfaces.ValueMode) ([]byte, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("need at least 1 segment, got 0")
	}

	values := make([]chart.Value, len(segments))
	for i, segment := range segments {
		values[i] = chart.Value{
			Value: segment.Value,
			Label: fmt.Sprintf("%s %d%%", segment.Label, segment.Percent),
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(segment.Color),
			},
		}
	}

	title := "Net Worth Breakdown"
	if mode == interfaces.ValueModeAssets {
		title = "Asset Breakdown"
	}

	graph := chart.DonutChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render breakdown chart: %w", err)
	}

	return buf.Bytes(), nil
}
