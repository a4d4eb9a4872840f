package charts

import (
	"errors"
	"io"
	"math"

	"github.com/vfg2006/startup-dashboard/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoBars = errors.New("chart has no bars")

const (
	barChartHeight   = 400
	barChartMinWidth = 800
	barWidth         = 60
	barSpacing       = 30
)

var barColor = drawing.ColorFromHex("1f77b4")

// RenderBarChart desenha as barras em SVG com o eixo Y sempre incluindo o zero
func RenderBarChart(w io.Writer, title string, bars []domain.Bar) error {
	if len(bars) == 0 {
		return ErrNoBars
	}

	values := make([]chart.Value, 0, len(bars))
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		values = append(values, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
				StrokeWidth: 1,
			},
		})
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if lo == hi {
		hi = lo + 1
	}

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Width:        barChartWidth(len(bars)),
		Height:       barChartHeight,
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: values,
	}

	return graph.Render(chart.SVG, w)
}

func barChartWidth(n int) int {
	width := 120 + n*(barWidth+barSpacing)
	if width < barChartMinWidth {
		return barChartMinWidth
	}
	return width
}
