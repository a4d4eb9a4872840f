package charts

import (
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/vfg2006/startup-dashboard/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrAxisMismatch = errors.New("radar series does not match the axes")

// Escala fixa dos scores de concorrência
const (
	RadarScaleMax = 10.0

	radarWidth  = 640
	radarHeight = 560
	radarRadius = 200.0
	radarFill   = 26
)

// Anéis da grade, com rótulo; o anel externo fecha a escala
var radarRings = []float64{5, 7, 9, RadarScaleMax}

var (
	companyColor    = drawing.ColorFromHex("1f77b4")
	competitorColor = drawing.ColorFromHex("d62728")
	gridColor       = drawing.ColorFromHex("cccccc")
	labelColor      = drawing.ColorFromHex("333333")
)

// Point é uma coordenada em pixels no canvas do gráfico
type Point struct {
	X, Y float64
}

// AxisAngles distribui n eixos igualmente, a partir do topo e em sentido horário
func AxisAngles(n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return angles
}

// RadarPoints converte valores em vértices do polígono; o primeiro vértice é
// repetido no fim para fechar a forma
func RadarPoints(values []float64, cx, cy, radius, scaleMax float64) []Point {
	if len(values) == 0 {
		return nil
	}

	angles := AxisAngles(len(values))
	points := make([]Point, 0, len(values)+1)
	for i, v := range values {
		r := radius * v / scaleMax
		points = append(points, Point{
			X: cx + r*math.Sin(angles[i]),
			Y: cy - r*math.Cos(angles[i]),
		})
	}

	return append(points, points[0])
}

// RenderRadar desenha a série da empresa e, quando existir, a média dos concorrentes
func RenderRadar(w io.Writer, view *domain.CompetitiveLandscapeView) error {
	n := len(view.Axes)
	if n == 0 || len(view.CompanySeries.Values) != n {
		return ErrAxisMismatch
	}
	if view.CompetitorMean != nil && len(view.CompetitorMean.Values) != n {
		return ErrAxisMismatch
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r, err := chart.SVG(radarWidth, radarHeight)
	if err != nil {
		return err
	}
	r.SetFont(font)

	cx, cy := float64(radarWidth)/2, float64(radarHeight)/2+10

	drawGrid(r, n, cx, cy)
	drawAxisLabels(r, view.Axes, cx, cy)

	series := []domain.RadarSeries{view.CompanySeries}
	colors := []drawing.Color{companyColor}
	if view.CompetitorMean != nil {
		series = append(series, *view.CompetitorMean)
		colors = append(colors, competitorColor)
	}

	for i, s := range series {
		drawPolygon(r, RadarPoints(s.Values, cx, cy, radarRadius, RadarScaleMax), colors[i], colors[i].WithAlpha(radarFill))
	}
	drawLegend(r, series, colors)

	return r.Save(w)
}

func drawGrid(r chart.Renderer, n int, cx, cy float64) {
	ring := make([]float64, n)
	for _, level := range radarRings {
		for i := range ring {
			ring[i] = level
		}
		drawPolygon(r, RadarPoints(ring, cx, cy, radarRadius, RadarScaleMax), gridColor, drawing.ColorTransparent)

		if level < RadarScaleMax {
			r.SetFontColor(labelColor)
			r.SetFontSize(9)
			y := cy - radarRadius*level/RadarScaleMax
			r.Text(strconv.FormatFloat(level, 'f', -1, 64), int(cx)+4, int(y))
		}
	}

	for _, p := range RadarPoints(ring, cx, cy, radarRadius, RadarScaleMax)[:n] {
		r.ResetStyle()
		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(1)
		r.MoveTo(int(cx), int(cy))
		r.LineTo(int(p.X), int(p.Y))
		r.Stroke()
	}
}

func drawAxisLabels(r chart.Renderer, axes []string, cx, cy float64) {
	r.SetFontColor(labelColor)
	r.SetFontSize(12)

	for i, angle := range AxisAngles(len(axes)) {
		x := cx + (radarRadius+24)*math.Sin(angle)
		y := cy - (radarRadius+24)*math.Cos(angle)

		box := r.MeasureText(axes[i])
		r.Text(axes[i], int(x)-box.Width()/2, int(y)+box.Height()/2)
	}
}

func drawPolygon(r chart.Renderer, points []Point, stroke, fill drawing.Color) {
	r.ResetStyle()
	r.SetStrokeColor(stroke)
	r.SetFillColor(fill)
	r.SetStrokeWidth(2)

	r.MoveTo(int(points[0].X), int(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(int(p.X), int(p.Y))
	}
	r.Close()
	r.FillStroke()
}

func drawLegend(r chart.Renderer, series []domain.RadarSeries, colors []drawing.Color) {
	x, y := 16, 20
	for i, s := range series {
		r.ResetStyle()
		r.SetFillColor(colors[i].WithAlpha(radarFill))
		r.SetStrokeColor(colors[i])
		r.SetStrokeWidth(2)
		r.MoveTo(x, y-10)
		r.LineTo(x+14, y-10)
		r.LineTo(x+14, y)
		r.LineTo(x, y)
		r.Close()
		r.FillStroke()

		r.SetFontColor(labelColor)
		r.SetFontSize(11)
		r.Text(s.Label, x+20, y)
		y += 18
	}
}
