package render

import (
	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type bandLayer struct {
	band  domain.Band
	color drawing.Color
}

// bandSeries shades target bands across the plot width. It is a series rather
// than an element so go-chart draws it under the lines, translated with the
// range of the axis it is bound to.
type bandSeries struct {
	name   string
	yAxis  chart.YAxisType
	layers []bandLayer
}

func (bs bandSeries) GetName() string { return bs.name }
func (bs bandSeries) GetYAxis() chart.YAxisType { return bs.yAxis }
func (bs bandSeries) GetStyle() chart.Style { return chart.Style{} }
func (bs bandSeries) Validate() error { return nil }

func (bs bandSeries) Render(r chart.Renderer, cb chart.Box, _, yrange chart.Range, _ chart.Style) {
	for _, l := range bs.layers {
		top := clampY(cb, cb.Bottom-yrange.Translate(l.band.Max))
		bottom := clampY(cb, cb.Bottom-yrange.Translate(l.band.Min))
		if bottom <= top {
			continue
		}
		r.SetStrokeDashArray(nil)
		r.SetStrokeWidth(0)
		r.SetStrokeColor(drawing.ColorTransparent)
		r.SetFillColor(l.color.WithAlpha(bandAlpha))
		r.MoveTo(cb.Left, top)
		r.LineTo(cb.Right, top)
		r.LineTo(cb.Right, bottom)
		r.LineTo(cb.Left, bottom)
		r.Close()
		r.Fill()
	}
}

type markerLayer struct {
	points []domain.Point
	shape  domain.MarkerShape
	color  drawing.Color
	proj   projection
}

// markersElement draws a marker on every point of each layer.
func markersElement(layers []markerLayer) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, _ chart.Style) {
		for _, l := range layers {
			for _, p := range l.points {
				drawMarker(r, l.shape, l.color, l.proj.x(cb, p.Date), l.proj.y(cb, p.Value))
			}
		}
	}
}

func drawMarker(r chart.Renderer, shape domain.MarkerShape, color drawing.Color, x, y int) {
	half := markerSize
	r.SetStrokeDashArray(nil)
	r.SetStrokeColor(color)
	r.SetFillColor(color)
	switch shape {
	case domain.MarkerCircle:
		r.SetStrokeWidth(1)
		r.Circle(float64(half), x, y)
		r.FillStroke()
	case domain.MarkerSquare:
		r.SetStrokeWidth(1)
		r.MoveTo(x-half, y-half)
		r.LineTo(x+half, y-half)
		r.LineTo(x+half, y+half)
		r.LineTo(x-half, y+half)
		r.Close()
		r.FillStroke()
	case domain.MarkerCross:
		r.SetStrokeWidth(3)
		r.MoveTo(x-half, y-half)
		r.LineTo(x+half, y+half)
		r.Stroke()
		r.MoveTo(x-half, y+half)
		r.LineTo(x+half, y-half)
		r.Stroke()
	}
}

// legendBelowElement lays the entries out on one centered row inside the bottom padding.
func legendBelowElement(entries []legendEntry, chartHeight, bottomPad int) chart.Renderable {
	const (
		swatch  = 48
		textGap = 10
		itemGap = 36
	)
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		r.SetFont(defaults.GetFont())
		r.SetFontSize(legendFontSize)
		r.SetFontColor(drawing.ColorBlack)

		widths := make([]int, len(entries))
		total := 0
		textHeight := 0
		for i, e := range entries {
			tb := r.MeasureText(e.label)
			widths[i] = swatch + textGap + tb.Width()
			total += widths[i]
			if tb.Height() > textHeight {
				textHeight = tb.Height()
			}
		}
		total += itemGap * (len(entries) - 1)

		x := cb.Left + (cb.Width()-total)/2
		baseline := chartHeight - bottomPad/2 + textHeight/2
		mid := baseline - textHeight/2
		for i, e := range entries {
			if e.line {
				r.SetStrokeColor(e.color)
				r.SetStrokeWidth(lineWidth)
				if e.dash {
					r.SetStrokeDashArray(dashed)
				} else {
					r.SetStrokeDashArray(nil)
				}
				r.MoveTo(x, mid)
				r.LineTo(x+swatch, mid)
				r.Stroke()
			}
			if e.marker != "" && e.marker != domain.MarkerNone {
				drawMarker(r, e.marker, e.color, x+swatch/2, mid)
			}
			r.SetFontColor(drawing.ColorBlack)
			r.Text(e.label, x+swatch+textGap, baseline)
			x += widths[i] + itemGap
		}
	}
}
