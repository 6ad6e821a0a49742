package render

import (
	"context"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/wcharczuk/go-chart/v2"
)

const weightAxis = "Weight (kg)"

// WeightChart builds the single-axis weight chart. With interpolation the daily
// line is drawn continuously and the real measurements are overlaid as markers.
func WeightChart(s *domain.WeightSeries, p domain.ChartProfile) chart.Chart {
	width, height := p.PixelSize()
	padBottom := height / 10

	line := s.Measured
	if s.Interpolated && s.Daily.Len() > 0 {
		line = s.Daily
	}

	first, last := line.Points[0].Date, line.Points[line.Len()-1].Date
	lo, hi, _ := s.Measured.Bounds()
	yMin, yMax := niceAxisBounds(lo, hi)
	xMin, xMax := dateRange(first, last)
	proj := projection{xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}

	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      width,
		Height:     height,
		DPI:        p.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 24, Right: 24, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:           "Date",
			Style:          axisStyle(chart.ColorBlack),
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks:          dateTicks(first, last),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           weightAxis,
			NameStyle:      axisStyle(chart.ColorBlack),
			Style:          axisStyle(chart.ColorBlack),
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          niceTicks(yMin, yMax, 6),
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    line.Name,
				Style:   lineStyle(colorWeight, false),
				XValues: line.Dates(),
				YValues: line.Values(),
			},
		},
	}

	if s.Interpolated {
		ch.Elements = []chart.Renderable{
			markersElement([]markerLayer{
				{points: s.Measured.Points, shape: domain.MarkerCircle, color: colorMarker, proj: proj},
			}),
			legendBelowElement([]legendEntry{
				{label: line.Name, color: colorWeight, line: true},
				{label: s.Measured.Name, color: colorMarker, marker: domain.MarkerCircle},
			}, height, padBottom),
		}
	}
	return ch
}

// RenderWeight encodes the weight chart as PNG.
func RenderWeight(ctx context.Context, s *domain.WeightSeries, p domain.ChartProfile) ([]byte, error) {
	return encodePNG(ctx, WeightChart(s, p))
}
