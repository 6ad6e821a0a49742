package render

import (
	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// matplotlib "tab" palette
var (
	colorKcal    = drawing.ColorFromHex("d62728")
	colorProtein = drawing.ColorFromHex("1f77b4")
	colorFiber   = drawing.ColorFromHex("2ca02c")
	colorWeight  = drawing.ColorFromHex("1f77b4")
	colorMarker  = drawing.ColorFromHex("ff7f0e")
	colorGrid    = drawing.ColorFromHex("d9d9d9")
)

const (
	lineWidth      = 4.0
	markerSize     = 7
	bandAlpha      = 20 // ~8% opacity
	legendFontSize = 11.0
	axisFontSize   = 10.0
	titleFontSize  = 14.0
)

var dashed = []float64{12, 8}

func lineStyle(color drawing.Color, dash bool) chart.Style {
	st := chart.Style{
		StrokeColor: color,
		StrokeWidth: lineWidth,
	}
	if dash {
		st.StrokeDashArray = dashed
	}
	return st
}

func axisStyle(color drawing.Color) chart.Style {
	return chart.Style{
		FontColor: color,
		FontSize:  axisFontSize,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: colorGrid,
		StrokeWidth: 1,
	}
}

// legendEntry describes one swatch of the legend drawn below the plot.
type legendEntry struct {
	label  string
	color  drawing.Color
	line   bool
	dash   bool
	marker domain.MarkerShape
}
