package render

import (
	"context"
	"math"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	foodAxisKcal       = "Energy (kcal)"
	foodAxisMacro      = "Protein (g)"
	foodAxisMacroFiber = "Protein (g) / Fiber (g)"
)

// FoodChart builds the dual-axis intake chart: energy on the left axis,
// protein and fiber on the right one.
func FoodChart(s *domain.FoodSeries, p domain.ChartProfile) chart.Chart {
	width, height := p.PixelSize()
	padBottom := height / 8

	kLo, kHi, _ := s.Kcal.Bounds()
	var kcalBands []domain.Band
	if p.ShowBands {
		kcalBands = append(kcalBands, p.Targets.Kcal)
	}
	kMin, kMax := valueRange(p.KcalRange, kLo, kHi, kcalBands...)

	mLo, mHi, _ := s.Protein.Bounds()
	var macroBands []domain.Band
	if p.ShowBands {
		macroBands = append(macroBands, p.Targets.Protein)
	}
	macroName := foodAxisMacro
	if s.HasFiber {
		fLo, fHi, _ := s.Fiber.Bounds()
		mLo, mHi = math.Min(mLo, fLo), math.Max(mHi, fHi)
		if p.ShowBands {
			macroBands = append(macroBands, p.Targets.Fiber)
		}
		macroName = foodAxisMacroFiber
	}
	mMin, mMax := valueRange(p.MacroRange, mLo, mHi, macroBands...)

	xMin, xMax := dateRange(s.First, s.Last)
	right := projection{xMin: xMin, xMax: xMax, yMin: mMin, yMax: mMax}

	var series []chart.Series
	var markers []markerLayer
	addLine := func(m domain.Series, color drawing.Color, axis chart.YAxisType, dash bool, marker domain.MarkerShape) {
		if m.Len() == 0 {
			return
		}
		series = append(series, chart.TimeSeries{
			Name:    m.Name,
			Style:   lineStyle(color, dash),
			YAxis:   axis,
			XValues: m.Dates(),
			YValues: m.Values(),
		})
		if marker != "" {
			markers = append(markers, markerLayer{points: m.Points, shape: marker, color: color, proj: right})
		}
	}
	addLine(s.Kcal, colorKcal, chart.YAxisPrimary, false, "")
	addLine(s.Protein, colorProtein, chart.YAxisSecondary, true, domain.MarkerCircle)
	legend := []legendEntry{
		{label: s.Kcal.Name, color: colorKcal, line: true},
		{label: s.Protein.Name, color: colorProtein, line: true, dash: true, marker: domain.MarkerCircle},
	}
	if s.HasFiber {
		addLine(s.Fiber, colorFiber, chart.YAxisSecondary, true, p.FiberMarker)
		legend = append(legend, legendEntry{label: s.Fiber.Name, color: colorFiber, line: true, dash: true, marker: p.FiberMarker})
	}

	if p.ShowBands {
		macroLayers := []bandLayer{{band: p.Targets.Protein, color: colorProtein}}
		if s.HasFiber {
			macroLayers = append(macroLayers, bandLayer{band: p.Targets.Fiber, color: colorFiber})
		}
		bands := []chart.Series{
			bandSeries{name: "kcal target", yAxis: chart.YAxisPrimary, layers: []bandLayer{{band: p.Targets.Kcal, color: colorKcal}}},
			bandSeries{name: "macro targets", yAxis: chart.YAxisSecondary, layers: macroLayers},
		}
		series = append(bands, series...)
	}
	if len(series) == 0 {
		// every day was masked; go-chart still needs one series to draw the frame
		series = append(series, bandSeries{name: "empty"})
	}
	elements := []chart.Renderable{
		markersElement(markers),
		legendBelowElement(legend, height, padBottom),
	}

	return chart.Chart{
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
			Ticks:          dateTicks(s.First, s.Last),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           foodAxisKcal,
			NameStyle:      axisStyle(colorKcal),
			Style:          axisStyle(colorKcal),
			Range:          &chart.ContinuousRange{Min: kMin, Max: kMax},
			Ticks:          niceTicks(kMin, kMax, 6),
			GridMajorStyle: gridStyle(),
		},
		// No explicit ticks here: go-chart derives the secondary range from
		// the primary axis ticks whenever these are set.
		YAxisSecondary: chart.YAxis{
			Name:           macroName,
			NameStyle:      axisStyle(colorProtein),
			Style:          axisStyle(colorProtein),
			Range:          &chart.ContinuousRange{Min: mMin, Max: mMax},
			ValueFormatter: tickFormatter,
		},
		Series:   series,
		Elements: elements,
	}
}

// RenderFood encodes the food chart as PNG.
func RenderFood(ctx context.Context, s *domain.FoodSeries, p domain.ChartProfile) ([]byte, error) {
	return encodePNG(ctx, FoodChart(s, p))
}
