package render

import (
	"fmt"
	"math"
	"time"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	// intake never goes negative; keep zero as the floor when the data allows it
	if min >= 0 && a < 0 {
		a = 0
	}
	return a, b
}

// niceTicks generates up to n tick marks over [min, max] using 1, 2, 2.5, 5 steps.
// The first and last ticks sit exactly on min and max: go-chart takes an axis
// range from its ticks, so anything shorter would clip the plot.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}

	ticks := []chart.Tick{{Value: min, Label: formatTick(min)}}
	for v := math.Ceil(min/bestStep) * bestStep; v < max-bestStep/2; v += bestStep {
		if v-min < bestStep/2 {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n {
			break
		}
	}
	return append(ticks, chart.Tick{Value: max, Label: formatTick(max)})
}

// tickFormatter labels the ticks go-chart generates on its own.
func tickFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return formatTick(f)
	}
	return ""
}

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case av >= 100 || av == math.Trunc(av):
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// valueRange resolves a forced range or derives a nice one from the data bounds,
// widened so that any band listed stays visible.
func valueRange(forced *domain.AxisRange, lo, hi float64, bands ...domain.Band) (float64, float64) {
	if forced != nil {
		return forced.Min, forced.Max
	}
	for _, b := range bands {
		lo = math.Min(lo, b.Min)
		hi = math.Max(hi, b.Max)
	}
	return niceAxisBounds(lo, hi)
}

// dateRange returns the x-range in go-chart time units. A single day is padded
// by half a day on each side so the range never collapses.
func dateRange(first, last time.Time) (float64, float64) {
	if !last.After(first) {
		first = first.Add(-12 * time.Hour)
		last = last.Add(12 * time.Hour)
	}
	return chart.TimeToFloat64(first), chart.TimeToFloat64(last)
}

// pickDayStep selects a readable whole-day tick step for a span.
func pickDayStep(span time.Duration) int {
	days := int(span.Hours() / 24)
	switch {
	case days <= 10:
		return 1
	case days <= 20:
		return 2
	case days <= 70:
		return 7
	case days <= 140:
		return 14
	case days <= 300:
		return 30
	case days <= 900:
		return 91
	default:
		return 365
	}
}

// dateTicks returns calendar-day ticks whose outermost values equal dateRange,
// so go-chart keeps the same x-range as the custom elements. A tick that would
// crowd the final date is dropped.
func dateTicks(first, last time.Time) []chart.Tick {
	xMin, xMax := dateRange(first, last)
	if !last.After(first) {
		return []chart.Tick{
			{Value: xMin},
			{Value: chart.TimeToFloat64(first), Label: first.Format(domain.DateLayout)},
			{Value: xMax},
		}
	}

	step := pickDayStep(last.Sub(first))
	ticks := []chart.Tick{}
	t := first
	for ; !t.After(last); t = t.AddDate(0, 0, step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format(domain.DateLayout)})
	}
	end := t.AddDate(0, 0, -step)
	if end.Before(last) {
		if len(ticks) > 1 && last.Sub(end) < time.Duration(step)*12*time.Hour {
			ticks = ticks[:len(ticks)-1]
		}
		ticks = append(ticks, chart.Tick{Value: xMax, Label: last.Format(domain.DateLayout)})
	}
	return ticks
}
