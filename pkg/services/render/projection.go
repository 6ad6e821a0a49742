package render

import (
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// projection maps data coordinates onto the canvas box the same way go-chart
// translates series values, so custom elements line up with the plotted lines.
type projection struct {
	xMin, xMax float64
	yMin, yMax float64
}

func (p projection) x(cb chart.Box, t time.Time) int {
	return cb.Left + translate(chart.TimeToFloat64(t), p.xMin, p.xMax, cb.Width())
}

func (p projection) y(cb chart.Box, v float64) int {
	return cb.Bottom - translate(v, p.yMin, p.yMax, cb.Height())
}

func translate(v, min, max float64, size int) int {
	delta := max - min
	if delta == 0 {
		return 0
	}
	return int(math.Ceil(((v - min) / delta) * float64(size)))
}

// clampY keeps a pixel row inside the canvas box.
func clampY(cb chart.Box, y int) int {
	if y < cb.Top {
		return cb.Top
	}
	if y > cb.Bottom {
		return cb.Bottom
	}
	return y
}
