package domain

import "time"

type Point struct {
	Date  time.Time
	Value float64
}

// Series is an ordered-by-date sequence of values for one metric.
type Series struct {
	Name   string
	Points []Point
}

func (s Series) Len() int { return len(s.Points) }

func (s Series) Dates() []time.Time {
	out := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Date
	}
	return out
}

func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// Bounds returns the min and max value. ok is false for an empty series.
func (s Series) Bounds() (lo, hi float64, ok bool) {
	for i, p := range s.Points {
		if i == 0 || p.Value < lo {
			lo = p.Value
		}
		if i == 0 || p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi, len(s.Points) > 0
}

// FoodSeries is the plottable food data after masking.
// First and Last span the whole history, masked days included.
type FoodSeries struct {
	Kcal     Series
	Protein  Series
	Fiber    Series
	HasFiber bool
	Records  []FoodRecord
	First    time.Time
	Last     time.Time
}

type WeightSeries struct {
	Measured     Series
	Daily        Series
	Interpolated bool
}
