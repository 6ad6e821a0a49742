package transform

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	SeriesMeasured = "Measured"
	SeriesDaily    = "Weight (kg)"
)

// ParseWeight converts raw rows into measurements sorted by date.
// Rows with an unparseable date or a non-numeric weight are dropped.
func ParseWeight(ctx context.Context, table *domain.WeightTable) ([]domain.WeightRecord, error) {
	logger := zerolog.Ctx(ctx)

	records := make([]domain.WeightRecord, 0, len(table.Rows))
	var badDates, badWeights int
	for _, row := range table.Rows {
		date, err := parseDate(row.Date)
		if err != nil {
			badDates++
			continue
		}
		w, ok := toNumber(row.WeightKg)
		if !ok {
			badWeights++
			continue
		}
		records = append(records, domain.WeightRecord{Date: date, WeightKg: w})
	}
	if badDates > 0 || badWeights > 0 {
		logger.Warn().
			Int("bad_dates", badDates).
			Int("bad_weights", badWeights).
			Str("path", table.Path).
			Msg("dropped unusable weight rows")
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no valid dates in %s", domain.ErrEmptyData, table.Path)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

// InterpolateDaily returns one point per calendar day from the first to the last
// measurement. Measured days keep their value (the last one when a date repeats);
// the gaps are filled linearly along elapsed time between the surrounding measurements.
// records must be sorted by date.
func InterpolateDaily(records []domain.WeightRecord) domain.Series {
	out := domain.Series{Name: SeriesDaily}
	if len(records) == 0 {
		return out
	}

	var known []domain.Point
	for _, r := range records {
		if n := len(known); n > 0 && known[n-1].Date.Equal(r.Date) {
			known[n-1].Value = r.WeightKg
			continue
		}
		known = append(known, domain.Point{Date: r.Date, Value: r.WeightKg})
	}

	first, last := known[0].Date, known[len(known)-1].Date
	next := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		for next < len(known) && known[next].Date.Before(day) {
			next++
		}
		if next < len(known) && known[next].Date.Equal(day) {
			out.Points = append(out.Points, known[next])
			continue
		}
		out.Points = append(out.Points, domain.Point{
			Date:  day,
			Value: lerp(known[next-1], known[next], day),
		})
	}
	return out
}

func lerp(a, b domain.Point, at time.Time) float64 {
	span := b.Date.Sub(a.Date).Seconds()
	if span <= 0 {
		return b.Value
	}
	frac := at.Sub(a.Date).Seconds() / span
	return a.Value + (b.Value-a.Value)*frac
}

// BuildWeightSeries runs the weight pipeline and, when the profile asks for it,
// the daily reindex with time interpolation.
func BuildWeightSeries(ctx context.Context, table *domain.WeightTable, profile domain.ChartProfile) (*domain.WeightSeries, error) {
	records, err := ParseWeight(ctx, table)
	if err != nil {
		return nil, err
	}

	out := &domain.WeightSeries{
		Measured:     domain.Series{Name: SeriesMeasured},
		Interpolated: profile.Interpolate,
	}
	for _, r := range records {
		out.Measured.Points = append(out.Measured.Points, domain.Point{Date: r.Date, Value: r.WeightKg})
	}
	if profile.Interpolate {
		out.Daily = InterpolateDaily(records)
		zerolog.Ctx(ctx).Debug().
			Int("measured", out.Measured.Len()).
			Int("daily", out.Daily.Len()).
			Msg("weight series interpolated")
	}
	return out, nil
}
