package transform

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	SeriesKcal    = "Energy (kcal)"
	SeriesProtein = "Protein (g)"
	SeriesFiber   = "Fiber (g)"
)

// ParseFood converts raw rows into records sorted by date. Any unparseable date aborts.
func ParseFood(table *domain.FoodTable) ([]domain.FoodRecord, error) {
	records := make([]domain.FoodRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at row %d of %s (expected YYYY-MM-DD)",
				domain.ErrUnparseableDate, row.Date, row.Row, table.Path)
		}
		rec := domain.FoodRecord{
			Date:    date,
			Kcal:    toNumberOrZero(row.Kcal),
			Protein: toNumberOrZero(row.Protein),
		}
		if table.HasFiber {
			rec.Fiber = toNumberOrZero(row.Fiber)
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

// MaskZeroDays drops the records where every tracked metric is zero.
func MaskZeroDays(records []domain.FoodRecord, hasFiber bool) []domain.FoodRecord {
	kept := make([]domain.FoodRecord, 0, len(records))
	for _, r := range records {
		if r.AllZero(hasFiber) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// BuildFoodSeries runs the food pipeline: strict date parse, coercion, optional zero-day masking.
func BuildFoodSeries(ctx context.Context, table *domain.FoodTable, profile domain.ChartProfile) (*domain.FoodSeries, error) {
	logger := zerolog.Ctx(ctx)

	records, err := ParseFood(table)
	if err != nil {
		return nil, err
	}

	plotted := records
	if profile.MaskZeroDays {
		plotted = MaskZeroDays(records, table.HasFiber)
		logger.Debug().
			Int("rows", len(records)).
			Int("masked", len(records)-len(plotted)).
			Msg("zero days masked")
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no rows in %s", domain.ErrEmptyData, table.Path)
	}
	if len(plotted) == 0 {
		logger.Warn().Str("path", table.Path).Msg("every day has zero intake, chart will be empty")
	}

	out := &domain.FoodSeries{
		Kcal:     domain.Series{Name: SeriesKcal},
		Protein:  domain.Series{Name: SeriesProtein},
		Fiber:    domain.Series{Name: SeriesFiber},
		HasFiber: table.HasFiber,
		Records:  plotted,
		First:    records[0].Date,
		Last:     records[len(records)-1].Date,
	}
	for _, r := range plotted {
		out.Kcal.Points = append(out.Kcal.Points, domain.Point{Date: r.Date, Value: r.Kcal})
		out.Protein.Points = append(out.Protein.Points, domain.Point{Date: r.Date, Value: r.Protein})
		if table.HasFiber {
			out.Fiber.Points = append(out.Fiber.Points, domain.Point{Date: r.Date, Value: r.Fiber})
		}
	}
	return out, nil
}
