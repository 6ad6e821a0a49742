package csvfile

import (
	"context"

	"github.com/de-tools/trackplot/pkg/models/domain"
)

// LoadFood reads a food history CSV with columns date,kcal,protein and an optional fiber column.
func LoadFood(ctx context.Context, path string) (*domain.FoodTable, error) {
	f, err := readFrame(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := f.require(path, ColDate, ColKcal, ColProtein); err != nil {
		return nil, err
	}

	dates := f.records(ColDate)
	kcal := f.records(ColKcal)
	protein := f.records(ColProtein)
	fiber := f.records(ColFiber)

	table := &domain.FoodTable{
		Path:     path,
		HasFiber: f.has(ColFiber),
		Rows:     make([]domain.FoodRow, len(dates)),
	}
	for i := range dates {
		table.Rows[i] = domain.FoodRow{
			Row:     i + 1,
			Date:    dates[i],
			Kcal:    kcal[i],
			Protein: protein[i],
			Fiber:   fiber[i],
		}
	}
	return table, nil
}
