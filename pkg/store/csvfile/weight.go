package csvfile

import (
	"context"

	"github.com/de-tools/trackplot/pkg/models/domain"
)

// LoadWeight reads a weight history CSV. Both date and weight_kg are required.
func LoadWeight(ctx context.Context, path string) (*domain.WeightTable, error) {
	f, err := readFrame(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := f.require(path, ColDate, ColWeightKg); err != nil {
		return nil, err
	}

	dates := f.records(ColDate)
	weights := f.records(ColWeightKg)

	table := &domain.WeightTable{
		Path: path,
		Rows: make([]domain.WeightRow, len(dates)),
	}
	for i := range dates {
		table.Rows[i] = domain.WeightRow{
			Row:      i + 1,
			Date:     dates[i],
			WeightKg: weights[i],
		}
	}
	return table, nil
}
