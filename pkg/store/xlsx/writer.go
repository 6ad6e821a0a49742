package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	SheetFood     = "food"
	SheetMeasured = "measured"
	SheetDaily    = "daily"

	defaultSheet = "Sheet1"
)

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

// WriteFood exports the plotted (masked) food rows.
func WriteFood(ctx context.Context, path string, s *domain.FoodSeries) error {
	sh := sheet{name: SheetFood, header: []interface{}{"date", "kcal", "protein"}}
	if s.HasFiber {
		sh.header = append(sh.header, "fiber")
	}
	for _, r := range s.Records {
		row := []interface{}{r.Date.Format(domain.DateLayout), r.Kcal, r.Protein}
		if s.HasFiber {
			row = append(row, r.Fiber)
		}
		sh.rows = append(sh.rows, row)
	}
	return save(ctx, path, sh)
}

// WriteWeight exports the measurements and, when present, the interpolated daily series.
func WriteWeight(ctx context.Context, path string, s *domain.WeightSeries) error {
	sheets := []sheet{seriesSheet(SheetMeasured, s.Measured)}
	if s.Interpolated {
		sheets = append(sheets, seriesSheet(SheetDaily, s.Daily))
	}
	return save(ctx, path, sheets...)
}

func seriesSheet(name string, s domain.Series) sheet {
	sh := sheet{name: name, header: []interface{}{"date", "weight_kg"}}
	for _, p := range s.Points {
		sh.rows = append(sh.rows, []interface{}{p.Date.Format(domain.DateLayout), p.Value})
	}
	return sh
}

func save(ctx context.Context, path string, sheets ...sheet) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sh.name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sh.name, err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", sh.name, err)
		}
		if err := writeRows(f, sh); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sh sheet) error {
	all := append([][]interface{}{sh.header}, sh.rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sh.name, cell, err)
		}
	}
	return nil
}
