package csvfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"
)

const (
	ColDate     = "date"
	ColKcal     = "kcal"
	ColProtein  = "protein"
	ColFiber    = "fiber"
	ColWeightKg = "weight_kg"
)

// frame wraps a loaded table with a lookup from trimmed header to gota column name.
type frame struct {
	df      dataframe.DataFrame
	columns map[string]string
}

func (f frame) has(name string) bool {
	_, ok := f.columns[name]
	return ok
}

func (f frame) records(name string) []string {
	col, ok := f.columns[name]
	if !ok {
		return make([]string, f.df.Nrow())
	}
	values := f.df.Col(col).Records()
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values
}

func (f frame) require(path string, names ...string) error {
	var missing []string
	for _, name := range names {
		if !f.has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s in %s (expected columns: %s)",
			domain.ErrMissingColumn, strings.Join(missing, ", "), path, strings.Join(names, ", "))
	}
	return nil
}

func readFrame(ctx context.Context, path string) (frame, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return frame{}, fmt.Errorf("%w: %s", domain.ErrMissingFile, path)
		}
		return frame{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return frame{}, fmt.Errorf("%w: %s is a directory", domain.ErrMissingFile, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return frame{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if dataLines(raw) == 0 {
		return frame{}, fmt.Errorf("%w: CSV %s is empty", domain.ErrEmptyData, path)
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return frame{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformed, path, df.Err)
	}
	if df.Nrow() == 0 {
		return frame{}, fmt.Errorf("%w: CSV %s is empty", domain.ErrEmptyData, path)
	}

	columns := make(map[string]string, df.Ncol())
	for _, name := range df.Names() {
		columns[strings.ToLower(strings.TrimSpace(name))] = name
	}

	logger.Debug().
		Str("path", path).
		Int("rows", df.Nrow()).
		Strs("columns", df.Names()).
		Msg("csv loaded")

	return frame{df: df, columns: columns}, nil
}

// dataLines counts the non-blank lines after the header.
func dataLines(raw []byte) int {
	n := 0
	for _, line := range bytes.Split(raw, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return n - 1
}
