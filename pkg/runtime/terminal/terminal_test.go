package terminal

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cli := NewCLI(Options{Output: &out, Logs: &logs, Args: args})
	err := cli.Execute()
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{fmt.Errorf("x: %w", domain.ErrMissingFile), ExitMissingFile},
		{fmt.Errorf("x: %w", domain.ErrEmptyData), ExitEmptyData},
		{fmt.Errorf("x: %w", domain.ErrMissingColumn), ExitMissingColumn},
		{fmt.Errorf("x: %w", domain.ErrUnparseableDate), ExitUnparseableDate},
		{fmt.Errorf("x: %w", domain.ErrMalformed), ExitMalformed},
		{fmt.Errorf("boom"), ExitFailure},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}
}

func TestFoodPlot(t *testing.T) {
	// Given
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "food.csv",
		"date,kcal,protein,fiber\n2024-01-01,1900,120,30\n2024-01-02,0,0,0\n2024-01-03,2100,135,28\n")
	outPath := filepath.Join(dir, "charts", "food.png")

	// When
	out, err := run(t, "food", "plot", "--csv", csvPath, "--out", outPath)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+outPath+"\n", out)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1800, img.Bounds().Dx())
	assert.Equal(t, 900, img.Bounds().Dy())
}

func TestFoodPlot_EmptyCSV(t *testing.T) {
	// Given
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "food.csv", "")
	outPath := filepath.Join(dir, "food.png")

	// When
	out, err := run(t, "food", "plot", "--csv", csvPath, "--out", outPath)

	// Then
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyData)
	assert.Equal(t, ExitEmptyData, ExitCode(err))
	assert.Empty(t, out)
	assert.NoFileExists(t, outPath)
}

func TestFoodPlot_WrongProfileType(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "food.csv", "date,kcal,protein\n2024-01-01,1900,120\n")

	_, err := run(t, "food", "plot", "--csv", csvPath, "--out", filepath.Join(dir, "f.png"), "--profile", "plain")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight profile")
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestWeightPlot_MissingDateColumn(t *testing.T) {
	// Given
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "weight.csv", "day,weight_kg\n2024-01-01,80\n")
	outPath := filepath.Join(dir, "weight.png")

	// When
	_, err := run(t, "weight", "plot", "--csv", csvPath, "--out", outPath)

	// Then
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "date")
	assert.Equal(t, ExitMissingColumn, ExitCode(err))
	assert.NoFileExists(t, outPath)
}

func TestWeightPlot_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "weight", "plot", "--csv", filepath.Join(dir, "nope.csv"), "--out", filepath.Join(dir, "w.png"))

	assert.Equal(t, ExitMissingFile, ExitCode(err))
}

func TestWeightPlot_CustomProfile(t *testing.T) {
	// Given
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "weight.csv", "date,weight_kg\n2024-01-01,80.2\n2024-01-04,79.6\n")
	profiles := writeFile(t, dir, "profiles.ini", "[small]\ntype = weight\nwidth = 4\nheight = 3\ndpi = 100\n")
	outPath := filepath.Join(dir, "weight.png")

	// When
	out, err := run(t, "--profiles", profiles, "weight", "plot", "--csv", csvPath, "--out", outPath, "--profile", "small")

	// Then
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+outPath)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestWeightHistory(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "weight.csv", "date,weight_kg\n2024-01-01,80\n2024-01-03,79.5\n")

	out, err := run(t, "weight", "history", "--csv", csvPath, "--format", "plain")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-03 : 79.5 kg")
	assert.Contains(t, out, "Last change: -0.50 kg")
}

func TestFoodHistory_Table(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "food.csv",
		"date,kcal,protein\n2024-01-01,2000,120\n2024-01-02,2000,120\n2024-01-03,0,0\n")

	out, err := run(t, "food", "history", "--csv", csvPath)

	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-01 -> 2024-01-02")
	assert.Contains(t, out, "Days skipped: 1")
}

func TestHistory_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "weight.csv", "date,weight_kg\n2024-01-01,80\n")

	_, err := run(t, "weight", "history", "--csv", csvPath, "--format", "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "weight.csv", "date,weight_kg\n2024-01-01,80\n2024-01-03,79\n")
	outPath := filepath.Join(dir, "weight.xlsx")

	out, err := run(t, "export", "--kind", "weight", "--csv", csvPath, "--out", outPath)

	require.NoError(t, err)
	assert.Equal(t, "Wrote "+outPath+"\n", out)
	assert.FileExists(t, outPath)
}

func TestExport_UnknownKind(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "export", "--kind", "sleep", "--out", filepath.Join(dir, "x.xlsx"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported kind")
}

func TestProfiles(t *testing.T) {
	out, err := run(t, "profiles")

	require.NoError(t, err)
	for _, name := range []string{"targets", "history", "interpolated", "plain"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "kcal 0-2500")
}

func TestFoodPlot_UnparseableDateNamesDataRow(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "food.csv", "date,kcal,protein\n\n2024-01-01,1900,120\n\nyesterday,2000,125\n")
	outPath := filepath.Join(dir, "food.png")

	_, err := run(t, "food", "plot", "--csv", csvPath, "--out", outPath)

	require.Error(t, err)
	assert.Equal(t, ExitUnparseableDate, ExitCode(err))
	assert.Contains(t, err.Error(), `"yesterday" at row 2`)
	assert.NoFileExists(t, outPath)
}

func TestFoodPlot_AllZeroDaysRendersEmptyChart(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "food.csv", "date,kcal,protein,fiber\n2024-01-01,0,0,0\n2024-01-02,0,0,0\n")
	outPath := filepath.Join(dir, "food.png")

	out, err := run(t, "food", "plot", "--csv", csvPath, "--out", outPath)

	require.NoError(t, err)
	assert.Equal(t, "Wrote "+outPath+"\n", out)
	assert.FileExists(t, outPath)
}
