package transform

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func foodProfile(mask bool) domain.ChartProfile {
	return domain.ChartProfile{Name: "test", Type: domain.ProfileTypeFood, MaskZeroDays: mask}
}

func TestBuildFoodSeries_AllRowsSortedByDate(t *testing.T) {
	// Given
	table := &domain.FoodTable{
		Path:     "food.csv",
		HasFiber: true,
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-03", Kcal: "2100", Protein: "130", Fiber: "35"},
			{Row: 2, Date: "2024-01-01", Kcal: "1900", Protein: "120", Fiber: "28"},
			{Row: 3, Date: "2024-01-02", Kcal: "2000", Protein: "125", Fiber: "30"},
		},
	}

	// When
	s, err := BuildFoodSeries(context.Background(), table, foodProfile(true))

	// Then
	require.NoError(t, err)
	assert.Equal(t, 3, s.Kcal.Len())
	assert.Equal(t, 3, s.Protein.Len())
	assert.Equal(t, 3, s.Fiber.Len())
	assert.Equal(t, []time.Time{day("2024-01-01"), day("2024-01-02"), day("2024-01-03")}, s.Kcal.Dates())
	assert.Equal(t, []float64{1900, 2000, 2100}, s.Kcal.Values())
	assert.Equal(t, []float64{28, 30, 35}, s.Fiber.Values())
	assert.Equal(t, day("2024-01-01"), s.First)
	assert.Equal(t, day("2024-01-03"), s.Last)
}

func TestBuildFoodSeries_ZeroDayIsMasked(t *testing.T) {
	table := &domain.FoodTable{
		Path: "food.csv",
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-01", Kcal: "1900", Protein: "120"},
			{Row: 2, Date: "2024-01-02", Kcal: "0", Protein: "0"},
			{Row: 3, Date: "2024-01-03", Kcal: "2000", Protein: "0"},
		},
	}

	s, err := BuildFoodSeries(context.Background(), table, foodProfile(true))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day("2024-01-01"), day("2024-01-03")}, s.Kcal.Dates())
	assert.Equal(t, []float64{1900, 2000}, s.Kcal.Values())
	assert.Equal(t, []float64{120, 0}, s.Protein.Values())
	assert.Equal(t, 0, s.Fiber.Len())
	// the x-range still covers the masked day
	assert.Equal(t, day("2024-01-03"), s.Last)
}

func TestBuildFoodSeries_FiberKeepsDayAlive(t *testing.T) {
	table := &domain.FoodTable{
		Path:     "food.csv",
		HasFiber: true,
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-01", Kcal: "0", Protein: "0", Fiber: "5"},
			{Row: 2, Date: "2024-01-02", Kcal: "0", Protein: "0", Fiber: "0"},
		},
	}

	s, err := BuildFoodSeries(context.Background(), table, foodProfile(true))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day("2024-01-01")}, s.Fiber.Dates())
}

func TestBuildFoodSeries_MaskingDisabled(t *testing.T) {
	table := &domain.FoodTable{
		Path: "food.csv",
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-01", Kcal: "0", Protein: "0"},
			{Row: 2, Date: "2024-01-02", Kcal: "1800", Protein: "100"},
		},
	}

	s, err := BuildFoodSeries(context.Background(), table, foodProfile(false))

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1800}, s.Kcal.Values())
}

func TestBuildFoodSeries_NonNumericBecomesZero(t *testing.T) {
	table := &domain.FoodTable{
		Path:     "food.csv",
		HasFiber: true,
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-01", Kcal: "n/a", Protein: "110", Fiber: ""},
			{Row: 2, Date: "2024-01-02", Kcal: "NaN", Protein: " 95.5 ", Fiber: "inf"},
		},
	}

	s, err := BuildFoodSeries(context.Background(), table, foodProfile(true))

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, s.Kcal.Values())
	assert.Equal(t, []float64{110, 95.5}, s.Protein.Values())
	assert.Equal(t, []float64{0, 0}, s.Fiber.Values())
}

func TestBuildFoodSeries_UnparseableDateAborts(t *testing.T) {
	table := &domain.FoodTable{
		Path: "food.csv",
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-01", Kcal: "1900", Protein: "120"},
			{Row: 2, Date: "01/02/2024", Kcal: "2000", Protein: "125"},
		},
	}

	_, err := BuildFoodSeries(context.Background(), table, foodProfile(true))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnparseableDate)
	assert.Contains(t, err.Error(), "01/02/2024")
	assert.Contains(t, err.Error(), "row 2")
}

func TestBuildFoodSeries_OnlyZeroDaysLeavesSeriesEmpty(t *testing.T) {
	table := &domain.FoodTable{
		Path: "food.csv",
		Rows: []domain.FoodRow{{Row: 1, Date: "2024-01-01", Kcal: "0", Protein: "0"}},
	}

	s, err := BuildFoodSeries(context.Background(), table, foodProfile(true))

	require.NoError(t, err)
	assert.Zero(t, s.Kcal.Len())
	assert.Zero(t, s.Protein.Len())
	assert.Equal(t, day("2024-01-01"), s.First)
	assert.Equal(t, day("2024-01-01"), s.Last)
}

func TestParseFood_DuplicateDatesKeepFileOrder(t *testing.T) {
	table := &domain.FoodTable{
		Rows: []domain.FoodRow{
			{Row: 1, Date: "2024-01-02", Kcal: "1", Protein: "1"},
			{Row: 2, Date: "2024-01-01", Kcal: "2", Protein: "2"},
			{Row: 3, Date: "2024-01-02", Kcal: "3", Protein: "3"},
		},
	}

	records, err := ParseFood(table)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2.0, records[0].Kcal)
	assert.Equal(t, 1.0, records[1].Kcal)
	assert.Equal(t, 3.0, records[2].Kcal)
}
