package transform

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var interpolated = domain.ChartProfile{Name: "interpolated", Type: domain.ProfileTypeWeight, Interpolate: true}

func TestBuildWeightSeries_InterpolatesMissingDay(t *testing.T) {
	// Given
	table := &domain.WeightTable{
		Path: "weights.csv",
		Rows: []domain.WeightRow{
			{Row: 1, Date: "2024-03-01", WeightKg: "10.0"},
			{Row: 2, Date: "2024-03-03", WeightKg: "12.0"},
		},
	}

	// When
	s, err := BuildWeightSeries(context.Background(), table, interpolated)

	// Then
	require.NoError(t, err)
	assert.True(t, s.Interpolated)
	assert.Equal(t, 2, s.Measured.Len())
	assert.Equal(t, []float64{10, 12}, s.Measured.Values())
	require.Equal(t, 3, s.Daily.Len())
	assert.Equal(t, day("2024-03-02"), s.Daily.Points[1].Date)
	assert.InDelta(t, 11.0, s.Daily.Points[1].Value, 1e-9)
}

func TestInterpolateDaily_WeightedByElapsedTime(t *testing.T) {
	records := []domain.WeightRecord{
		{Date: day("2024-01-01"), WeightKg: 80},
		{Date: day("2024-01-05"), WeightKg: 84},
		{Date: day("2024-01-06"), WeightKg: 83},
	}

	s := InterpolateDaily(records)

	assert.Equal(t, []float64{80, 81, 82, 83, 84, 83}, s.Values())
	dates := s.Dates()
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 24*time.Hour, dates[i].Sub(dates[i-1]))
	}
}

func TestInterpolateDaily_CrossesMonthBoundary(t *testing.T) {
	records := []domain.WeightRecord{
		{Date: day("2024-02-28"), WeightKg: 70},
		{Date: day("2024-03-02"), WeightKg: 73},
	}

	s := InterpolateDaily(records)

	require.Equal(t, 4, s.Len())
	assert.Equal(t, day("2024-02-29"), s.Points[1].Date)
	assert.InDelta(t, 71.0, s.Points[1].Value, 1e-9)
	assert.InDelta(t, 72.0, s.Points[2].Value, 1e-9)
}

func TestInterpolateDaily_DuplicateDateLastWins(t *testing.T) {
	records := []domain.WeightRecord{
		{Date: day("2024-01-01"), WeightKg: 80},
		{Date: day("2024-01-01"), WeightKg: 81},
		{Date: day("2024-01-02"), WeightKg: 82},
	}

	s := InterpolateDaily(records)

	assert.Equal(t, []float64{81, 82}, s.Values())
}

func TestInterpolateDaily_SingleMeasurement(t *testing.T) {
	s := InterpolateDaily([]domain.WeightRecord{{Date: day("2024-01-01"), WeightKg: 80}})

	assert.Equal(t, []float64{80}, s.Values())
}

func TestBuildWeightSeries_DropsUnusableRows(t *testing.T) {
	table := &domain.WeightTable{
		Path: "weights.csv",
		Rows: []domain.WeightRow{
			{Row: 1, Date: "2024-01-03", WeightKg: "79"},
			{Row: 2, Date: "yesterday", WeightKg: "80"},
			{Row: 3, Date: "2024-01-01", WeightKg: "81"},
			{Row: 4, Date: "2024-01-02", WeightKg: "?"},
		},
	}

	s, err := BuildWeightSeries(context.Background(), table, interpolated)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day("2024-01-01"), day("2024-01-03")}, s.Measured.Dates())
	assert.Equal(t, []float64{81, 80, 79}, s.Daily.Values())
}

func TestBuildWeightSeries_NoValidDates(t *testing.T) {
	table := &domain.WeightTable{
		Path: "weights.csv",
		Rows: []domain.WeightRow{{Row: 1, Date: "soon", WeightKg: "80"}},
	}

	_, err := BuildWeightSeries(context.Background(), table, interpolated)

	assert.ErrorIs(t, err, domain.ErrEmptyData)
}

func TestBuildWeightSeries_PlainSkipsInterpolation(t *testing.T) {
	table := &domain.WeightTable{
		Rows: []domain.WeightRow{
			{Row: 1, Date: "2024-01-01", WeightKg: "80"},
			{Row: 2, Date: "2024-01-04", WeightKg: "81"},
		},
	}

	s, err := BuildWeightSeries(context.Background(), table, domain.ChartProfile{Type: domain.ProfileTypeWeight})

	require.NoError(t, err)
	assert.False(t, s.Interpolated)
	assert.Equal(t, 0, s.Daily.Len())
	assert.Equal(t, 2, s.Measured.Len())
}
