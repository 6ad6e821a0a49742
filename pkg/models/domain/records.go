package domain

import "time"

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

type FoodRecord struct {
	Date    time.Time
	Kcal    float64
	Protein float64
	Fiber   float64
}

// AllZero reports whether every tracked metric is exactly zero.
func (r FoodRecord) AllZero(hasFiber bool) bool {
	if r.Kcal != 0 || r.Protein != 0 {
		return false
	}
	return !hasFiber || r.Fiber == 0
}

type WeightRecord struct {
	Date     time.Time
	WeightKg float64
}

// FoodTable is a food CSV after loading, before any parsing.
type FoodTable struct {
	Path     string
	HasFiber bool
	Rows     []FoodRow
}

// FoodRow holds the raw trimmed cell values of one food CSV record.
// Row is the 1-based data row; blank lines are not counted.
type FoodRow struct {
	Row     int
	Date    string
	Kcal    string
	Protein string
	Fiber   string
}

type WeightTable struct {
	Path string
	Rows []WeightRow
}

type WeightRow struct {
	Row      int
	Date     string
	WeightKg string
}
