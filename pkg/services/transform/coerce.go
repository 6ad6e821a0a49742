package transform

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/trackplot/pkg/models/domain"
)

// toNumber coerces a cell to a float. Anything non-numeric, missing, NaN or infinite becomes ok=false.
func toNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func toNumberOrZero(raw string) float64 {
	v, _ := toNumber(raw)
	return v
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateLayout, strings.TrimSpace(raw))
}
