package history

import (
	"fmt"

	"github.com/de-tools/trackplot/pkg/models/domain"
)

const lbPerKg = 2.20462

func kgToLb(kg float64) float64 {
	return kg * lbPerKg
}

// WeightReport lists every measurement in kg and lb plus the last change.
// records must be sorted by date.
func WeightReport(records []domain.WeightRecord) *domain.Report {
	report := &domain.Report{Title: "Weight history"}
	if len(records) == 0 {
		return report
	}
	report.Period = domain.NewTimePeriod(records[0].Date, records[len(records)-1].Date)

	lo, hi := records[0].WeightKg, records[0].WeightKg
	section := domain.ReportSection{Title: "Measurements"}
	for _, r := range records {
		if r.WeightKg < lo {
			lo = r.WeightKg
		}
		if r.WeightKg > hi {
			hi = r.WeightKg
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        r.Date.Format(domain.DateLayout),
			Value:       round2(r.WeightKg),
			Unit:        "kg",
			Description: fmt.Sprintf("%.2f lb", round2(kgToLb(r.WeightKg))),
		})
	}

	summary := map[string]interface{}{
		"Measurements": len(records),
		"Lowest (kg)":  round2(lo),
		"Highest (kg)": round2(hi),
	}
	if len(records) >= 2 {
		prev, last := records[len(records)-2], records[len(records)-1]
		delta := last.WeightKg - prev.WeightKg
		summary["Last change"] = fmt.Sprintf("%+.2f kg (%+.2f lb) (%s -> %s)",
			round2(delta), round2(kgToLb(delta)),
			prev.Date.Format(domain.DateLayout), last.Date.Format(domain.DateLayout))
	}
	section.Summary = summary
	report.Sections = append(report.Sections, section)
	return report
}
