package history

import (
	"fmt"
	"math"

	"github.com/de-tools/trackplot/pkg/models/domain"
)

const epsilon = 1e-9

func sameValue(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// foodGroup is a run of consecutive days logged with identical values.
type foodGroup struct {
	start, end domain.FoodRecord
}

func (g foodGroup) label() string {
	if g.start.Date.Equal(g.end.Date) {
		return g.start.Date.Format(domain.DateLayout)
	}
	return fmt.Sprintf("%s -> %s", g.start.Date.Format(domain.DateLayout), g.end.Date.Format(domain.DateLayout))
}

func (g foodGroup) days() int {
	return int(g.end.Date.Sub(g.start.Date).Hours()/24) + 1
}

func sameIntake(a, b domain.FoodRecord) bool {
	return sameValue(a.Kcal, b.Kcal) && sameValue(a.Protein, b.Protein) && sameValue(a.Fiber, b.Fiber)
}

// groupFood collapses consecutive calendar days with identical intake into one group.
// records must be sorted by date. Groups where everything is zero are dropped.
func groupFood(records []domain.FoodRecord, hasFiber bool) []foodGroup {
	var groups []foodGroup
	flush := func(g foodGroup) {
		if g.start.AllZero(hasFiber) {
			return
		}
		groups = append(groups, g)
	}

	var cur *foodGroup
	for _, r := range records {
		if cur != nil && r.Date.Equal(cur.end.Date.AddDate(0, 0, 1)) && sameIntake(r, cur.start) {
			cur.end = r
			continue
		}
		if cur != nil {
			flush(*cur)
		}
		cur = &foodGroup{start: r, end: r}
	}
	if cur != nil {
		flush(*cur)
	}
	return groups
}

func inBand(v float64, b domain.Band) bool {
	return v >= b.Min && v <= b.Max
}

// FoodReport summarises the intake history. records are all parsed rows, sorted by date.
func FoodReport(records []domain.FoodRecord, hasFiber bool, targets domain.Targets) *domain.Report {
	report := &domain.Report{Title: "Food history"}
	if len(records) == 0 {
		return report
	}
	report.Period = domain.NewTimePeriod(records[0].Date, records[len(records)-1].Date)

	var logged int
	var kcal, protein, fiber float64
	var kcalOK, proteinOK, fiberOK int
	for _, r := range records {
		if r.AllZero(hasFiber) {
			continue
		}
		logged++
		kcal += r.Kcal
		protein += r.Protein
		fiber += r.Fiber
		if inBand(r.Kcal, targets.Kcal) {
			kcalOK++
		}
		if inBand(r.Protein, targets.Protein) {
			proteinOK++
		}
		if hasFiber && inBand(r.Fiber, targets.Fiber) {
			fiberOK++
		}
	}

	summary := map[string]interface{}{
		"Days logged":  logged,
		"Days skipped": len(records) - logged,
	}
	if logged > 0 {
		n := float64(logged)
		summary["Average kcal"] = round2(kcal / n)
		summary["Average protein (g)"] = round2(protein / n)
		summary["Days in kcal target"] = fmt.Sprintf("%d/%d", kcalOK, logged)
		summary["Days in protein target"] = fmt.Sprintf("%d/%d", proteinOK, logged)
		if hasFiber {
			summary["Average fiber (g)"] = round2(fiber / n)
			summary["Days in fiber target"] = fmt.Sprintf("%d/%d", fiberOK, logged)
		}
	}

	section := domain.ReportSection{Title: "Daily intake", Summary: summary}
	for _, g := range groupFood(records, hasFiber) {
		desc := fmt.Sprintf("%.2f g prot", round2(g.start.Protein))
		if hasFiber {
			desc += fmt.Sprintf(" | %.2f g fiber", round2(g.start.Fiber))
		}
		if d := g.days(); d > 1 {
			desc += fmt.Sprintf(" (%d days)", d)
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        g.label(),
			Value:       round2(g.start.Kcal),
			Unit:        "kcal",
			Description: desc,
		})
	}
	report.Sections = append(report.Sections, section)
	return report
}
