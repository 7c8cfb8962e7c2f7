package stats

import "github.com/paiban/erroster/pkg/model"

// Report bundles the post-solve fairness and coverage summaries returned
// alongside a materialized roster (§4.6, §4.1 reporting).
type Report struct {
	Fairness *FairnessReport `json:"fairness"`
	Coverage *CoverageReport `json:"coverage"`
}

// MinSlack returns the smallest per-day Slack() across the report, the
// tightest margin the solved roster held over its staffing minimums.
func (r *CoverageReport) MinSlack() int {
	if len(r.Days) == 0 {
		return 0
	}
	min := r.Days[0].Slack()
	for _, d := range r.Days[1:] {
		if s := d.Slack(); s < min {
			min = s
		}
	}
	return min
}

// DayCoverage reports how a solved roster's headcount compared against the
// minimum staffing requirement for one day.
type DayCoverage struct {
	Day            int `json:"day"`
	MorningCount   int `json:"morning_count"`
	MorningNeeded  int `json:"morning_needed"`
	EveningCount   int `json:"evening_count"`
	EveningNeeded  int `json:"evening_needed"`
	NightCount     int `json:"night_count"`
	NightNeeded    int `json:"night_needed"`
	OnCallCount    int `json:"on_call_count"`
}

// Slack reports the day's total headroom above the minimum requirement
// (negative would indicate an infeasible roster, which AnalyzeCoverage
// should never receive).
func (d DayCoverage) Slack() int {
	return (d.MorningCount - d.MorningNeeded) + (d.EveningCount - d.EveningNeeded) + (d.NightCount - d.NightNeeded)
}

// CoverageReport is the full-month staffing coverage summary.
type CoverageReport struct {
	Days []DayCoverage `json:"days"`
}

// AnalyzeCoverage walks a solved roster and reports per-day headcount
// against the resolved staffing requirement for that day (§4.1).
func AnalyzeCoverage(roster *model.Roster, cal *model.Calendar, overrides []model.StaffingOverride) *CoverageReport {
	report := &CoverageReport{Days: make([]DayCoverage, roster.Days)}

	for d := 1; d <= roster.Days; d++ {
		dc := DayCoverage{Day: d}
		dc.MorningNeeded = 3
		if cal.IsSpecial(d) {
			dc.MorningNeeded = 4
		}
		dc.EveningNeeded = resolveOverride(overrides, model.Evening, d, 2)
		dc.NightNeeded = resolveOverride(overrides, model.Night, d, 1)

		for n := range roster.NurseIDs {
			switch model.Status(roster.Get(n, d)) {
			case model.Morning:
				dc.MorningCount++
			case model.Evening:
				dc.EveningCount++
			case model.Night:
				dc.NightCount++
			case model.Double:
				dc.EveningCount++
				dc.NightCount++
			case model.OnCall:
				dc.OnCallCount++
			}
		}
		report.Days[d-1] = dc
	}
	return report
}

func resolveOverride(overrides []model.StaffingOverride, shift model.Status, d int, dflt int) int {
	best := dflt
	bestWidth := -1
	for _, o := range overrides {
		if o.Shift != shift || !o.Covers(d) {
			continue
		}
		if bestWidth == -1 || o.Width() < bestWidth {
			best = o.RequiredCount
			bestWidth = o.Width()
		}
	}
	return best
}
