// Package validator implements the Pre-check Validator (§4.10): pure,
// before-solving detection of obvious input conflicts.
package validator

import (
	"fmt"

	"github.com/paiban/erroster/pkg/model"
)

// Severity classifies a Finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error" // hard-flag: the solve should not proceed
)

// FindingType names the category of a pre-check Finding.
type FindingType string

const (
	FindingDuplicateRequest FindingType = "duplicate_request"
	FindingDayOverbooked    FindingType = "day_overbooked"
	FindingWeekendOffSpike  FindingType = "weekend_off_spike"
	FindingFixSpike         FindingType = "fix_spike"
	FindingExcessiveLeave   FindingType = "excessive_leave"
)

// Finding is a single pre-check result.
type Finding struct {
	Type       FindingType
	Severity   Severity
	NurseIndex int // -1 if not nurse-specific
	Day        int // 0 if not day-specific
	Message    string
}

// Report is the full set of pre-check findings.
type Report struct {
	Findings []Finding
}

// HasHardFlags reports whether any finding is severity error — the engine
// should refuse to solve in that case (§4.10 "hard-flag at >= 5").
func (r *Report) HasHardFlags() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Validate runs the Pre-check Validator over in. cal is the calendar
// already built for in.Year/in.Month/in.Days.
func Validate(in *model.SolveInput, cal *model.Calendar) *Report {
	report := &Report{}

	checkDuplicateRequests(in, report)
	checkDayUnavailability(in, report)
	checkWeekendOffSpikes(in, cal, report)
	checkFixSpikes(in, cal, report)
	checkExcessiveLeave(in, report)

	return report
}

// checkDuplicateRequests flags any (nurse, day) named by more than one
// request, e.g. an Off and a Leave on the same day.
func checkDuplicateRequests(in *model.SolveInput, report *Report) {
	seen := make(map[[2]int]model.RequestKind)
	for _, req := range in.Requests {
		key := [2]int{req.NurseIndex, req.Day}
		if prior, ok := seen[key]; ok {
			report.add(Finding{
				Type:       FindingDuplicateRequest,
				Severity:   SeverityError,
				NurseIndex: req.NurseIndex,
				Day:        req.Day,
				Message: fmt.Sprintf("nurse %d has conflicting requests on day %d (kind %d and %d)",
					req.NurseIndex, req.Day, prior, req.Kind),
			})
			continue
		}
		seen[key] = req.Kind
	}
}

// checkDayUnavailability counts Off+Leave requests per day and warns/hard-
// flags when too many nurses are unavailable (§4.10: warn >= 4, hard-flag >= 5).
func checkDayUnavailability(in *model.SolveInput, report *Report) {
	perDay := make(map[int]int)
	for _, req := range in.Requests {
		if req.Kind != model.Off && req.Kind != model.Leave {
			continue
		}
		perDay[req.Day]++
	}
	for day, count := range perDay {
		switch {
		case count >= 5:
			report.add(Finding{
				Type:     FindingDayOverbooked,
				Severity: SeverityError,
				Day:      day,
				Message:  fmt.Sprintf("day %d has %d nurses unavailable (off/leave); minimum staffing is likely unmeetable", day, count),
			})
		case count >= 4:
			report.add(Finding{
				Type:     FindingDayOverbooked,
				Severity: SeverityWarning,
				Day:      day,
				Message:  fmt.Sprintf("day %d has %d nurses unavailable (off/leave)", day, count),
			})
		}
	}
}

// checkWeekendOffSpikes flags weeks where more than ~2 weekend-off requests
// land, per nurse.
func checkWeekendOffSpikes(in *model.SolveInput, cal *model.Calendar, report *Report) {
	type key struct {
		nurse, week int
	}
	counts := make(map[key]int)
	for _, req := range in.Requests {
		if req.Kind != model.Off || !cal.IsWeekend(req.Day) {
			continue
		}
		k := key{req.NurseIndex, model.WeekOfMonth(req.Day)}
		counts[k]++
	}
	for k, c := range counts {
		if c > 2 {
			report.add(Finding{
				Type:       FindingWeekendOffSpike,
				Severity:   SeverityWarning,
				NurseIndex: k.nurse,
				Message:    fmt.Sprintf("nurse %d requested %d weekend off-days in week %d", k.nurse, c, k.week),
			})
		}
	}
}

// checkFixSpikes flags weeks where a nurse has more than ~3 fix requests.
func checkFixSpikes(in *model.SolveInput, cal *model.Calendar, report *Report) {
	type key struct {
		nurse, week int
	}
	counts := make(map[key]int)
	for _, fr := range in.FixRequests {
		for _, d := range fr.Days {
			k := key{fr.NurseIndex, model.WeekOfMonth(d)}
			counts[k]++
		}
	}
	for k, c := range counts {
		if c > 3 {
			report.add(Finding{
				Type:       FindingFixSpike,
				Severity:   SeverityWarning,
				NurseIndex: k.nurse,
				Message:    fmt.Sprintf("nurse %d has %d fix requests in week %d", k.nurse, c, k.week),
			})
		}
	}
}

// checkExcessiveLeave flags nurses whose leave/training requests exceed D/3.
func checkExcessiveLeave(in *model.SolveInput, report *Report) {
	counts := make(map[int]int)
	for _, req := range in.Requests {
		if req.Kind == model.Leave || req.Kind == model.Train {
			counts[req.NurseIndex]++
		}
	}
	limit := in.Days / 3
	for nurse, c := range counts {
		if c > limit {
			report.add(Finding{
				Type:       FindingExcessiveLeave,
				Severity:   SeverityWarning,
				NurseIndex: nurse,
				Message:    fmt.Sprintf("nurse %d has %d leave/training days, exceeding D/3=%d", nurse, c, limit),
			})
		}
	}
}
