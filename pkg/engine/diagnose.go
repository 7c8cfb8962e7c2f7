package engine

import "github.com/paiban/erroster/pkg/model"

// diagnose implements §4.10's Infeasibility Diagnoser: a pure, independent
// per-day comparison of available headcount against minimum staffing,
// run when the pre-check hard-flags the input or the solver reports no
// feasible roster.
func diagnose(in *model.SolveInput, cal *model.Calendar, traceID string) *model.Diagnosis {
	unavailByDay := make(map[int][]string)
	for _, req := range in.Requests {
		if req.Kind != model.Off && req.Kind != model.Leave && req.Kind != model.Train {
			continue
		}
		unavailByDay[req.Day] = append(unavailByDay[req.Day], in.Nurses[req.NurseIndex].ID)
	}

	policy := in.Policy
	diag := &model.Diagnosis{TraceID: traceID}
	for d := 1; d <= in.Days; d++ {
		mReq := 3
		if cal.IsSpecial(d) {
			mReq = 4
		}
		needed := mReq + resolveOverrideInt(in.Overrides, model.Evening, d, 2) + resolveOverrideInt(in.Overrides, model.Night, d, 1)
		if in.EnableOnCall && d <= onCallWindow && d <= in.Days {
			needed++
		}

		unavailable := append([]string(nil), unavailByDay[d]...)
		// N1's weekday contract makes the day-shift-only nurse unusable for
		// S/N/OC coverage on a contract-off day, even without a request.
		if cal.IsSpecial(d) || cal.Weekday(d) <= 3 {
			id := in.Nurses[policy.DayShiftOnly].ID
			if !contains(unavailable, id) {
				unavailable = append(unavailable, id)
			}
		}

		available := len(in.Nurses) - len(unavailable)
		if available >= needed {
			continue
		}
		diag.Days = append(diag.Days, model.DayShortfall{
			Day:            d,
			Available:      available,
			Needed:         needed,
			Shortfall:      needed - available,
			UnavailableIDs: unavailable,
		})
	}
	return diag
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// resolveOverrideInt mirrors builder.resolveOverride without requiring a
// live model — the diagnoser runs standalone, before or instead of a solve.
func resolveOverrideInt(overrides []model.StaffingOverride, shift model.Status, d int, dflt int) int {
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
