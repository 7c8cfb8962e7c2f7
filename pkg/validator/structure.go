package validator

import (
	"fmt"

	"github.com/paiban/erroster/pkg/errors"
	"github.com/paiban/erroster/pkg/model"
)

// ValidateStructure performs the §7 "Input invalid" checks that must be
// surfaced immediately, before any solve attempt: out-of-range request
// dates, unknown nurse references, and malformed previous-month tails.
// cal is assumed already built (so year/month/days agreement is settled).
// Every malformed field is accumulated via errors.ValidationErrors rather
// than stopping at the first, so a caller sees the whole set of problems in
// one round trip.
func ValidateStructure(in *model.SolveInput, cal *model.Calendar) *errors.AppError {
	n := len(in.Nurses)
	var verrs errors.ValidationErrors

	if in.Policy.DayShiftOnly < 0 || in.Policy.DayShiftOnly >= n {
		verrs.Add("policy.day_shift_only", fmt.Sprintf("index %d out of range 0..%d", in.Policy.DayShiftOnly, n-1))
	}
	if in.Policy.FixedQuota < 0 || in.Policy.FixedQuota >= n {
		verrs.Add("policy.fixed_quota", fmt.Sprintf("index %d out of range 0..%d", in.Policy.FixedQuota, n-1))
	}
	if in.Policy.NightGapExempt < 0 || in.Policy.NightGapExempt >= n {
		verrs.Add("policy.night_gap_exempt", fmt.Sprintf("index %d out of range 0..%d", in.Policy.NightGapExempt, n-1))
	}
	if in.Policy.PairConflict != ([2]int{}) {
		for _, idx := range in.Policy.PairConflict {
			if idx < 0 || idx >= n {
				verrs.Add("policy.pair_conflict", fmt.Sprintf("index %d out of range 0..%d", idx, n-1))
			}
		}
	}
	for _, idx := range in.Policy.OnCallSoftAvoid {
		if idx < 0 || idx >= n {
			verrs.Add("policy.on_call_soft_avoid", fmt.Sprintf("index %d out of range 0..%d", idx, n-1))
		}
	}

	for i, req := range in.Requests {
		if req.NurseIndex < 0 || req.NurseIndex >= n {
			verrs.Add("requests", fmt.Sprintf("request %d references unknown nurse index %d", i, req.NurseIndex))
			continue
		}
		if req.Day < 1 || req.Day > in.Days {
			verrs.Add("requests", fmt.Sprintf("request %d day %d is out of range 1..%d", i, req.Day, in.Days))
		}
	}

	for i, fr := range in.FixRequests {
		if fr.NurseIndex < 0 || fr.NurseIndex >= n {
			verrs.Add("fix_requests", fmt.Sprintf("fix request %d references unknown nurse index %d", i, fr.NurseIndex))
		}
		if fr.Shift != model.Morning && fr.Shift != model.Evening && fr.Shift != model.Night {
			verrs.Add("fix_requests", fmt.Sprintf("fix request %d has invalid shift %q", i, fr.Shift))
		}
		for _, d := range fr.Days {
			if d < 1 || d > in.Days {
				verrs.Add("fix_requests", fmt.Sprintf("fix request %d day %d is out of range 1..%d", i, d, in.Days))
			}
		}
	}

	for i, o := range in.Overrides {
		if o.Shift != model.Evening && o.Shift != model.Night {
			verrs.Add("overrides", fmt.Sprintf("override %d has invalid shift %q (must be S or N)", i, o.Shift))
		}
		if o.DayFrom < 1 || o.DayTo > in.Days || o.DayFrom > o.DayTo {
			verrs.Add("overrides", fmt.Sprintf("override %d day range [%d,%d] is invalid for 1..%d", i, o.DayFrom, o.DayTo, in.Days))
		}
		if o.RequiredCount < 0 {
			verrs.Add("overrides", fmt.Sprintf("override %d has negative required_count %d", i, o.RequiredCount))
		}
	}

	for idx, tail := range in.PrevTail {
		if idx < 0 || idx >= n {
			verrs.Add("prev_tail", fmt.Sprintf("tail references unknown nurse index %d", idx))
			continue
		}
		if len(tail) > 7 {
			verrs.Add("prev_tail", fmt.Sprintf("tail for nurse %d has %d entries, exceeding the 7-day maximum", idx, len(tail)))
		}
		for _, s := range tail {
			valid := false
			for _, all := range model.AllStatuses {
				if s == all {
					valid = true
					break
				}
			}
			if !valid {
				verrs.Add("prev_tail", fmt.Sprintf("tail for nurse %d has malformed shift code %q", idx, s))
			}
		}
	}

	if !verrs.HasErrors() {
		return nil
	}
	return verrs.ToAppError()
}
