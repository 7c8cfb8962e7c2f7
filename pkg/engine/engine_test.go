package engine

import (
	"testing"
	"time"

	"github.com/paiban/erroster/internal/config"
	"github.com/paiban/erroster/pkg/model"
)

// TestSolve_PrecheckInfeasible mirrors §8 scenario S3: five nurses request
// Off on the same day, overwhelming default staffing before the CP-SAT
// solver is ever invoked.
func TestSolve_PrecheckInfeasible(t *testing.T) {
	var requests []model.Request
	for n := 0; n < 5; n++ {
		requests = append(requests, model.Request{NurseIndex: n, Day: 10, Kind: model.Off, Year: 2025, Month: 11})
	}
	in := &model.SolveInput{
		Year: 2025, Month: 11, Days: 30,
		Nurses:   tenNurses(),
		Policy:   model.DefaultPolicy(),
		Requests: requests,
	}

	roster, report, diag, err := Solve(in, config.DefaultWeights())
	if err == nil {
		t.Fatal("expected a NoFeasibleSolution error")
	}
	if roster != nil {
		t.Error("expected no roster on pre-check infeasibility")
	}
	if report != nil {
		t.Error("expected no report on pre-check infeasibility")
	}
	if diag == nil || !diag.HasShortfalls() {
		t.Fatal("expected a diagnosis naming the overbooked day")
	}
	var found bool
	for _, sf := range diag.Days {
		if sf.Day == 10 {
			found = true
		}
	}
	if !found {
		t.Error("expected day 10 in the diagnosis")
	}
}

// TestSolve_Baseline exercises a full builder pipeline on a small,
// unconstrained instance (§8 scenario S1 baseline) and checks the
// structural invariants the spec demands of any produced roster.
func TestSolve_Baseline(t *testing.T) {
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses: tenNurses(),
		Policy: model.DefaultPolicy(),
	}

	roster, report, diag, err := Solve(in, config.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if diag != nil {
		t.Fatalf("unexpected diagnosis on a feasible instance: %+v", diag)
	}
	if roster == nil {
		t.Fatal("expected a materialized roster")
	}
	if report == nil || report.Fairness == nil || report.Coverage == nil {
		t.Fatal("expected a populated fairness/coverage report")
	}
	if len(report.Fairness.NurseStats) != len(in.Nurses) {
		t.Errorf("fairness report covers %d nurses, want %d", len(report.Fairness.NurseStats), len(in.Nurses))
	}
	if len(report.Coverage.Days) != in.Days {
		t.Errorf("coverage report covers %d days, want %d", len(report.Coverage.Days), in.Days)
	}
	if report.Coverage.MinSlack() < 0 {
		t.Errorf("a feasible roster must never understaff a day, got min slack %d", report.Coverage.MinSlack())
	}

	valid := map[string]bool{"M": true, "S": true, "N": true, "": true, "NCD": true, "L_T": true, "NS": true, "OC": true}
	for n := 0; n < len(in.Nurses); n++ {
		for d := 1; d <= in.Days; d++ {
			code := roster.Get(n, d)
			if !valid[code] {
				t.Fatalf("nurse %d day %d has invalid code %q", n, d, code)
			}
		}
	}

	cal, err := model.NewCalendar(in.Year, time.Month(in.Month), in.Days, in.Holidays)
	if err != nil {
		t.Fatalf("unexpected calendar error: %v", err)
	}

	// N1 (index 0) is day-shift-only: never S/N/NS/OC, and works M only on
	// Fridays (§4.2's contract-fix rule), otherwise Off.
	n1 := in.Policy.DayShiftOnly
	for d := 1; d <= in.Days; d++ {
		code := roster.Get(n1, d)
		if code == "S" || code == "N" || code == "NS" || code == "OC" {
			t.Errorf("N1 day %d has code %q, contract forbids S/N/NS/OC", d, code)
		}
		if cal.Weekday(d) == 4 && !cal.IsSpecial(d) { // 0=Mon..6=Sun, so 4=Fri
			if code != "M" {
				t.Errorf("N1 Friday day %d = %q, want M", d, code)
			}
		}
	}

	// Every day must meet the default staffing minimum (3, or 4 on a
	// special day) for the morning shift headcount.
	for d := 1; d <= in.Days; d++ {
		var m int
		for n := 0; n < len(in.Nurses); n++ {
			if roster.Get(n, d) == "M" {
				m++
			}
		}
		minM := 3
		if cal.IsSpecial(d) {
			minM = 4
		}
		if m < minM {
			t.Errorf("day %d has %d morning nurses, want at least %d", d, m, minM)
		}
	}
}

// TestSolve_ScopeFiltersOutOfMonthRequests checks that Solve silently
// ignores a request scoped to a different year/month rather than acting on
// it or erroring (§3, via SolveInput.InScope).
func TestSolve_ScopeFiltersOutOfMonthRequests(t *testing.T) {
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses: tenNurses(),
		Policy: model.DefaultPolicy(),
		Requests: []model.Request{
			{NurseIndex: 1, Day: 999, Kind: model.Off, Year: 2024, Month: 1},
		},
	}

	// The stray request's Day is out of range for the actual month but
	// carries a mismatched Year/Month, so it must be scoped out before
	// structural validation ever sees it.
	roster, _, diag, err := Solve(in, config.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if diag != nil {
		t.Fatalf("unexpected diagnosis: %+v", diag)
	}
	if roster == nil {
		t.Fatal("expected a materialized roster")
	}
}

// TestSolve_DefaultPolicyAppliedWhenZero checks that an unset Policy field
// falls back to DefaultPolicy rather than modeling N1 and N7 contracts onto
// nurse index 0 twice over.
func TestSolve_DefaultPolicyAppliedWhenZero(t *testing.T) {
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses: tenNurses(),
	}
	_, _, diag, err := Solve(in, config.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if diag != nil {
		t.Fatalf("unexpected diagnosis: %+v", diag)
	}
}

// TestSolve_ContinuityOverridesN1FridayFix mirrors §8 scenario S2: N1's
// previous-month tail is a 7-day work streak, forcing day 1 off, even though
// August 1 2025 is a Friday — the day addContractFixes would otherwise pin
// N1 to Morning. Continuity must win rather than leaving two hard equalities
// on the same cell and an unsatisfiable model.
func TestSolve_ContinuityOverridesN1FridayFix(t *testing.T) {
	policy := model.DefaultPolicy()
	in := &model.SolveInput{
		Year: 2025, Month: 8, Days: 31,
		Nurses: tenNurses(),
		Policy: policy,
		PrevTail: map[int]model.PrevTail{
			policy.DayShiftOnly: {model.Morning, model.Morning, model.Morning, model.Morning, model.Morning, model.Morning, model.Morning},
		},
	}

	cal, err := model.NewCalendar(in.Year, time.Month(in.Month), in.Days, in.Holidays)
	if err != nil {
		t.Fatalf("unexpected calendar error: %v", err)
	}
	if cal.Weekday(1) != 4 || cal.IsSpecial(1) {
		t.Fatalf("test fixture assumes August 1 2025 is a non-special Friday, got weekday %d special=%v", cal.Weekday(1), cal.IsSpecial(1))
	}

	roster, _, diag, err := Solve(in, config.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if diag != nil {
		t.Fatalf("unexpected diagnosis: %+v", diag)
	}
	if roster == nil {
		t.Fatal("expected a materialized roster")
	}
	if code := roster.Get(policy.DayShiftOnly, 1); code == "M" {
		t.Errorf("N1 day 1 = %q, want continuity's forced Off to win over the Friday contract fix", code)
	}
}

func TestStatusIndex(t *testing.T) {
	for i, s := range model.AllStatuses {
		if got := statusIndex(s); got != i {
			t.Errorf("statusIndex(%q) = %d, want %d", s, got, i)
		}
	}
}

func TestStatusIndex_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown status")
		}
	}()
	statusIndex(model.Status("bogus"))
}
