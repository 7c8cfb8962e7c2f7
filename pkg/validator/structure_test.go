package validator

import (
	"testing"

	"github.com/paiban/erroster/pkg/model"
)

func baseInput() *model.SolveInput {
	return &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses: make([]model.Nurse, 10),
	}
}

func TestValidateStructure_OK(t *testing.T) {
	in := baseInput()
	in.Requests = []model.Request{{NurseIndex: 0, Day: 15, Kind: model.Off, Year: 2025, Month: 10}}
	in.FixRequests = []model.FixRequest{{NurseIndex: 4, Shift: model.Morning, Days: []int{1, 8}, Year: 2025, Month: 10}}
	in.Overrides = []model.StaffingOverride{{DayFrom: 1, DayTo: 5, Shift: model.Night, RequiredCount: 2, Year: 2025, Month: 10}}
	in.PrevTail = map[int]model.PrevTail{0: {model.Morning, model.Off}}

	if err := ValidateStructure(in, octoberCalendar(t)); err != nil {
		t.Errorf("unexpected error for well-formed input: %v", err)
	}
}

func TestValidateStructure_UnknownNurseInRequest(t *testing.T) {
	in := baseInput()
	in.Requests = []model.Request{{NurseIndex: 99, Day: 1, Kind: model.Off, Year: 2025, Month: 10}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for an out-of-range nurse index")
	}
}

func TestValidateStructure_RequestDayOutOfRange(t *testing.T) {
	in := baseInput()
	in.Requests = []model.Request{{NurseIndex: 0, Day: 45, Kind: model.Off, Year: 2025, Month: 10}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for a day beyond the month length")
	}
}

func TestValidateStructure_InvalidFixShift(t *testing.T) {
	in := baseInput()
	in.FixRequests = []model.FixRequest{{NurseIndex: 0, Shift: model.Off, Days: []int{1}, Year: 2025, Month: 10}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for a fix request on a non-M/S/N shift")
	}
}

func TestValidateStructure_InvalidOverrideRange(t *testing.T) {
	in := baseInput()
	in.Overrides = []model.StaffingOverride{{DayFrom: 10, DayTo: 5, Shift: model.Evening, RequiredCount: 2, Year: 2025, Month: 10}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for an inverted day range")
	}
}

func TestValidateStructure_MalformedTail(t *testing.T) {
	in := baseInput()
	in.PrevTail = map[int]model.PrevTail{0: {"X"}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for a malformed shift code in the tail")
	}
}

func TestValidateStructure_PolicyIndexOutOfRange(t *testing.T) {
	in := baseInput()
	in.Policy = model.Policy{DayShiftOnly: 0, FixedQuota: 99, NightGapExempt: 2, PairConflict: [2]int{1, 6}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for an out-of-range policy.fixed_quota index")
	}
}

func TestValidateStructure_PairConflictIndexOutOfRange(t *testing.T) {
	in := baseInput()
	in.Policy = model.Policy{DayShiftOnly: 0, FixedQuota: 6, NightGapExempt: 2, PairConflict: [2]int{1, 50}}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for an out-of-range policy.pair_conflict index")
	}
}

func TestValidateStructure_OnCallSoftAvoidIndexOutOfRange(t *testing.T) {
	in := baseInput()
	in.Policy = model.DefaultPolicy()
	in.Policy.OnCallSoftAvoid = []int{3, 40}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for an out-of-range policy.on_call_soft_avoid index")
	}
}

func TestValidateStructure_TailTooLong(t *testing.T) {
	in := baseInput()
	in.PrevTail = map[int]model.PrevTail{
		0: {model.Off, model.Off, model.Off, model.Off, model.Off, model.Off, model.Off, model.Off},
	}

	if err := ValidateStructure(in, octoberCalendar(t)); err == nil {
		t.Error("expected an error for a tail exceeding 7 entries")
	}
}
