package model

import "testing"

func TestSolveInput_InScope(t *testing.T) {
	in := &SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Requests: []Request{
			{NurseIndex: 0, Day: 1, Kind: Off, Year: 2025, Month: 10},
			{NurseIndex: 0, Day: 2, Kind: Off, Year: 2025, Month: 9}, // out of scope
		},
		FixRequests: []FixRequest{
			{NurseIndex: 0, Shift: Morning, Days: []int{1}, Year: 2025, Month: 10},
			{NurseIndex: 0, Shift: Morning, Days: []int{2}, Year: 2025, Month: 11}, // out of scope
		},
		Overrides: []StaffingOverride{
			{DayFrom: 1, DayTo: 5, Shift: Night, RequiredCount: 2, Year: 2025, Month: 10},
			{DayFrom: 1, DayTo: 5, Shift: Night, RequiredCount: 2, Year: 2024, Month: 10}, // out of scope
		},
	}

	out := in.InScope()

	if len(out.Requests) != 1 {
		t.Errorf("expected 1 in-scope request, got %d", len(out.Requests))
	}
	if len(out.FixRequests) != 1 {
		t.Errorf("expected 1 in-scope fix request, got %d", len(out.FixRequests))
	}
	if len(out.Overrides) != 1 {
		t.Errorf("expected 1 in-scope override, got %d", len(out.Overrides))
	}

	// The original input must be left untouched.
	if len(in.Requests) != 2 || len(in.FixRequests) != 2 || len(in.Overrides) != 2 {
		t.Error("InScope must not mutate the original SolveInput")
	}
}

func TestSolveInput_InScope_Empty(t *testing.T) {
	in := &SolveInput{Year: 2025, Month: 10, Days: 31}
	out := in.InScope()
	if len(out.Requests) != 0 || len(out.FixRequests) != 0 || len(out.Overrides) != 0 {
		t.Error("InScope on an empty input should yield empty slices, not nil-panic or leak")
	}
}
