package model

import "testing"

func TestRoster_SetGet(t *testing.T) {
	r := NewRoster(2025, 10, []string{"n1", "n2"}, 31)
	r.Set(0, 1, "M")
	r.Set(1, 31, "O")

	if got := r.Get(0, 1); got != "M" {
		t.Errorf("Get(0,1) = %q, want M", got)
	}
	if got := r.Get(1, 31); got != "O" {
		t.Errorf("Get(1,31) = %q, want O", got)
	}
	if got := r.Get(0, 2); got != "" {
		t.Errorf("unset cell should default to empty, got %q", got)
	}
}

func TestDiagnosis_HasShortfalls(t *testing.T) {
	empty := &Diagnosis{}
	if empty.HasShortfalls() {
		t.Error("an empty diagnosis should report no shortfalls")
	}
	withDay := &Diagnosis{Days: []DayShortfall{{Day: 10}}}
	if !withDay.HasShortfalls() {
		t.Error("a diagnosis with a recorded day should report shortfalls")
	}
}
