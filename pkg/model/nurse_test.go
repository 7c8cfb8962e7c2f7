package model

import "testing"

func TestDefaultPolicy_Roles(t *testing.T) {
	p := DefaultPolicy()

	if p.RoleOf(p.DayShiftOnly) != RoleDayShiftOnly {
		t.Error("the day-shift-only index should report RoleDayShiftOnly")
	}
	if p.RoleOf(p.FixedQuota) != RoleFixedQuota {
		t.Error("the fixed-quota index should report RoleFixedQuota")
	}
	if p.RoleOf(2) != RoleRotating {
		t.Error("an unnamed index should be rotating")
	}
}

func TestDefaultPolicy_FairnessPools(t *testing.T) {
	p := DefaultPolicy()

	if p.IsRotating(p.DayShiftOnly) || p.IsRotating(p.FixedQuota) {
		t.Error("N1 and N7 must be excluded from the rotating fairness pool")
	}
	if !p.IsRotating(2) {
		t.Error("an unnamed nurse should be in the rotating pool")
	}

	if p.IsSNFair(p.DayShiftOnly) {
		t.Error("N1 must be excluded from the S/N equity pool")
	}
	if !p.IsSNFair(p.FixedQuota) {
		t.Error("N7 must remain in the S/N equity pool")
	}
}

func TestDefaultPolicy_OnCallEligibility(t *testing.T) {
	p := DefaultPolicy()

	if p.IsOnCallEligible(p.DayShiftOnly) || p.IsOnCallEligible(p.FixedQuota) {
		t.Error("N1 and N7 must never be on-call eligible")
	}
	if !p.IsOnCallEligible(2) {
		t.Error("an unnamed nurse should be on-call eligible by default")
	}

	for _, idx := range p.OnCallSoftAvoid {
		if !p.IsOnCallSoftAvoid(idx) {
			t.Errorf("index %d should be in the soft-avoid group", idx)
		}
	}
	if p.IsOnCallSoftAvoid(2) {
		t.Error("an index outside the configured group should not be soft-avoid")
	}
}

func TestPolicy_IsZero(t *testing.T) {
	if !(Policy{}).IsZero() {
		t.Error("the zero-value Policy should report IsZero")
	}
	if DefaultPolicy().IsZero() {
		t.Error("DefaultPolicy should not report IsZero")
	}
}
