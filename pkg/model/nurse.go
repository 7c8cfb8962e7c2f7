// Package model defines the core data types of the roster scheduling engine.
package model

// Nurse is an opaque member of the scheduling pool, identified by position
// in the input nurse list (N1..NK). Certain positions carry a contractual
// role that drives special rules (§4.2 of the spec).
type Nurse struct {
	ID   string
	Name string
}

// Role identifies a contractual role that changes how a nurse is modeled.
type Role int

const (
	// RoleRotating is the default: subject to fairness and general ergonomic rules.
	RoleRotating Role = iota
	// RoleDayShiftOnly is the ER1-style contract: weekday/weekend fixes, never NS/OC.
	RoleDayShiftOnly
	// RoleFixedQuota is the ER7-style contract: monthly M/S/N band quotas, never NS/OC.
	RoleFixedQuota
)

// Policy names the nurses (by index into the input nurse list) that hold a
// designated role or participate in a named soft-rule group. All fields
// default to the spec's worked examples (N1, N3, N7) but are configurable
// so the engine is not hard-wired to a fixed pool size.
type Policy struct {
	// DayShiftOnly is the index of the day-shift-only contract nurse (N1).
	DayShiftOnly int
	// FixedQuota is the index of the fixed-quota contract nurse (N7).
	FixedQuota int
	// NightGapExempt is the index of the nurse exempt from the "no two
	// consecutive off after night" soft grouping (N3).
	NightGapExempt int
	// PairConflict names two indices that should not share the same M/S/N
	// shift on the same day (soft, §4.4).
	PairConflict [2]int
	// OnCallSoftAvoid lists indices that incur a soft penalty when
	// assigned OC (§4.7).
	OnCallSoftAvoid []int
}

// DefaultPolicy returns the policy matching the spec's worked examples,
// assuming a ten-nurse pool in N1..N10 order (0-indexed: N1->0, N7->6, ...).
func DefaultPolicy() Policy {
	return Policy{
		DayShiftOnly:    0,
		FixedQuota:      6,
		NightGapExempt:  2,
		PairConflict:    [2]int{1, 6},
		OnCallSoftAvoid: []int{3, 7},
	}
}

// IsZero reports whether p is the unset zero value, in which case callers
// should substitute DefaultPolicy rather than model the day-shift-only and
// fixed-quota contracts onto the same nurse index.
func (p Policy) IsZero() bool {
	return p.DayShiftOnly == 0 && p.FixedQuota == 0 && p.NightGapExempt == 0 &&
		p.PairConflict == [2]int{} && len(p.OnCallSoftAvoid) == 0
}

// RoleOf reports the contractual role of the nurse at index i.
func (p Policy) RoleOf(i int) Role {
	switch i {
	case p.DayShiftOnly:
		return RoleDayShiftOnly
	case p.FixedQuota:
		return RoleFixedQuota
	default:
		return RoleRotating
	}
}

// IsRotating reports whether index i belongs to the fairness pool of §4.6
// ("rotating" = all nurses except N1 and N7).
func (p Policy) IsRotating(i int) bool {
	return i != p.DayShiftOnly && i != p.FixedQuota
}

// IsSNFair reports whether index i belongs to the S/N equity pool of §4.6
// ("sn_fair" = all nurses except N1).
func (p Policy) IsSNFair(i int) bool {
	return i != p.DayShiftOnly
}

// IsOnCallEligible reports whether index i may ever be assigned OC.
func (p Policy) IsOnCallEligible(i int) bool {
	return i != p.DayShiftOnly && i != p.FixedQuota
}

// IsOnCallSoftAvoid reports whether index i belongs to the soft-avoid
// on-call group (§4.7).
func (p Policy) IsOnCallSoftAvoid(i int) bool {
	for _, idx := range p.OnCallSoftAvoid {
		if idx == i {
			return true
		}
	}
	return false
}
