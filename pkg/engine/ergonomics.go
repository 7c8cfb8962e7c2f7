package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// workStatuses are the statuses that count toward a worked day (§ Glossary).
var workStatuses = []model.Status{model.Morning, model.Evening, model.Night, model.Leave, model.Double}

// workSum returns a LinearExpr summing the worked-status indicators for
// nurse n on day d.
func (b *builder) workSum(n, d int) *cpmodel.LinearExpr {
	e := cpmodel.NewLinearExpr()
	for _, s := range workStatuses {
		e.Add(b.x(n, d, s))
	}
	return e
}

// addErgonomics applies the hard transition and continuity rules of §4.2
// and the designated-nurse exclusions, and (via addContinuity) §4.2.1.
func (b *builder) addErgonomics() {
	for n := 0; n < b.n; n++ {
		b.forbidNS(n)

		for d := 1; d <= b.d; d++ {
			if d < b.d {
				// No S -> N/NS.
				b.cp.AddLessOrEqual(
					cpmodel.NewLinearExpr().Add(b.x(n, d, model.Evening)).Add(b.x(n, d+1, model.Night)).Add(b.x(n, d+1, model.Double)),
					cpmodel.NewConstant(1),
				)
				// No N/NS -> S.
				b.cp.AddLessOrEqual(
					cpmodel.NewLinearExpr().Add(b.x(n, d, model.Night)).Add(b.x(n, d, model.Double)).Add(b.x(n, d+1, model.Evening)),
					cpmodel.NewConstant(1),
				)
				// No two consecutive nights.
				b.cp.AddLessOrEqual(
					cpmodel.NewLinearExpr().
						Add(b.x(n, d, model.Night)).Add(b.x(n, d, model.Double)).
						Add(b.x(n, d+1, model.Night)).Add(b.x(n, d+1, model.Double)),
					cpmodel.NewConstant(1),
				)
				// After NS, the next day is forced off.
				b.cp.AddImplication(b.x(n, d, model.Double), b.x(n, d+1, model.Off))
			}

			if d+2 <= b.d {
				// Forbidden three-day cascade: S, M, N/NS.
				b.cp.AddLessOrEqual(
					cpmodel.NewLinearExpr().
						Add(b.x(n, d, model.Evening)).
						Add(b.x(n, d+1, model.Morning)).
						Add(b.x(n, d+2, model.Night)).Add(b.x(n, d+2, model.Double)),
					cpmodel.NewConstant(2),
				)
			}

			if d+4 <= b.d {
				// At most one NS in any 5-day window.
				window := cpmodel.NewLinearExpr()
				for k := 0; k < 5; k++ {
					window.Add(b.x(n, d+k, model.Double))
				}
				b.cp.AddLessOrEqual(window, cpmodel.NewConstant(1))
			}
		}

		// No 8-consecutive-day window with more than 7 worked days.
		for d := 1; d+7 <= b.d; d++ {
			window := cpmodel.NewLinearExpr()
			for k := 0; k < 8; k++ {
				window.Add(b.workSum(n, d+k))
			}
			b.cp.AddLessOrEqual(window, cpmodel.NewConstant(7))
		}
	}

	b.addContractFixes()
	b.addContinuity()
}

// forbidNS zeroes out NS and OC for the day-shift-only and fixed-quota
// contract nurses (§4.2 "Designated nurses N1 and N7 may never take NS or OC").
func (b *builder) forbidNS(n int) {
	role := b.policy.RoleOf(n)
	if role != model.RoleDayShiftOnly && role != model.RoleFixedQuota {
		return
	}
	for d := 1; d <= b.d; d++ {
		b.cp.AddEquality(b.x(n, d, model.Double), cpmodel.NewConstant(0))
		b.cp.AddEquality(b.x(n, d, model.OnCall), cpmodel.NewConstant(0))
	}
}

// tailForcesOpeningOff reports whether nurse n's previous-month tail runs a
// work streak of 7+ days, which addContinuity hard-pins to Off on day 1
// (§4.2.1). The day-1 contract fix below must defer to that pin rather than
// asserting a conflicting value on the same cell.
func (b *builder) tailForcesOpeningOff(n int) bool {
	tail, ok := b.in.PrevTail[n]
	if !ok || len(tail) == 0 {
		return false
	}
	return tail.TrailingWorkRun() >= 7
}

// addContractFixes applies N1's weekday contract and N7's monthly quota
// bands (§4.2).
func (b *builder) addContractFixes() {
	n1 := b.policy.DayShiftOnly
	for d := 1; d <= b.d; d++ {
		wd := b.cal.Weekday(d)
		switch {
		case b.cal.IsSpecial(d):
			b.cp.AddEquality(b.x(n1, d, model.Off), cpmodel.NewConstant(1))
		case wd <= 3: // Mon-Thu
			b.cp.AddEquality(b.x(n1, d, model.Off), cpmodel.NewConstant(1))
		case d == 1 && b.tailForcesOpeningOff(n1):
			// Cross-month continuity outranks the Friday-M fix on day 1
			// (§8 S2: "N1 day 1 = O regardless of weekday").
			b.cp.AddEquality(b.x(n1, d, model.Off), cpmodel.NewConstant(1))
		default: // Fri (wd==4); Sat/Sun already handled by IsSpecial
			b.cp.AddEquality(b.x(n1, d, model.Morning), cpmodel.NewConstant(1))
		}
	}

	n7 := b.policy.FixedQuota
	mPlusLT := cpmodel.NewLinearExpr()
	sPlusN := cpmodel.NewLinearExpr()
	nOnly := cpmodel.NewLinearExpr()
	for d := 1; d <= b.d; d++ {
		mPlusLT.Add(b.x(n7, d, model.Morning)).Add(b.x(n7, d, model.Leave))
		sPlusN.Add(b.x(n7, d, model.Evening)).Add(b.x(n7, d, model.Night))
		nOnly.Add(b.x(n7, d, model.Night))
	}
	b.cp.AddLinearConstraint(mPlusLT, 9, 11)
	b.cp.AddLinearConstraint(sPlusN, 9, 11)
	b.cp.AddLessOrEqual(nOnly, cpmodel.NewConstant(4))
}

// addContinuity applies §4.2.1's cross-month continuity constraints,
// derived from each nurse's previous-month tail.
func (b *builder) addContinuity() {
	for n, tail := range b.in.PrevTail {
		if len(tail) == 0 {
			continue
		}

		if last, ok := tail.Last(); ok {
			switch last {
			case model.Night, model.Double:
				b.cp.AddEquality(b.x(n, 1, model.Morning), cpmodel.NewConstant(0))
			case model.Evening:
				b.cp.AddEquality(b.x(n, 1, model.Night), cpmodel.NewConstant(0))
				b.cp.AddEquality(b.x(n, 1, model.Double), cpmodel.NewConstant(0))
			case model.Off:
				b.cp.AddEquality(b.x(n, 1, model.Night), cpmodel.NewConstant(0))
				b.cp.AddEquality(b.x(n, 1, model.Double), cpmodel.NewConstant(0))
				b.cp.AddEquality(b.x(n, 1, model.OnCall), cpmodel.NewConstant(0))
			}
		}

		c := tail.TrailingWorkRun()
		switch {
		case c >= 7 && b.d >= 1:
			b.cp.AddEquality(b.x(n, 1, model.Off), cpmodel.NewConstant(1))
		case c == 6 && b.d >= 2:
			b.cp.AddGreaterOrEqual(
				cpmodel.NewLinearExpr().Add(b.x(n, 1, model.Off)).Add(b.x(n, 2, model.Off)),
				cpmodel.NewConstant(1),
			)
		case c == 5 && b.d >= 3:
			b.cp.AddGreaterOrEqual(
				cpmodel.NewLinearExpr().Add(b.x(n, 1, model.Off)).Add(b.x(n, 2, model.Off)).Add(b.x(n, 3, model.Off)),
				cpmodel.NewConstant(1),
			)
		}

		for d := 1; d <= 7 && d <= b.d; d++ {
			k := 8 - d
			tailWorked := int64(tail.WorkedInLastN(k))
			newWorked := cpmodel.NewLinearExpr()
			for day := 1; day <= d; day++ {
				newWorked.Add(b.workSum(n, day))
			}
			b.cp.AddLessOrEqual(newWorked, cpmodel.NewConstant(7-tailWorked))
		}
	}
}
