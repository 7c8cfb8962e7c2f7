package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// onCallWindow is the number of leading days of the month eligible for
// on-call coverage (§4.7).
const onCallWindow = 10

// addOnCall applies §4.7's on-call rules. Unless the input opts in via
// EnableOnCall, it pins every OC indicator to 0.
func (b *builder) addOnCall() {
	if !b.in.EnableOnCall {
		for n := 0; n < b.n; n++ {
			for d := 1; d <= b.d; d++ {
				b.cp.AddEquality(b.x(n, d, model.OnCall), cpmodel.NewConstant(0))
			}
		}
		return
	}

	window := b.onCallWindowDays()

	for d := 1; d <= b.d; d++ {
		if d > window {
			for n := 0; n < b.n; n++ {
				b.cp.AddEquality(b.x(n, d, model.OnCall), cpmodel.NewConstant(0))
			}
			continue
		}

		coverage := cpmodel.NewLinearExpr()
		for n := 0; n < b.n; n++ {
			if !b.policy.IsOnCallEligible(n) {
				b.cp.AddEquality(b.x(n, d, model.OnCall), cpmodel.NewConstant(0))
				continue
			}
			coverage.Add(b.x(n, d, model.OnCall))
		}
		b.cp.AddGreaterOrEqual(coverage, cpmodel.NewConstant(1))
	}

	softAvoid := cpmodel.NewLinearExpr()
	for n := 0; n < b.n; n++ {
		if !b.policy.IsOnCallEligible(n) {
			continue
		}

		for d := 1; d <= window; d++ {
			if b.policy.IsOnCallSoftAvoid(n) {
				softAvoid.Add(b.x(n, d, model.OnCall))
			}

			// No OC on two adjacent days.
			if d < window {
				b.cp.AddLessOrEqual(
					cpmodel.NewLinearExpr().Add(b.x(n, d, model.OnCall)).Add(b.x(n, d+1, model.OnCall)),
					cpmodel.NewConstant(1),
				)
			}
			// No morning shift the day right after on-call.
			if d < b.d {
				b.cp.AddLessOrEqual(
					cpmodel.NewLinearExpr().Add(b.x(n, d, model.OnCall)).Add(b.x(n, d+1, model.Morning)),
					cpmodel.NewConstant(1),
				)
			}
		}

		// At most one on-call assignment in any 4-day window of the
		// eligible range.
		for d := 1; d+3 <= window; d++ {
			w := cpmodel.NewLinearExpr()
			for k := 0; k < 4; k++ {
				w.Add(b.x(n, d+k, model.OnCall))
			}
			b.cp.AddLessOrEqual(w, cpmodel.NewConstant(1))
		}
	}
	b.addPenalty("on_call_soft_avoid", b.weights.OnCallSoftAvoid, softAvoid)
}

func (b *builder) onCallWindowDays() int {
	if b.d < onCallWindow {
		return b.d
	}
	return onCallWindow
}
