package engine

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// addSoftPenalized forces slack to 1 whenever every literal in cond holds,
// without constraining it otherwise — the right direction for a penalty
// indicator, since the objective already wants to keep penalties at zero
// (§9 "soft transitions").
func (b *builder) addSoftPenalized(name string, cond ...cpmodel.BoolVar) cpmodel.BoolVar {
	slack := b.newSlack(name)
	negated := make([]cpmodel.BoolVar, 0, len(cond)+1)
	for _, c := range cond {
		negated = append(negated, c.Not())
	}
	negated = append(negated, slack)
	b.cp.AddBoolOr(negated...)
	return slack
}

// addSoftRewarded bounds slack above by every literal in cond, the right
// direction for a reward indicator: the solver may only collect the reward
// by actually satisfying the condition.
func (b *builder) addSoftRewarded(name string, cond ...cpmodel.BoolVar) cpmodel.BoolVar {
	slack := b.newSlack(name)
	for _, c := range cond {
		b.cp.AddLessOrEqual(cpmodel.NewLinearExpr().Add(slack), cpmodel.NewLinearExpr().Add(c))
	}
	return slack
}

// addSoftPreferences applies §4.4's soft ergonomic preferences as weighted
// objective terms.
func (b *builder) addSoftPreferences() {
	offNightGap := cpmodel.NewLinearExpr()
	nightGapOff := cpmodel.NewLinearExpr()
	wastedOffDay := cpmodel.NewLinearExpr()
	anyDouble := cpmodel.NewLinearExpr()
	specialMorning := cpmodel.NewLinearExpr()
	offAfterNight := cpmodel.NewLinearExpr()
	consecutiveOff := cpmodel.NewLinearExpr()
	sevenDayStreak := cpmodel.NewLinearExpr()

	for n := 0; n < b.n; n++ {
		for d := 1; d <= b.d; d++ {
			anyDouble.Add(b.x(n, d, model.Double))
			if b.cal.IsSpecial(d) {
				specialMorning.Add(b.x(n, d, model.Morning))
			}

			if d < b.d {
				// O -> N/NS: a single off day followed directly by a night.
				gap := b.addSoftPenalized(
					fmt.Sprintf("off_night_gap_n%d_d%d", n, d),
					b.x(n, d, model.Off), b.x(n, d+1, model.Night),
				)
				offNightGap.Add(gap)
				gapNS := b.addSoftPenalized(
					fmt.Sprintf("off_night_gap_ns_n%d_d%d", n, d),
					b.x(n, d, model.Off), b.x(n, d+1, model.Double),
				)
				offNightGap.Add(gapNS)

				// O after any N/NS: encourage genuine rest after a night.
				if n != b.policy.NightGapExempt {
					rest := b.addSoftRewarded(
						fmt.Sprintf("off_after_night_n%d_d%d", n, d),
						b.x(n, d, model.Night), b.x(n, d+1, model.Off),
					)
					offAfterNight.Add(rest)
					restNS := b.addSoftRewarded(
						fmt.Sprintf("off_after_ns_n%d_d%d", n, d),
						b.x(n, d, model.Double), b.x(n, d+1, model.Off),
					)
					offAfterNight.Add(restNS)

					// Two consecutive off days: a real rest block.
					pair := b.addSoftRewarded(
						fmt.Sprintf("consecutive_off_n%d_d%d", n, d),
						b.x(n, d, model.Off), b.x(n, d+1, model.Off),
					)
					consecutiveOff.Add(pair)
				}
			}

			if d+2 <= b.d {
				// N-O-N: nights on d and d+2; the day between is not
				// inspected.
				gap := b.addSoftPenalized(
					fmt.Sprintf("night_gap_off_n%d_d%d", n, d),
					b.x(n, d, model.Night), b.x(n, d+2, model.Night),
				)
				nightGapOff.Add(gap)

				// S-O-N: an off day squeezed between an evening and a night.
				wasted := b.addSoftPenalized(
					fmt.Sprintf("wasted_off_n%d_d%d", n, d),
					b.x(n, d, model.Evening), b.x(n, d+1, model.Off), b.x(n, d+2, model.Night),
				)
				wastedOffDay.Add(wasted)
			}

			if d+6 <= b.d {
				window := b.workSum(n, d)
				for k := 1; k < 7; k++ {
					window.Add(b.x(n, d+k, model.Morning)).
						Add(b.x(n, d+k, model.Evening)).
						Add(b.x(n, d+k, model.Night)).
						Add(b.x(n, d+k, model.Leave)).
						Add(b.x(n, d+k, model.Double))
				}
				slack := b.newSlack(fmt.Sprintf("seven_day_streak_n%d_d%d", n, d))
				b.cp.AddLessOrEqual(window, cpmodel.NewLinearExpr().AddTerm(slack, 1).AddConstant(6))
				sevenDayStreak.Add(slack)
			}
		}
	}

	b.addPenalty("off_night_gap", b.weights.OffNightGap, offNightGap)
	b.addPenalty("night_single_gap_off", b.weights.NightSingleGapOff, nightGapOff)
	b.addPenalty("wasted_off_day", b.weights.WastedOffDay, wastedOffDay)
	b.addPenalty("any_double_shift", b.weights.AnyDoubleShift, anyDouble)
	b.addReward("special_day_morning", b.weights.SpecialDayMorning, specialMorning)
	b.addReward("off_after_night", b.weights.OffAfterNight, offAfterNight)
	b.addReward("consecutive_off_pair", b.weights.ConsecutiveOffPair, consecutiveOff)
	b.addPenalty("seven_day_streak", b.weights.SevenDayStreak, sevenDayStreak)

	b.addPairConflict()
}

// addPairConflict penalizes the designated pair (§9's reified pair pattern)
// for sharing the same work shift on the same day.
func (b *builder) addPairConflict() {
	n1, n2 := b.policy.PairConflict[0], b.policy.PairConflict[1]
	conflicts := cpmodel.NewLinearExpr()
	for _, s := range []model.Status{model.Morning, model.Evening, model.Night} {
		for d := 1; d <= b.d; d++ {
			y := b.addSoftPenalized(fmt.Sprintf("pair_conflict_d%d_%s", d, s), b.x(n1, d, s), b.x(n2, d, s))
			conflicts.Add(y)
		}
	}
	b.addPenalty("pair_conflict", b.weights.PairConflict, conflicts)
}
