package engine

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// addFairness applies §4.6's equity rules over the rotating pool: pairwise
// workload balance, a calendar-derived target band on total work days,
// off-day parity (pairwise and against T_off), special-day-off equity, and
// separate S and N equity bands over the sn_fair pool.
func (b *builder) addFairness() {
	var rotating, snPool []int
	for n := 0; n < b.n; n++ {
		if b.policy.IsRotating(n) {
			rotating = append(rotating, n)
		}
		if b.policy.IsSNFair(n) {
			snPool = append(snPool, n)
		}
	}
	if len(rotating) == 0 {
		return
	}

	workCounts := make(map[int]cpmodel.IntVar, len(rotating))
	offCounts := make(map[int]cpmodel.IntVar, len(rotating))
	specialOffCounts := make(map[int]cpmodel.IntVar, len(rotating))
	sCounts := make(map[int]cpmodel.IntVar, len(snPool))
	nCounts := make(map[int]cpmodel.IntVar, len(snPool))

	for _, n := range rotating {
		workExpr := cpmodel.NewLinearExpr()
		offExpr := cpmodel.NewLinearExpr()
		specialOffExpr := cpmodel.NewLinearExpr()
		for d := 1; d <= b.d; d++ {
			workExpr.Add(b.workSum(n, d))
			offExpr.Add(b.x(n, d, model.Off))
			if b.cal.IsSpecial(d) {
				specialOffExpr.Add(b.x(n, d, model.Off))
			}
		}

		work := b.cp.NewIntVar(0, int64(b.d)).WithName(fmt.Sprintf("work_count_n%d", n))
		b.cp.AddEquality(work, workExpr)
		workCounts[n] = work

		off := b.cp.NewIntVar(0, int64(b.d)).WithName(fmt.Sprintf("off_count_n%d", n))
		b.cp.AddEquality(off, offExpr)
		offCounts[n] = off

		specialOff := b.cp.NewIntVar(0, int64(b.d)).WithName(fmt.Sprintf("special_off_count_n%d", n))
		b.cp.AddEquality(specialOff, specialOffExpr)
		specialOffCounts[n] = specialOff
	}

	for _, n := range snPool {
		sExpr := cpmodel.NewLinearExpr()
		nExpr := cpmodel.NewLinearExpr()
		for d := 1; d <= b.d; d++ {
			sExpr.Add(b.x(n, d, model.Evening)).Add(b.x(n, d, model.Double))
			nExpr.Add(b.x(n, d, model.Night)).Add(b.x(n, d, model.Double))
		}
		sCount := b.cp.NewIntVar(0, int64(b.d)).WithName(fmt.Sprintf("s_count_n%d", n))
		b.cp.AddEquality(sCount, sExpr)
		sCounts[n] = sCount

		nCount := b.cp.NewIntVar(0, int64(b.d)).WithName(fmt.Sprintf("n_count_n%d", n))
		b.cp.AddEquality(nCount, nExpr)
		nCounts[n] = nCount
	}

	pairwiseBand(b, workCounts, rotating, 1)
	pairwiseBand(b, offCounts, rotating, 1)
	pairwiseBand(b, specialOffCounts, rotating, 1)
	pairwiseBand(b, sCounts, snPool, 1)
	pairwiseBand(b, nCounts, snPool, 1)

	// T_work = D - (weekends + weekday holidays); T_off = D - T_work (§4.6).
	tWork := b.targetWorkDays()
	tOff := int64(b.d) - tWork

	miss := cpmodel.NewLinearExpr()
	for _, n := range rotating {
		b.cp.AddLinearConstraint(workCounts[n], tWork-2, tWork+2)
		b.cp.AddLinearConstraint(offCounts[n], tOff-1, tOff+1)

		diff := b.cp.NewIntVar(-int64(b.d), int64(b.d)).WithName(fmt.Sprintf("work_target_diff_n%d", n))
		b.cp.AddEquality(diff, cpmodel.NewLinearExpr().Add(workCounts[n]).AddConstant(-tWork))
		abs := b.cp.NewIntVar(0, int64(b.d)).WithName(fmt.Sprintf("work_target_abs_n%d", n))
		b.cp.AddAbsEquality(abs, diff)
		miss.Add(abs)
	}
	b.addPenalty("work_target_miss", b.weights.WorkTargetMiss, miss)
}

// pairwiseBand constrains every pair of counts in pool to differ by at
// most band (§4.6's "no more than one shift apart" equity rules).
func pairwiseBand(b *builder, counts map[int]cpmodel.IntVar, pool []int, band int64) {
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			diff := cpmodel.NewLinearExpr().Add(counts[pool[i]]).AddTerm(counts[pool[j]], -1)
			b.cp.AddLinearConstraint(diff, -band, band)
		}
	}
}

// targetWorkDays computes T_work = D - (number of weekends + number of
// weekday holidays), the equity anchor for rotating nurses (§4.6, Glossary).
func (b *builder) targetWorkDays() int64 {
	var weekends, weekdayHolidays int
	for d := 1; d <= b.d; d++ {
		switch {
		case b.cal.IsWeekend(d):
			weekends++
		case b.cal.IsHoliday(d):
			weekdayHolidays++
		}
	}
	return int64(b.d - weekends - weekdayHolidays)
}
