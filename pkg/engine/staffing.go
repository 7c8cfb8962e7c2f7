package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// addStaffing applies §4.1's daily minimum staffing constraints.
func (b *builder) addStaffing() {
	for d := 1; d <= b.d; d++ {
		mReq := int64(3)
		if b.cal.IsSpecial(d) {
			mReq = 4
		}
		sReq := b.resolveOverride(model.Evening, d, 2)
		nReq := b.resolveOverride(model.Night, d, 1)

		morning := cpmodel.NewLinearExpr()
		evening := cpmodel.NewLinearExpr()
		night := cpmodel.NewLinearExpr()
		for n := 0; n < b.n; n++ {
			morning.Add(b.x(n, d, model.Morning))
			evening.Add(b.x(n, d, model.Evening)).Add(b.x(n, d, model.Double))
			night.Add(b.x(n, d, model.Night)).Add(b.x(n, d, model.Double))
		}

		b.cp.AddGreaterOrEqual(morning, cpmodel.NewConstant(mReq))
		b.cp.AddGreaterOrEqual(evening, cpmodel.NewConstant(sReq))
		b.cp.AddGreaterOrEqual(night, cpmodel.NewConstant(nReq))
	}
}

// resolveOverride returns the required headcount for shift on day d: the
// default, unless a StaffingOverride covers d, in which case the
// narrowest (most specific) covering override wins (§3, §4.1).
func (b *builder) resolveOverride(shift model.Status, d int, dflt int64) int64 {
	best := dflt
	bestWidth := -1
	for _, o := range b.in.Overrides {
		if o.Shift != shift || !o.Covers(d) {
			continue
		}
		if bestWidth == -1 || o.Width() < bestWidth {
			best = int64(o.RequiredCount)
			bestWidth = o.Width()
		}
	}
	return best
}
