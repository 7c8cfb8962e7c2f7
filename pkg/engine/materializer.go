package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// materialize converts a feasible solver response into a display Roster
// (§4.9): shift codes are used verbatim except Off, which reads blank, or
// "NCD" (no-clinic-day) for the day-shift-only nurse on a non-special
// Monday through Thursday.
func (b *builder) materialize(resp *cmpb.CpSolverResponse) *model.Roster {
	ids := make([]string, b.n)
	for i, nurse := range b.in.Nurses {
		ids[i] = nurse.ID
	}
	roster := model.NewRoster(b.in.Year, b.in.Month, ids, b.d)

	for n := 0; n < b.n; n++ {
		for d := 1; d <= b.d; d++ {
			code := b.cellCode(resp, n, d)
			roster.Set(n, d, code)
		}
	}
	return roster
}

func (b *builder) cellCode(resp *cmpb.CpSolverResponse, n, d int) string {
	for _, s := range statusOrder {
		if cpmodel.SolutionBooleanValue(resp, b.x(n, d, s)) {
			return b.displayCode(n, d, s)
		}
	}
	return string(model.Off)
}

func (b *builder) displayCode(n, d int, s model.Status) string {
	switch s {
	case model.Off:
		if b.policy.RoleOf(n) == model.RoleDayShiftOnly && !b.cal.IsSpecial(d) && b.cal.Weekday(d) <= 3 {
			return "NCD"
		}
		return ""
	default:
		return string(s)
	}
}
