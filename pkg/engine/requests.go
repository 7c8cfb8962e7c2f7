package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/pkg/model"
)

// addRequests applies §4.3: leave/training requests hard-force L_T and
// forbid every other status that day; off requests enter the objective as
// rewards weighted by priority, and every fix-request day as a reward of
// weight FixRewardWeight. To keep the solver from
// inventing leave, L_T is also hard-zeroed for every (nurse, day) without a
// matching request.
func (b *builder) addRequests() {
	hasLeave := make(map[[2]int]bool)
	for _, req := range b.in.Requests {
		switch req.Kind {
		case model.Leave, model.Train:
			b.cp.AddEquality(b.x(req.NurseIndex, req.Day, model.Leave), cpmodel.NewConstant(1))
			hasLeave[[2]int{req.NurseIndex, req.Day}] = true
		case model.Off:
			b.addReward(
				"off_request",
				req.Weight(),
				cpmodel.NewLinearExpr().Add(b.x(req.NurseIndex, req.Day, model.Off)),
			)
		}
	}

	for n := 0; n < b.n; n++ {
		for d := 1; d <= b.d; d++ {
			if !hasLeave[[2]int{n, d}] {
				b.cp.AddEquality(b.x(n, d, model.Leave), cpmodel.NewConstant(0))
			}
		}
	}

	for _, fr := range b.in.FixRequests {
		for _, d := range fr.Days {
			b.addReward(
				"fix_request",
				model.FixRewardWeight,
				cpmodel.NewLinearExpr().Add(b.x(fr.NurseIndex, d, fr.Shift)),
			)
		}
	}
}
