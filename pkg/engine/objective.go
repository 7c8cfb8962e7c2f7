package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// setObjective assembles every registered reward and penalty into the
// single weighted maximization of §4.5: maximize sum(reward*weight) -
// sum(penalty*weight).
func (b *builder) setObjective() {
	obj := cpmodel.NewLinearExpr()
	for _, t := range b.rewards {
		obj.AddTerm(t.expr, t.weight)
	}
	for _, t := range b.penalties {
		obj.AddTerm(t.expr, -t.weight)
	}
	b.cp.Maximize(obj)
}
