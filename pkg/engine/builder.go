// Package engine implements the constraint-based roster scheduling engine:
// Model Builder, Objective Assembler, Solver Harness, Roster Materializer,
// and Infeasibility Diagnoser (§4 of the spec), built on or-tools' CP-SAT
// Go bindings.
package engine

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/paiban/erroster/internal/config"
	"github.com/paiban/erroster/pkg/model"
)

// statusOrder fixes the index of each status within the per-cell variable
// lattice, matching model.AllStatuses.
var statusOrder = model.AllStatuses

func statusIndex(s model.Status) int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	panic(fmt.Sprintf("engine: unknown status %q", s))
}

// term is a single weighted component of the objective (§4.5).
type term struct {
	name   string
	weight int64
	expr   cpmodel.LinearArgument
}

// builder accumulates the CP-SAT model as each rule-group method is applied.
type builder struct {
	cp      *cpmodel.Builder
	in      *model.SolveInput
	cal     *model.Calendar
	policy  model.Policy
	weights config.WeightConfig
	n       int // nurse count
	d       int // day count

	// vars[nurseIndex][day-1][statusIndex]
	vars [][][]cpmodel.BoolVar

	rewards   []term
	penalties []term
}

func newBuilder(in *model.SolveInput, cal *model.Calendar, weights config.WeightConfig) *builder {
	b := &builder{
		cp:      cpmodel.NewCpModelBuilder(),
		in:      in,
		cal:     cal,
		policy:  in.Policy,
		weights: weights,
		n:       len(in.Nurses),
		d:       in.Days,
	}
	b.createVariables()
	return b
}

// createVariables builds the x_{n,d,s} indicator lattice and the
// exactly-one constraint of §4.1.
func (b *builder) createVariables() {
	b.vars = make([][][]cpmodel.BoolVar, b.n)
	for n := 0; n < b.n; n++ {
		b.vars[n] = make([][]cpmodel.BoolVar, b.d)
		for d := 0; d < b.d; d++ {
			row := make([]cpmodel.BoolVar, len(statusOrder))
			for si, s := range statusOrder {
				row[si] = b.cp.NewBoolVar().WithName(fmt.Sprintf("x_n%d_d%d_%s", n, d+1, s))
			}
			b.vars[n][d] = row

			var all []cpmodel.BoolVar
			all = append(all, row...)
			b.cp.AddExactlyOne(all...)
		}
	}
}

// x returns the indicator variable for (nurse n, day d [1-indexed], status s).
func (b *builder) x(n, d int, s model.Status) cpmodel.BoolVar {
	return b.vars[n][d-1][statusIndex(s)]
}

// addReward registers a positive objective term (§4.5).
func (b *builder) addReward(name string, weight int64, expr cpmodel.LinearArgument) {
	if weight == 0 {
		return
	}
	b.rewards = append(b.rewards, term{name: name, weight: weight, expr: expr})
}

// addPenalty registers a negative objective term (§4.5).
func (b *builder) addPenalty(name string, weight int64, expr cpmodel.LinearArgument) {
	if weight == 0 {
		return
	}
	b.penalties = append(b.penalties, term{name: name, weight: weight, expr: expr})
}

// newSlack creates a fresh 0/1 indicator used to relax a hard pattern into
// a soft, penalized one (§9 "soft transitions").
func (b *builder) newSlack(name string) cpmodel.BoolVar {
	return b.cp.NewBoolVar().WithName(name)
}
