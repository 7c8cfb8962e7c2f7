package engine

import (
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"

	"github.com/paiban/erroster/pkg/errors"
)

// solveResult is the raw outcome of the solver harness (§4.8), before
// materialization into a Roster.
type solveResult struct {
	status   cmpb.CpSolverStatus
	response *cmpb.CpSolverResponse
	duration time.Duration
}

// solve runs CP-SAT over the assembled model with a wall-clock time limit.
func (b *builder) solve(timeLimitSeconds float64) (*solveResult, error) {
	model, err := b.cp.Model()
	if err != nil {
		return nil, errors.Internal(err, "failed to build CP-SAT model proto")
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(timeLimitSeconds),
	}

	start := time.Now()
	resp, err := cpmodel.SolveCpModelWithParameters(model, params)
	duration := time.Since(start)
	if err != nil {
		return nil, errors.Internal(err, "CP-SAT solve failed")
	}

	return &solveResult{
		status:   resp.GetStatus(),
		response: resp,
		duration: duration,
	}, nil
}

// feasible reports whether the solve produced a usable assignment.
func (r *solveResult) feasible() bool {
	return r.status == cmpb.CpSolverStatus_OPTIMAL || r.status == cmpb.CpSolverStatus_FEASIBLE
}
