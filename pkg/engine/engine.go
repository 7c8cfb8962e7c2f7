package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/paiban/erroster/internal/config"
	"github.com/paiban/erroster/pkg/errors"
	"github.com/paiban/erroster/pkg/logger"
	"github.com/paiban/erroster/pkg/model"
	"github.com/paiban/erroster/pkg/stats"
	"github.com/paiban/erroster/pkg/validator"
)

// defaultTimeLimitSeconds is used when the caller leaves SolveInput's
// TimeLimitSeconds unset.
const defaultTimeLimitSeconds = 20.0

// Solve implements the monthly roster contract of §6: build the calendar,
// pre-check the input, assemble the CP-SAT model, solve it, and return
// either a materialized Roster (with its post-solve Report) or a Diagnosis
// explaining infeasibility.
func Solve(in *model.SolveInput, weights config.WeightConfig) (*model.Roster, *stats.Report, *model.Diagnosis, error) {
	traceID := uuid.NewString()
	log := logger.NewSchedulerLogger()
	log.StartSolve(traceID, in.Year, in.Month, len(in.Nurses), in.Days)

	cal, err := model.NewCalendar(in.Year, time.Month(in.Month), in.Days, in.Holidays)
	if err != nil {
		return nil, nil, nil, err
	}
	in = in.InScope()
	if in.Policy.IsZero() {
		in.Policy = model.DefaultPolicy()
	}
	if appErr := validator.ValidateStructure(in, cal); appErr != nil {
		return nil, nil, nil, appErr
	}

	report := validator.Validate(in, cal)
	for _, f := range report.Findings {
		if f.Severity == validator.SeverityWarning {
			log.PrecheckWarning(traceID, string(f.Type), f.Message)
		}
	}
	if report.HasHardFlags() {
		diag := diagnose(in, cal, traceID)
		log.SolveInfeasible(traceID, 0, len(diag.Days))
		return nil, nil, diag, errors.NoFeasibleSolution("pre-check found unresolvable input conflicts").
			WithField("trace_id", traceID)
	}

	b := newBuilder(in, cal, weights)
	b.addStaffing()
	b.addErgonomics()
	b.addRequests()
	b.addSoftPreferences()
	b.addFairness()
	b.addOnCall()
	b.setObjective()

	timeLimit := in.TimeLimitSeconds
	if timeLimit <= 0 {
		timeLimit = defaultTimeLimitSeconds
	}
	result, err := b.solve(timeLimit)
	if err != nil {
		return nil, nil, nil, err
	}

	if !result.feasible() {
		diag := diagnose(in, cal, traceID)
		log.SolveInfeasible(traceID, result.duration, len(diag.Days))
		return nil, nil, diag, errors.NoFeasibleSolution("solver found no feasible roster within the time limit").
			WithField("trace_id", traceID).
			WithField("status", result.status.String())
	}

	roster := b.materialize(result.response)
	rep := &stats.Report{
		Fairness: stats.Analyze(roster),
		Coverage: stats.AnalyzeCoverage(roster, cal, in.Overrides),
	}
	log.SolveComplete(traceID, result.duration, result.response.GetObjectiveValue(), rep.Fairness.OverallFairness, rep.Coverage.MinSlack())
	return roster, rep, nil, nil
}
