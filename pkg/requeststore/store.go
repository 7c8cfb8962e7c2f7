// Package requeststore persists the personal requests, fix requests, and
// staffing overrides that feed a solve call (§6's "Request store" external
// collaborator).
package requeststore

import (
	"context"

	"github.com/paiban/erroster/pkg/model"
)

// Store is the persistence boundary for a target (year, month)'s inputs.
// The engine itself never depends on Store directly — a driver loads a
// SolveInput from it before calling engine.Solve.
type Store interface {
	SaveRequest(ctx context.Context, req model.Request) error
	SaveFixRequest(ctx context.Context, fr model.FixRequest) error
	SaveOverride(ctx context.Context, o model.StaffingOverride) error

	ListRequests(ctx context.Context, year, month int) ([]model.Request, error)
	ListFixRequests(ctx context.Context, year, month int) ([]model.FixRequest, error)
	ListOverrides(ctx context.Context, year, month int) ([]model.StaffingOverride, error)
}
