package requeststore

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/paiban/erroster/pkg/errors"
	"github.com/paiban/erroster/pkg/model"
)

// PostgresStore persists requests via database/sql against a Postgres
// backend, using lib/pq for driver registration and array parameters.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an already-opened *sql.DB. The caller owns the
// connection's lifecycle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema is the DDL expected by PostgresStore, applied once at deployment
// time (the engine itself never runs migrations).
const Schema = `
CREATE TABLE IF NOT EXISTS roster_requests (
	id SERIAL PRIMARY KEY,
	nurse_index INTEGER NOT NULL,
	day INTEGER NOT NULL,
	kind INTEGER NOT NULL,
	priority INTEGER NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS roster_fix_requests (
	id SERIAL PRIMARY KEY,
	nurse_index INTEGER NOT NULL,
	shift TEXT NOT NULL,
	days INTEGER[] NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS roster_staffing_overrides (
	id SERIAL PRIMARY KEY,
	day_from INTEGER NOT NULL,
	day_to INTEGER NOT NULL,
	shift TEXT NOT NULL,
	required_count INTEGER NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL
);
`

func (s *PostgresStore) SaveRequest(ctx context.Context, req model.Request) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO roster_requests (nurse_index, day, kind, priority, year, month) VALUES ($1, $2, $3, $4, $5, $6)`,
		req.NurseIndex, req.Day, int(req.Kind), req.Priority, req.Year, req.Month,
	)
	if err != nil {
		return errors.Internal(err, "failed to save request")
	}
	return nil
}

func (s *PostgresStore) SaveFixRequest(ctx context.Context, fr model.FixRequest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO roster_fix_requests (nurse_index, shift, days, year, month) VALUES ($1, $2, $3, $4, $5)`,
		fr.NurseIndex, string(fr.Shift), pq.Array(fr.Days), fr.Year, fr.Month,
	)
	if err != nil {
		return errors.Internal(err, "failed to save fix request")
	}
	return nil
}

func (s *PostgresStore) SaveOverride(ctx context.Context, o model.StaffingOverride) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO roster_staffing_overrides (day_from, day_to, shift, required_count, year, month) VALUES ($1, $2, $3, $4, $5, $6)`,
		o.DayFrom, o.DayTo, string(o.Shift), o.RequiredCount, o.Year, o.Month,
	)
	if err != nil {
		return errors.Internal(err, "failed to save staffing override")
	}
	return nil
}

func (s *PostgresStore) ListRequests(ctx context.Context, year, month int) ([]model.Request, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT nurse_index, day, kind, priority, year, month FROM roster_requests WHERE year = $1 AND month = $2`,
		year, month,
	)
	if err != nil {
		return nil, errors.Internal(err, "failed to list requests")
	}
	defer rows.Close()

	var out []model.Request
	for rows.Next() {
		var req model.Request
		var kind int
		if err := rows.Scan(&req.NurseIndex, &req.Day, &kind, &req.Priority, &req.Year, &req.Month); err != nil {
			return nil, errors.Internal(err, "failed to scan request row")
		}
		req.Kind = model.RequestKind(kind)
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListFixRequests(ctx context.Context, year, month int) ([]model.FixRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT nurse_index, shift, days, year, month FROM roster_fix_requests WHERE year = $1 AND month = $2`,
		year, month,
	)
	if err != nil {
		return nil, errors.Internal(err, "failed to list fix requests")
	}
	defer rows.Close()

	var out []model.FixRequest
	for rows.Next() {
		var fr model.FixRequest
		var shift string
		if err := rows.Scan(&fr.NurseIndex, &shift, pq.Array(&fr.Days), &fr.Year, &fr.Month); err != nil {
			return nil, errors.Internal(err, "failed to scan fix request row")
		}
		fr.Shift = model.Status(shift)
		out = append(out, fr)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListOverrides(ctx context.Context, year, month int) ([]model.StaffingOverride, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day_from, day_to, shift, required_count, year, month FROM roster_staffing_overrides WHERE year = $1 AND month = $2`,
		year, month,
	)
	if err != nil {
		return nil, errors.Internal(err, "failed to list staffing overrides")
	}
	defer rows.Close()

	var out []model.StaffingOverride
	for rows.Next() {
		var o model.StaffingOverride
		var shift string
		if err := rows.Scan(&o.DayFrom, &o.DayTo, &shift, &o.RequiredCount, &o.Year, &o.Month); err != nil {
			return nil, errors.Internal(err, "failed to scan staffing override row")
		}
		o.Shift = model.Status(shift)
		out = append(out, o)
	}
	return out, rows.Err()
}
