// Package handler exposes the roster engine behind HTTP (§6: "a thin driver
// may expose solve behind any transport").
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/paiban/erroster/internal/config"
	"github.com/paiban/erroster/pkg/engine"
	"github.com/paiban/erroster/pkg/errors"
	"github.com/paiban/erroster/pkg/model"
	"github.com/paiban/erroster/pkg/stats"
)

// ScheduleHandler adapts HTTP requests to engine.Solve.
type ScheduleHandler struct {
	weights config.WeightConfig
}

// NewScheduleHandler builds a handler using the given weight configuration.
func NewScheduleHandler(weights config.WeightConfig) *ScheduleHandler {
	return &ScheduleHandler{weights: weights}
}

// SolveRequest is the wire shape of a solve call (§6's contract).
type SolveRequest struct {
	Year             int                      `json:"year"`
	Month            int                      `json:"month"`
	Days             int                      `json:"days"`
	Nurses           []model.Nurse            `json:"nurses"`
	Policy           *model.Policy            `json:"policy,omitempty"`
	Requests         []model.Request          `json:"requests"`
	FixRequests      []model.FixRequest       `json:"fix_requests"`
	Overrides        []model.StaffingOverride `json:"overrides"`
	EnableOnCall     bool                     `json:"enable_on_call"`
	PrevTail         map[string]model.PrevTail `json:"prev_tail"` // keyed by nurse index as a string
	Holidays         []int                    `json:"holidays"`
	TimeLimitSeconds float64                  `json:"time_limit_seconds"`
}

// SolveResponse carries either a materialized roster (with its fairness and
// coverage report) or an error/diagnosis, tagged with the solve call's trace
// ID.
type SolveResponse struct {
	Roster    *model.Roster    `json:"roster,omitempty"`
	Report    *stats.Report    `json:"report,omitempty"`
	Diagnosis *model.Diagnosis `json:"diagnosis,omitempty"`
	Error     *ErrorBody       `json:"error,omitempty"`
	TraceID   string           `json:"trace_id,omitempty"`
}

// ErrorBody carries the same code/message/details a caller would get from
// respondError, plus the AppError's structured Fields, so a failed solve is
// not a bare diagnosis with no explanation attached.
type ErrorBody struct {
	Code    errors.Code            `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Solve handles POST /api/v1/roster/solve.
func (h *ScheduleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "only POST is supported"))
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "failed to decode request body"))
		return
	}

	in := &model.SolveInput{
		Year:             req.Year,
		Month:            req.Month,
		Days:             req.Days,
		Nurses:           req.Nurses,
		Requests:         req.Requests,
		FixRequests:      req.FixRequests,
		Overrides:        req.Overrides,
		EnableOnCall:     req.EnableOnCall,
		Holidays:         req.Holidays,
		TimeLimitSeconds: req.TimeLimitSeconds,
	}
	if req.Policy != nil {
		in.Policy = *req.Policy
	} else {
		in.Policy = model.DefaultPolicy()
	}
	if len(req.PrevTail) > 0 {
		in.PrevTail = make(map[int]model.PrevTail, len(req.PrevTail))
		for k, v := range req.PrevTail {
			idx, err := parseNurseIndex(k)
			if err != nil {
				respondError(w, errors.InvalidInput("prev_tail", "keys must be nurse indices"))
				return
			}
			in.PrevTail[idx] = v
		}
	}

	roster, report, diag, err := engine.Solve(in, h.weights)
	if err != nil {
		appErr, ok := err.(*errors.AppError)
		if !ok {
			respondError(w, errors.Wrap(err, errors.CodeInternal, "solve failed"))
			return
		}
		status := http.StatusUnprocessableEntity
		if appErr.Code == errors.CodeInvalidInput || appErr.Code == errors.CodeValidationFail {
			status = http.StatusBadRequest
		}
		var traceID string
		if diag != nil {
			traceID = diag.TraceID
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(SolveResponse{
			Diagnosis: diag,
			Error: &ErrorBody{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
				Fields:  appErr.Fields,
			},
			TraceID: traceID,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SolveResponse{Roster: roster, Report: report})
}

func parseNurseIndex(s string) (int, error) {
	return strconv.Atoi(s)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, err *errors.AppError) {
	status := http.StatusInternalServerError
	switch err.Code {
	case errors.CodeInvalidInput, errors.CodeValidationFail:
		status = http.StatusBadRequest
	case errors.CodeNoFeasibleSolution:
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"code":    err.Code,
		"message": err.Message,
		"details": err.Details,
	})
}
