package validator

import (
	"testing"
	"time"

	"github.com/paiban/erroster/pkg/model"
)

func octoberCalendar(t *testing.T) *model.Calendar {
	t.Helper()
	cal, err := model.NewCalendar(2025, time.October, 31, nil)
	if err != nil {
		t.Fatalf("unexpected calendar error: %v", err)
	}
	return cal
}

func TestValidate_DuplicateRequest(t *testing.T) {
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses: make([]model.Nurse, 10),
		Requests: []model.Request{
			{NurseIndex: 0, Day: 5, Kind: model.Off, Year: 2025, Month: 10},
			{NurseIndex: 0, Day: 5, Kind: model.Leave, Year: 2025, Month: 10},
		},
	}
	report := Validate(in, octoberCalendar(t))

	found := false
	for _, f := range report.Findings {
		if f.Type == FindingDuplicateRequest && f.Severity == SeverityError {
			found = true
		}
	}
	if !found {
		t.Error("expected a hard-flagged duplicate request finding")
	}
	if !report.HasHardFlags() {
		t.Error("a duplicate request must be a hard flag")
	}
}

func TestValidate_DayOverbooked(t *testing.T) {
	// Five distinct nurses requesting Off on day 10 (§8 scenario S3).
	var requests []model.Request
	for n := 0; n < 5; n++ {
		requests = append(requests, model.Request{NurseIndex: n, Day: 10, Kind: model.Off, Year: 2025, Month: 10})
	}
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses:   make([]model.Nurse, 10),
		Requests: requests,
	}
	report := Validate(in, octoberCalendar(t))

	if !report.HasHardFlags() {
		t.Fatal("five unavailable nurses on one day should hard-flag")
	}
	var hit bool
	for _, f := range report.Findings {
		if f.Type == FindingDayOverbooked && f.Day == 10 && f.Severity == SeverityError {
			hit = true
		}
	}
	if !hit {
		t.Error("expected a day-overbooked error finding for day 10")
	}
}

func TestValidate_DayUnderThreshold_NoFlag(t *testing.T) {
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses: make([]model.Nurse, 10),
		Requests: []model.Request{
			{NurseIndex: 0, Day: 10, Kind: model.Off, Year: 2025, Month: 10},
		},
	}
	report := Validate(in, octoberCalendar(t))
	if report.HasHardFlags() {
		t.Error("a single off-request should never hard-flag")
	}
}

func TestValidate_DayOverbooked_IgnoresTrainRequests(t *testing.T) {
	// Five nurses in Training on the same day is not an Off/Leave
	// overbooking per §4.10's literal "off/leave" wording, even though
	// the headcount matches the hard-flag threshold.
	var requests []model.Request
	for n := 0; n < 5; n++ {
		requests = append(requests, model.Request{NurseIndex: n, Day: 10, Kind: model.Train, Year: 2025, Month: 10})
	}
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses:   make([]model.Nurse, 10),
		Requests: requests,
	}
	report := Validate(in, octoberCalendar(t))

	if report.HasHardFlags() {
		t.Error("five Train-only requests on one day must not hard-flag as day-overbooked")
	}
	for _, f := range report.Findings {
		if f.Type == FindingDayOverbooked {
			t.Errorf("unexpected day-overbooked finding from Train requests: %+v", f)
		}
	}
}

func TestValidate_ExcessiveLeave(t *testing.T) {
	var requests []model.Request
	for d := 1; d <= 20; d++ {
		requests = append(requests, model.Request{NurseIndex: 0, Day: d, Kind: model.Leave, Year: 2025, Month: 10})
	}
	in := &model.SolveInput{
		Year: 2025, Month: 10, Days: 31,
		Nurses:   make([]model.Nurse, 10),
		Requests: requests,
	}
	report := Validate(in, octoberCalendar(t))

	found := false
	for _, f := range report.Findings {
		if f.Type == FindingExcessiveLeave && f.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Error("20 leave days out of 31 should warn as excessive (> D/3)")
	}
}
