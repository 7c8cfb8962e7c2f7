// Package stats provides post-solve reporting over a produced roster. It
// never feeds back into the solve path (§4.6's equity rules are enforced
// inside the CP-SAT model itself) — this package only explains the result.
package stats

import (
	"math"
	"sort"

	"github.com/paiban/erroster/pkg/model"
)

// NurseStat summarizes one nurse's month.
type NurseStat struct {
	NurseID       string  `json:"nurse_id"`
	WorkDays      int     `json:"work_days"`
	OffDays       int     `json:"off_days"`
	NightShifts   int     `json:"night_shifts"`
	EveningShifts int     `json:"evening_shifts"`
	OnCallDays    int     `json:"on_call_days"`
	Deviation     float64 `json:"deviation"` // % deviation from the pool's mean work days
}

// FairnessReport is the roster-wide equity summary.
type FairnessReport struct {
	WorkloadGini     float64     `json:"workload_gini"` // 0 = perfectly even, 1 = maximally uneven
	NightShiftGini   float64     `json:"night_shift_gini"`
	AvgWorkDays      float64     `json:"avg_work_days"`
	WorkDaysRange    int         `json:"work_days_range"`
	NurseStats       []NurseStat `json:"nurse_stats"`
	OverallFairness  float64     `json:"overall_fairness"` // 0-100, higher is fairer
}

// Analyze computes the fairness report for a solved roster.
func Analyze(roster *model.Roster) *FairnessReport {
	stats := make([]NurseStat, len(roster.NurseIDs))
	workDays := make([]float64, len(roster.NurseIDs))
	nightShifts := make([]float64, len(roster.NurseIDs))

	for i, id := range roster.NurseIDs {
		var s NurseStat
		s.NurseID = id
		for d := 1; d <= roster.Days; d++ {
			raw := roster.Get(i, d)
			code := model.Status(raw)
			switch {
			case code.IsWork():
				s.WorkDays++
			case code == model.Off || raw == "" || raw == "NCD":
				s.OffDays++
			}
			if code.CountsAsNight() {
				s.NightShifts++
			}
			if code.CountsAsEvening() {
				s.EveningShifts++
			}
			if code == model.OnCall {
				s.OnCallDays++
			}
		}
		stats[i] = s
		workDays[i] = float64(s.WorkDays)
		nightShifts[i] = float64(s.NightShifts)
	}

	avg := mean(workDays)
	for i := range stats {
		if avg > 0 {
			stats[i].Deviation = (workDays[i] - avg) / avg * 100
		}
	}

	workloadGini := gini(workDays)
	nightGini := gini(nightShifts)
	minW, maxW := rangeOf(workDays)

	return &FairnessReport{
		WorkloadGini:    workloadGini,
		NightShiftGini:  nightGini,
		AvgWorkDays:     avg,
		WorkDaysRange:   int(maxW - minW),
		NurseStats:      stats,
		OverallFairness: overallScore(workloadGini, nightGini),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func rangeOf(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// gini computes the Gini coefficient of values, grounded on the teacher's
// sorted-cumulative-sum formulation.
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	g := 0.0
	for i, v := range sorted {
		g += (2*float64(i+1) - float64(n) - 1) * v
	}
	g /= float64(n) * sum
	return math.Max(0, math.Min(1, g))
}

func overallScore(workloadGini, nightGini float64) float64 {
	const workloadWeight, nightWeight = 0.6, 0.4
	score := workloadWeight*(1-workloadGini)*100 + nightWeight*(1-nightGini)*100
	return math.Max(0, math.Min(100, score))
}
