// Package config provides configuration management for the roster engine.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the engine's runtime configuration.
type Config struct {
	App       AppConfig
	Scheduler SchedulerConfig
	Weights   WeightConfig
}

// AppConfig holds basic logging configuration.
type AppConfig struct {
	LogLevel  string
	LogFormat string
}

// SchedulerConfig holds solve-call defaults (§4.8) read from the
// environment. The HTTP driver does not pass them to the engine, which
// applies its own 20s default and takes EnableOnCall from each request.
type SchedulerConfig struct {
	DefaultTimeLimit time.Duration
	DefaultEnableOC  bool
}

// WeightConfig holds the soft-objective weight table of §4.4/§4.5 as a value
// passed to the engine. Load always uses DefaultWeights; no weight is read
// from the environment.
type WeightConfig struct {
	OffNightGap        int64 // "O -> N/NS" penalty (15)
	NightSingleGapOff  int64 // "N-O-N" penalty (10)
	WastedOffDay       int64 // "S-O-N" penalty (35)
	AnyDoubleShift     int64 // any NS penalty (50)
	SpecialDayMorning  int64 // M worked on special day reward (25)
	OffAfterNight      int64 // O after any N reward (1)
	ConsecutiveOffPair int64 // two consecutive O reward (5)
	PairConflict       int64 // designated pair sharing a shift penalty (30)
	SevenDayStreak     int64 // 7-worked-day window penalty (45)
	OnCallSoftAvoid    int64 // designated on-call soft-avoid penalty (20)
	WorkTargetMiss     int64 // |work - target| penalty, per unit (40)
}

// DefaultWeights returns the weight table from §4.4/§4.5.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		OffNightGap:        15,
		NightSingleGapOff:  10,
		WastedOffDay:       35,
		AnyDoubleShift:     50,
		SpecialDayMorning:  25,
		OffAfterNight:      1,
		ConsecutiveOffPair: 5,
		PairConflict:       30,
		SevenDayStreak:     45,
		OnCallSoftAvoid:    20,
		WorkTargetMiss:     40,
	}
}

// Load builds a Config from environment variables, falling back to the
// spec's defaults.
func Load() Config {
	return Config{
		App: AppConfig{
			LogLevel:  getEnv("ROSTER_LOG_LEVEL", "info"),
			LogFormat: getEnv("ROSTER_LOG_FORMAT", "console"),
		},
		Scheduler: SchedulerConfig{
			DefaultTimeLimit: getEnvDuration("ROSTER_TIME_LIMIT", 20*time.Second),
			DefaultEnableOC:  getEnvBool("ROSTER_ENABLE_ON_CALL", false),
		},
		Weights: DefaultWeights(),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
