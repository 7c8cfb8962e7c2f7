// Package logger provides the engine's unified logging framework.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level aliases zerolog's level type.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config controls the package logger.
type Config struct {
	Level  string // debug/info/warn/error/fatal
	Format string // json/console
	Output string // stdout/stderr
}

// DefaultConfig returns the engine's default logging configuration.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console", Output: "stdout"}
}

// Init initializes the package logger. Safe to call multiple times; only
// the first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(parseLevel(cfg.Level))

		var output io.Writer = os.Stdout
		if cfg.Output == "stderr" {
			output = os.Stderr
		}
		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the package logger, initializing it with defaults if needed.
func Get() *zerolog.Logger {
	Init(DefaultConfig()) // no-op once Init has run
	return &logger
}

// Debug logs at debug level.
func Debug() *zerolog.Event { return Get().Debug() }

// Info logs at info level.
func Info() *zerolog.Event { return Get().Info() }

// Warn logs at warn level.
func Warn() *zerolog.Event { return Get().Warn() }

// Error logs at error level.
func Error() *zerolog.Event { return Get().Error() }

// WithError logs an error-level event carrying err.
func WithError(err error) *zerolog.Event { return Get().Error().Err(err) }

// SchedulerLogger is a component logger for the roster engine.
type SchedulerLogger struct {
	base *zerolog.Logger
}

// NewSchedulerLogger creates a component logger tagged "engine".
func NewSchedulerLogger() *SchedulerLogger {
	l := Get().With().Str("component", "engine").Logger()
	return &SchedulerLogger{base: &l}
}

// StartSolve logs the beginning of a solve call.
func (l *SchedulerLogger) StartSolve(traceID string, year, month, nurses, days int) {
	l.base.Info().
		Str("trace_id", traceID).
		Int("year", year).
		Int("month", month).
		Int("nurses", nurses).
		Int("days", days).
		Msg("solve started")
}

// PrecheckWarning logs a pre-check soft warning (§4.10).
func (l *SchedulerLogger) PrecheckWarning(traceID, field, message string) {
	l.base.Warn().
		Str("trace_id", traceID).
		Str("field", field).
		Msg(message)
}

// SolveComplete logs a successful solve, including the post-solve fairness
// score (§4.6) and the tightest daily staffing slack (§4.1) so operators can
// spot a technically-feasible but poorly-balanced or barely-covered roster
// without re-deriving it from the roster body.
func (l *SchedulerLogger) SolveComplete(traceID string, duration time.Duration, objective, fairnessScore float64, minSlack int) {
	l.base.Info().
		Str("trace_id", traceID).
		Dur("duration", duration).
		Float64("objective", objective).
		Float64("fairness_score", fairnessScore).
		Int("min_coverage_slack", minSlack).
		Msg("solve complete")
}

// SolveInfeasible logs a diagnosed infeasible solve.
func (l *SchedulerLogger) SolveInfeasible(traceID string, duration time.Duration, shortDays int) {
	l.base.Warn().
		Str("trace_id", traceID).
		Dur("duration", duration).
		Int("short_days", shortDays).
		Msg("solve infeasible")
}
