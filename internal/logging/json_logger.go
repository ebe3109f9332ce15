package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// JSONConfig holds JSON logger configuration.
type JSONConfig struct {
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug level
	Output  io.Writer
}

// JSONLogger writes one JSON object per message using zerolog.
// Verbose maps to debug level. Safe for concurrent use.
type JSONLogger struct {
	zlog zerolog.Logger
}

// NewJSONLogger creates a structured logger tagged with service "soso".
func NewJSONLogger(cfg JSONConfig) *JSONLogger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "soso").
		Logger()

	return &JSONLogger{zlog: zlog}
}

func (l *JSONLogger) Verbose(format string, args ...interface{}) {
	emit(l.zlog.Debug(), format, args)
}

func (l *JSONLogger) Info(format string, args ...interface{}) {
	emit(l.zlog.Info(), format, args)
}

func (l *JSONLogger) Error(format string, args ...interface{}) {
	emit(l.zlog.Error(), format, args)
}

// Record logs the outcome of one record conversion with structured fields.
func (l *JSONLogger) Record(result soso.RecordResult) {
	event := l.zlog.Info()
	if result.Status == soso.StatusFailed || result.Status == soso.StatusSkipped {
		event = l.zlog.Error().Str("error", result.Error)
	}
	event = event.
		Str("component", "batch").
		Str("path", result.Path).
		Str("status", string(result.Status)).
		Dur("duration_ms", result.Duration)
	if result.Output != "" {
		event = event.Str("output", result.Output)
	}
	if result.DuplicateOf != "" {
		event = event.Str("duplicate_of", result.DuplicateOf)
	}
	event.Msg("record processed")
}

func emit(event *zerolog.Event, format string, args []interface{}) {
	if len(args) > 0 {
		event.Msgf(format, args...)
	} else {
		event.Msg(format)
	}
}
