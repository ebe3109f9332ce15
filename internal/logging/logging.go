package logging

import "github.com/sosocrosswalk/soso/pkg/soso"

// RecordLogger is implemented by loggers that log batch record outcomes
// as structured events.
type RecordLogger interface {
	Record(result soso.RecordResult)
}

// New returns the logger for a log format: "json" selects JSONLogger,
// anything else ConsoleLogger.
func New(format, level string, verbose bool) soso.Logger {
	if format == "json" {
		return NewJSONLogger(JSONConfig{Level: level, Verbose: verbose})
	}
	return NewConsoleLogger(verbose)
}
