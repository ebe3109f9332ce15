package soso

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := converter.Convert(req)
//	if errors.Is(err, soso.ErrFormat) {
//	    // Wrong file type, nothing was parsed
//	}
var (
	// ErrFormat indicates the input path does not have the extension the
	// selected schema expects. Raised before any parsing.
	ErrFormat = errors.New("unsupported input format")

	// ErrParse indicates the record content is not well-formed XML.
	ErrParse = errors.New("malformed record")

	// ErrUnknownStrategy indicates no crosswalk is registered for the
	// requested schema name.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigNotFound indicates an explicitly requested config file does
	// not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidOverride indicates a caller-supplied property value was rejected.
	ErrInvalidOverride = errors.New("invalid override")

	// ErrBatchIncomplete indicates a batch finished with at least one
	// record that could not be converted.
	ErrBatchIncomplete = errors.New("batch incomplete")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidOverride), errors.Is(err, ErrConfigNotFound):
		return ExitConfigError
	case errors.Is(err, ErrFormat):
		return ExitFormatError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrUnknownStrategy):
		return ExitUnknownStrategy
	case errors.Is(err, ErrBatchIncomplete):
		return ExitBatchIncomplete
	}

	// cobra reports argument and flag misuse as plain errors
	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usagePatterns = []string{
	"missing required argument",
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
