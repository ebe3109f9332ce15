package soso

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Conversion completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or override values
	ExitFormatError     = 11 // Input file has the wrong extension
	ExitParseError      = 12 // Input file is not well-formed XML
	ExitUnknownStrategy = 13 // No crosswalk registered for the schema name
	ExitBatchIncomplete = 14 // Batch finished with failed records
)

const (
	// DefaultStrategy is the schema name used when none is given.
	DefaultStrategy = "spase"

	// DefaultIndent is the number of spaces used when writing JSON-LD.
	DefaultIndent = 2

	// DefaultInLanguage is the language tag assumed for record text.
	DefaultInLanguage = "en"

	// RecordExtension is the file extension every supported schema uses.
	RecordExtension = ".xml"
)
