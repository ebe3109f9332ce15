package xmldoc

import (
	"encoding/xml"
	"fmt"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// FormatError reports an input path that does not carry the extension the
// schema expects.
type FormatError struct {
	FilePath string
	Expected string
	Schema   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error in %s: %s records must end in %s\n\nHint: pass the record file itself, not a directory or a converted output",
		e.FilePath, e.Schema, e.Expected)
}

func (e *FormatError) Unwrap() error { return soso.ErrFormat }

// ParseError represents malformed record content with position and a hint.
type ParseError struct {
	FilePath string
	Line     int // 0 if unknown
	Message  string
	Hint     string
}

func (e *ParseError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("parse error in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

func (e *ParseError) Unwrap() error { return soso.ErrParse }

// wrapXMLError converts decoder errors to ParseError with line numbers.
func wrapXMLError(err error, filePath string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &ParseError{
			FilePath: filePath,
			Line:     syntaxErr.Line,
			Message:  syntaxErr.Msg,
			Hint:     "Check that all tags are properly closed and attribute values are quoted.",
		}
	}

	return &ParseError{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     "Verify the file is an XML metadata record and its declared encoding is correct.",
	}
}
