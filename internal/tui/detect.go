// Package tui decides how CLI summaries are rendered and holds the
// lipgloss styles they use.
package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how summaries are rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading a terminal.
	ModeStyled
)

// DetectMode determines whether output written to out should be styled.
//
// Returns ModePlain if:
//   - SOSO_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - out is nil or not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(out *os.File) Mode {
	if os.Getenv("SOSO_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// IsStyled is a convenience function that returns true if output to out
// should be styled.
func IsStyled(out *os.File) bool {
	return DetectMode(out) == ModeStyled
}
