package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// Renderer formats CLI output, styled or plain.
type Renderer struct {
	styled bool
}

// NewRenderer creates a Renderer for the given mode.
func NewRenderer(mode Mode) *Renderer {
	return &Renderer{styled: mode == ModeStyled}
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Title renders a heading.
func (r *Renderer) Title(s string) string {
	return r.render(TitleStyle, s)
}

// Muted renders secondary text.
func (r *Renderer) Muted(s string) string {
	return r.render(MutedStyle, s)
}

// RecordLine renders one record outcome, e.g. "✓ ./a.xml → out/1.json".
func (r *Renderer) RecordLine(result soso.RecordResult) string {
	switch result.Status {
	case soso.StatusConverted:
		line := r.render(SuccessStyle, SymbolCheck) + " " + result.Path
		if result.Output != "" {
			line += " " + SymbolArrowRight + " " + result.Output
		}
		return line
	case soso.StatusFailed:
		return r.render(ErrorStyle, SymbolCross) + " " + result.Path + ": " + firstLine(result.Error)
	case soso.StatusDuplicate:
		return r.render(MutedStyle, SymbolDuplicate) + " " + result.Path + " " + r.Muted("(duplicate of "+result.DuplicateOf+")")
	default:
		return r.render(WarningStyle, SymbolSkip) + " " + result.Path + " " + r.Muted("(skipped)")
	}
}

// Summary renders the batch totals. Styled output is boxed.
func (r *Renderer) Summary(report *soso.BatchReport) string {
	rows := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"Converted", report.Converted, SuccessStyle},
		{"Failed", report.Failed, ErrorStyle},
		{"Skipped", report.Skipped, WarningStyle},
		{"Duplicate", report.Duplicate, MutedStyle},
	}

	var b strings.Builder
	b.WriteString(r.Title("Batch summary"))
	b.WriteString("\n")
	for _, row := range rows {
		value := fmt.Sprintf("%d", row.value)
		if row.value > 0 {
			value = r.render(row.style, value)
		}
		if r.styled {
			b.WriteString(LabelStyle.Render(row.label) + value + "\n")
		} else {
			fmt.Fprintf(&b, "%-11s%s\n", row.label, value)
		}
	}
	duration := fmt.Sprintf("%-11s%s", "Duration", report.Duration.Round(time.Millisecond))
	b.WriteString(r.Muted(duration))

	if !r.styled {
		return b.String()
	}
	return BoxStyle.Render(b.String())
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
