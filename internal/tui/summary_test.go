package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

func TestRecordLine_Plain(t *testing.T) {
	r := NewRenderer(ModePlain)

	tests := []struct {
		name   string
		result soso.RecordResult
		want   string
	}{
		{
			name:   "converted to file",
			result: soso.RecordResult{Path: "a.xml", Status: soso.StatusConverted, Output: "out/1.json"},
			want:   "✓ a.xml → out/1.json",
		},
		{
			name:   "converted to stdout",
			result: soso.RecordResult{Path: "a.xml", Status: soso.StatusConverted},
			want:   "✓ a.xml",
		},
		{
			name:   "failed keeps first line",
			result: soso.RecordResult{Path: "b.xml", Status: soso.StatusFailed, Error: "parse error in b.xml\n\nHint: close tags"},
			want:   "✗ b.xml: parse error in b.xml",
		},
		{
			name:   "duplicate",
			result: soso.RecordResult{Path: "c.xml", Status: soso.StatusDuplicate, DuplicateOf: "a.xml"},
			want:   "= c.xml (duplicate of a.xml)",
		},
		{
			name:   "skipped",
			result: soso.RecordResult{Path: "d.xml", Status: soso.StatusSkipped},
			want:   "- d.xml (skipped)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RecordLine(tt.result); got != tt.want {
				t.Errorf("RecordLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary_Plain(t *testing.T) {
	r := NewRenderer(ModePlain)
	report := &soso.BatchReport{Converted: 3, Failed: 1, Duplicate: 2, Duration: 1500 * time.Millisecond}

	got := r.Summary(report)
	want := strings.Join([]string{
		"Batch summary",
		"Converted  3",
		"Failed     1",
		"Skipped    0",
		"Duplicate  2",
		"Duration   1.5s",
	}, "\n")

	if got != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", got, want)
	}
}

func TestSummary_StyledIsBoxed(t *testing.T) {
	r := NewRenderer(ModeStyled)
	got := r.Summary(&soso.BatchReport{Converted: 1})

	if !strings.Contains(got, "╭") || !strings.Contains(got, "Converted") {
		t.Errorf("styled summary should be boxed, got:\n%s", got)
	}
}
