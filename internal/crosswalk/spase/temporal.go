package spase

import (
	"fmt"
	"regexp"
	"time"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
)

// openEnd marks a time span without a stop date.
const openEnd = ".."

type timeSpan struct {
	start, stop, cadence string
}

func (s *Strategy) timeSpan() timeSpan {
	return timeSpan{
		start:   s.text("TemporalDescription/TimeSpan/StartDate"),
		stop:    s.text("TemporalDescription/TimeSpan/StopDate"),
		cadence: s.text("TemporalDescription/Cadence"),
	}
}

func (t timeSpan) coverage() string {
	if t.start == "" {
		return ""
	}
	if t.stop == "" {
		return t.start + "/" + openEnd
	}
	return t.start + "/" + t.stop
}

// TemporalCoverage is "start/stop" (or "start/.."), wrapped in a DateTime
// object carrying the cadence when one is declared.
func (s *Strategy) TemporalCoverage() any {
	span := s.timeSpan()
	coverage := span.coverage()
	if coverage == "" {
		return nil
	}
	if span.cadence == "" {
		return coverage
	}
	return map[string]any{
		"@type":            vocabulary.TypeDateTime,
		"temporalCoverage": coverage,
		"temporal": map[string]any{
			"temporal":    span.cadence,
			"description": crosswalk.Optional(CadenceSentence(span.cadence)),
		},
	}
}

var durationPattern = regexp.MustCompile(
	`^P(?:([\d.]+)Y)?(?:([\d.]+)M)?(?:([\d.]+)W)?(?:([\d.]+)D)?(?:T(?:([\d.]+)H)?(?:([\d.]+)M)?(?:([\d.]+)S)?)?$`)

var durationUnits = []string{"year", "month", "week", "day", "hour", "minute", "second"}

// CadenceSentence explains an ISO-8601 duration by its largest unit:
// "PT4S" → "The time series is periodic with a 4 second cadence".
// Unrecognised values yield "".
func CadenceSentence(cadence string) string {
	m := durationPattern.FindStringSubmatch(cadence)
	if m == nil {
		return ""
	}
	for i, unit := range durationUnits {
		if v := m[i+1]; v != "" {
			return fmt.Sprintf("The time series is periodic with a %s %s cadence", v, unit)
		}
	}
	return ""
}

// defaults returns the start and end offered as defaults for
// time-parameterised access. An open span ends one second after it starts.
func (t timeSpan) defaults() (start, end string) {
	start = t.start
	if start == "" {
		return "", ""
	}
	if t.stop != "" {
		return start, t.stop
	}
	parsed, err := time.Parse(dateLayout, NormalizeDate(start))
	if err != nil {
		return start, ""
	}
	return start, parsed.Add(time.Second).Format(dateLayout)
}
