package spase

import (
	"strings"
	"time"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
)

// dateLayout is the form every SPASE date is normalized to.
const dateLayout = "2006-01-02T15:04:05"

// NormalizeDate rewrites a SPASE date-time as YYYY-MM-DDTHH:MM:SS,
// dropping a trailing Z and fractional seconds. A bare date gets midnight.
// Values that do not parse yield "".
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	date, clock, _ := strings.Cut(value, "T")
	clock = strings.TrimSuffix(clock, "Z")
	clock, _, _ = strings.Cut(clock, ".")
	if clock == "" {
		clock = "00:00:00"
	}

	t, err := time.Parse(dateLayout, date+"T"+clock)
	if err != nil {
		return ""
	}
	return t.Format(dateLayout)
}

// DateModified is the record's ReleaseDate.
func (s *Strategy) DateModified() any {
	return crosswalk.Optional(s.dateModified())
}

func (s *Strategy) dateModified() string {
	return NormalizeDate(s.text("ResourceHeader/ReleaseDate"))
}

// DatePublished is the PublicationInfo date, else the earliest revision.
func (s *Strategy) DatePublished() any {
	return crosswalk.Optional(s.datePublished())
}

func (s *Strategy) datePublished() string {
	if published := NormalizeDate(s.authorRecord().PublicationDate); published != "" {
		return published
	}

	var earliest string
	for _, raw := range s.texts("ResourceHeader/RevisionHistory/RevisionEvent/ReleaseDate") {
		// normalized dates order lexically
		if d := NormalizeDate(raw); d != "" && (earliest == "" || d < earliest) {
			earliest = d
		}
	}
	return earliest
}

// DateCreated mirrors DatePublished in extended mode.
func (s *Strategy) DateCreated() any {
	if !s.opts.Extended {
		return nil
	}
	return s.DatePublished()
}

// year returns the first four characters of a date.
func year(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
