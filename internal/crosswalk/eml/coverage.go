package eml

import (
	"strings"

	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const openEnd = ".."

// TemporalCoverage is "begin/end" from rangeOfDates, or the first single
// date.
func (s *Strategy) TemporalCoverage() any {
	for _, tc := range s.all("coverage/temporalCoverage") {
		begin := s.textWithin(tc, "rangeOfDates/beginDate/calendarDate")
		end := s.textWithin(tc, "rangeOfDates/endDate/calendarDate")
		if begin != "" {
			if end == "" {
				end = openEnd
			}
			return begin + "/" + end
		}
		if single := s.textWithin(tc, "singleDateTime/calendarDate"); single != "" {
			return single
		}
	}
	return nil
}

// SpatialCoverage lists a Place per geographicCoverage, with a GeoShape
// box "south west north east" when all four bounds are given.
func (s *Strategy) SpatialCoverage() any {
	var out []any
	for _, gc := range s.all("coverage/geographicCoverage") {
		place := map[string]any{
			"@type":       vocabulary.TypePlace,
			"description": s.textWithin(gc, "geographicDescription"),
		}

		bounds := make([]string, 0, 4)
		for _, b := range []string{"south", "west", "north", "east"} {
			if v := s.textWithin(gc, "boundingCoordinates/"+b+"BoundingCoordinate"); v != "" {
				bounds = append(bounds, v)
			}
		}
		if len(bounds) == 4 {
			place["geo"] = map[string]any{
				"@type": vocabulary.TypeGeoShape,
				"box":   strings.Join(bounds, " "),
			}
		}
		out = append(out, place)
	}
	return soso.DeleteNull(out)
}
