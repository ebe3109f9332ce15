package spase

import (
	"strings"

	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// isoDateTimePattern constrains the time parameters of HAPI endpoints.
const isoDateTimePattern = `(-?(?:[1-9][0-9]*)?[0-9]{4})-(1[0-2]|0[1-9])-(3[01]|0[1-9]|[12][0-9])T(2[0-3]|[01][0-9]):([0-5][0-9]):([0-5][0-9])(.[0-9]+)?(Z)?`

// hapiMarker identifies HAPI server URLs.
const hapiMarker = "/hapi"

// AccessPoint is one AccessURL/URL with the format of its enclosing
// AccessInformation block.
type AccessPoint struct {
	URL         string
	Format      string
	ProductKeys []string
}

// AccessURLs partitions a record's access points. Downloads have no
// product keys; Actions need a key selected before data can be fetched.
type AccessURLs struct {
	Downloads []AccessPoint
	Actions   []AccessPoint
}

func (s *Strategy) accessURLs() AccessURLs {
	s.accessOnce.Do(func() {
		s.access = s.classifyAccess()
	})
	return s.access
}

func (s *Strategy) classifyAccess() AccessURLs {
	var points []AccessPoint
	index := make(map[string]int)

	for _, info := range s.all("AccessInformation") {
		format := info.ChildText(s.name("Format"))
		for _, accessURL := range info.Children {
			if accessURL.Name != s.name("AccessURL") {
				continue
			}

			// URLs come before the product keys that belong to them
			var current []int
			for _, child := range accessURL.Children {
				switch child.Name {
				case s.name("URL"):
					url := child.Content()
					if url == "" {
						continue
					}
					point := AccessPoint{URL: url, Format: format}
					if i, seen := index[url]; seen {
						points[i] = point
						current = append(current, i)
						continue
					}
					index[url] = len(points)
					current = append(current, len(points))
					points = append(points, point)
				case s.name("ProductKey"):
					key := strings.ReplaceAll(child.Content(), `"`, "")
					if key == "" {
						continue
					}
					for _, i := range current {
						points[i].ProductKeys = append(points[i].ProductKeys, key)
					}
				}
			}
		}
	}

	var out AccessURLs
	for _, p := range points {
		if len(p.ProductKeys) == 0 {
			out.Downloads = append(out.Downloads, p)
		} else {
			out.Actions = append(out.Actions, p)
		}
	}
	return out
}

// Distribution lists a DataDownload per access point: direct downloads
// first, then the keyed access points with their format only.
func (s *Strategy) Distribution() any {
	access := s.accessURLs()
	var out []any
	for _, group := range [][]AccessPoint{access.Downloads, access.Actions} {
		for _, p := range group {
			out = append(out, map[string]any{
				"@type":          vocabulary.TypeDataDownload,
				"contentUrl":     p.URL,
				"encodingFormat": p.Format,
			})
		}
	}
	return soso.DeleteNull(out)
}

// PotentialAction offers one SearchAction per access point and product
// key. HAPI servers get a templated EntryPoint taking the time range.
func (s *Strategy) PotentialAction() any {
	start, end := s.timeSpan().defaults()

	var out []any
	for _, p := range s.accessURLs().Actions {
		for _, key := range p.ProductKeys {
			if strings.Contains(p.URL, hapiMarker) {
				out = append(out, hapiAction(p, key, start, end))
				continue
			}
			out = append(out, map[string]any{
				"@type": vocabulary.TypeSearchAction,
				"target": map[string]any{
					"@type":          vocabulary.TypeEntryPoint,
					"url":            p.URL,
					"encodingFormat": p.Format,
					"description":    "Download dataset data as " + p.Format + " file at this URL",
				},
				"query": key,
			})
		}
	}
	return soso.DeleteNull(out)
}

func hapiAction(p AccessPoint, key, start, end string) map[string]any {
	base := strings.TrimSuffix(p.URL, "/")
	return map[string]any{
		"@type": vocabulary.TypeSearchAction,
		"target": map[string]any{
			"@type":       vocabulary.TypeEntryPoint,
			"contentType": p.Format,
			"urlTemplate": base + "/data?id=" + key + "&time.min={start}&time.max={end}",
			"description": "Download dataset labeled by id in CSV format based on the requested start and end dates",
			"httpMethod":  "GET",
		},
		"query-input": []any{
			timeParameter("start", start),
			timeParameter("end", end),
		},
	}
}

func timeParameter(name, def string) map[string]any {
	description := "A UTC ISO DateTime."
	if def != "" {
		description += " Use " + def + " as default value."
	}
	return map[string]any{
		"@type":         vocabulary.TypePropertyValueSpecification,
		"valueName":     name,
		"description":   description,
		"valueRequired": false,
		"valuePattern":  isoDateTimePattern,
	}
}
