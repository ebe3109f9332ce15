package crosswalk

import (
	"strings"

	"github.com/sosocrosswalk/soso/internal/vocabulary"
)

// Optional returns s, or nil when s is empty.
func Optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// OneOrMany returns nil, the single value, or the whole list.
func OneOrMany(values []string) any {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	}
	return values
}

// IsDOI reports whether a url or identifier names a DOI. The match is
// case-sensitive: landing pages such as https://hpde.io/NASA/DOI/X are
// not DOIs.
func IsDOI(s string) bool {
	return strings.Contains(s, "doi")
}

// DOIIdentifier builds the PropertyValue for a DOI url. The value is
// "doi:" followed by everything after the host.
func DOIIdentifier(url string) map[string]any {
	parts := strings.Split(url, "/")
	var path string
	if len(parts) > 3 {
		path = strings.Join(parts[3:], "/")
	}
	return map[string]any{
		"@id":        url,
		"@type":      vocabulary.TypePropertyValue,
		"propertyID": vocabulary.DOIRegistry,
		"value":      "doi:" + path,
		"url":        url,
	}
}

// ORCIDIdentifier builds the PropertyValue for an ORCiD given bare or as
// a url.
func ORCIDIdentifier(orcid string) map[string]any {
	url := orcid
	if !strings.HasPrefix(orcid, "http") {
		url = vocabulary.ORCIDBase + strings.TrimPrefix(orcid, "/")
	}
	value := url[strings.LastIndex(url, "/")+1:]
	return map[string]any{
		"@id":        url,
		"@type":      vocabulary.TypePropertyValue,
		"propertyID": vocabulary.ORCIDRegistry,
		"url":        url,
		"value":      "orcid:" + value,
	}
}
