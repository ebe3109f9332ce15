package eml

import (
	"strings"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const creatorRole = "Creator"

// party renders an EML ResponsibleParty as a Person, or an Organization
// when no individual is named.
func (s *Strategy) party(e *xmldoc.Element) map[string]any {
	given := strings.Join(textsOf(s.within(e, "individualName/givenName")), " ")
	family := s.textWithin(e, "individualName/surName")
	org := s.textWithin(e, "organizationName")

	if family == "" {
		name := org
		if name == "" {
			name = s.textWithin(e, "positionName")
		}
		return map[string]any{
			"@type": vocabulary.TypeOrganization,
			"name":  name,
			"email": s.textWithin(e, "electronicMailAddress"),
		}
	}

	person := map[string]any{
		"@type":      vocabulary.TypePerson,
		"name":       strings.TrimSpace(given + " " + family),
		"givenName":  given,
		"familyName": family,
		"email":      s.textWithin(e, "electronicMailAddress"),
	}
	if org != "" {
		person["affiliation"] = map[string]any{"@type": vocabulary.TypeOrganization, "name": org}
	}
	for _, uid := range s.within(e, "userId") {
		if dir, _ := uid.Attribute("directory"); strings.Contains(dir, "orcid") && uid.Content() != "" {
			person["identifier"] = crosswalk.ORCIDIdentifier(uid.Content())
			break
		}
	}
	return person
}

func textsOf(elems []*xmldoc.Element) []string {
	var out []string
	for _, e := range elems {
		if t := e.Content(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *Strategy) roles(path, key string, role func(*xmldoc.Element) string) any {
	var out []any
	for _, e := range s.all(path) {
		out = append(out, map[string]any{
			"@type":    vocabulary.TypeRole,
			"roleName": role(e),
			key:        s.party(e),
		})
	}
	return soso.DeleteNull(out)
}

func (s *Strategy) Creator() any {
	return s.roles("creator", "creator", func(*xmldoc.Element) string { return creatorRole })
}

// Contributor lists associated parties with their declared role.
func (s *Strategy) Contributor() any {
	return s.roles("associatedParty", "contributor", func(e *xmldoc.Element) string {
		return s.textWithin(e, "role")
	})
}

func (s *Strategy) Publisher() any {
	p := s.all("publisher")
	if len(p) == 0 {
		return nil
	}
	return soso.DeleteNull(s.party(p[0]))
}

// Funding lists a MonetaryGrant per project award.
func (s *Strategy) Funding() any {
	var out []any
	for _, a := range s.all("project/award") {
		funder := map[string]any{
			"@type": vocabulary.TypeOrganization,
			"name":  s.textWithin(a, "funderName"),
		}
		if ids := textsOf(s.within(a, "funderIdentifier")); len(ids) > 0 {
			funder["identifier"] = ids[0]
		}
		out = append(out, map[string]any{
			"@type":      vocabulary.TypeMonetaryGrant,
			"funder":     funder,
			"identifier": s.textWithin(a, "awardNumber"),
			"name":       s.textWithin(a, "title"),
			"url":        s.textWithin(a, "awardUrl"),
		})
	}
	return soso.DeleteNull(out)
}
