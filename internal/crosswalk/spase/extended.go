package spase

import (
	"strings"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/crosswalk/names"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// curatorRoles stand in for contributors, highest priority first.
var curatorRoles = []string{"HostContact", "GeneralContact", "DataProducer", "MetadataContact", "TechnicalContact"}

// rorOrganizations maps publisher name fragments to ROR identifiers.
var rorOrganizations = []struct {
	match []string
	id    string
}{
	{match: []string{"SDAC", "Solar Data Analysis Center"}, id: vocabulary.RORBase + "04rvfc379"},
	{match: []string{"SPDF", "Solar Physics Data Facility"}, id: vocabulary.RORBase + "00ryjtt64"},
}

// Association types.
const (
	assocRevisionOf   = "RevisionOf"
	assocDerivedFrom  = "DerivedFrom"
	assocChildEventOf = "ChildEventOf"
	assocOther        = "Other"
	assocPartOf       = "PartOf"
)

func (s *Strategy) Contributor() any {
	if !s.opts.Extended {
		return nil
	}
	rec := s.authorRecord()

	var out []any
	for _, id := range rec.Contributors {
		out = append(out, s.roleEntry("contributor", "Contributor", names.FromIdentifier(id), id))
	}
	if len(out) > 0 {
		return out
	}
	for _, role := range curatorRoles {
		for _, id := range rec.ByRole[role] {
			out = append(out, s.roleEntry("contributor", role, names.FromIdentifier(id), id))
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func (s *Strategy) Publisher() any {
	if !s.opts.Extended {
		return nil
	}
	name := s.publisherName()
	if name == "" {
		return nil
	}
	org := map[string]any{
		"@type": vocabulary.TypeOrganization,
		"name":  name,
	}
	for _, ror := range rorOrganizations {
		for _, m := range ror.match {
			if strings.Contains(name, m) {
				org["@id"] = ror.id
				org["url"] = ror.id
				return org
			}
		}
	}
	return org
}

func (s *Strategy) Funding() any {
	if !s.opts.Extended {
		return nil
	}
	var out []any
	for _, f := range s.descendants("Funding") {
		agency := f.ChildText(s.name("Agency"))
		award := f.ChildText(s.name("AwardNumber"))

		var funder any = map[string]any{"@type": vocabulary.TypeOrganization, "name": agency}
		if org, person, ok := strings.Cut(agency, ";"); ok && award == "" {
			funder = []any{
				map[string]any{"@type": vocabulary.TypeOrganization, "name": strings.TrimSpace(org)},
				map[string]any{"@type": vocabulary.TypePerson, "name": strings.TrimSpace(person)},
			}
		}
		out = append(out, map[string]any{
			"@type":      vocabulary.TypeMonetaryGrant,
			"funder":     funder,
			"identifier": award,
			"name":       f.ChildText(s.name("Project")),
		})
	}
	return soso.DeleteNull(out)
}

// License collects the distinct rightsURI values. One license is a
// string, several are a list.
func (s *Strategy) License() any {
	if !s.opts.Extended {
		return nil
	}
	var uris []string
	seen := make(map[string]bool)
	for _, suffix := range []string{"AccessInformation/rightsList/rights", "AccessInformation/RightsList/Rights"} {
		for _, e := range s.all(suffix) {
			uri, _ := e.Attribute("rightsURI")
			if uri == "" || seen[uri] {
				continue
			}
			seen[uri] = true
			uris = append(uris, uri)
		}
	}
	return crosswalk.OneOrMany(uris)
}

func (s *Strategy) WasRevisionOf() any {
	if !s.opts.Extended {
		return nil
	}
	return s.associations(assocRevisionOf)
}

func (s *Strategy) WasDerivedFrom() any {
	if !s.opts.Extended {
		return nil
	}
	return s.associations(assocDerivedFrom, assocChildEventOf)
}

func (s *Strategy) IsBasedOn() any {
	return s.WasDerivedFrom()
}

// associations returns {"@id": id} for every Association of the given
// types; a single match is returned bare.
func (s *Strategy) associations(types ...string) any {
	var out []any
	for _, a := range s.descendants("Association") {
		kind := a.ChildText(s.name("AssociationType"))
		matched := false
		for _, t := range types {
			if kind == t {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, id := range a.ChildTexts(s.name("AssociationID")) {
			out = append(out, map[string]any{"@id": id})
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return out
}

func (s *Strategy) informationURLs() []map[string]any {
	return informationURLs(s.doc)
}
