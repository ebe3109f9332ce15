package spase

import (
	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const (
	defaultLanguage = "en"

	tagObservatoryID      = "ObservatoryID"
	tagObservatoryGroupID = "ObservatoryGroupID"
)

// Supplement returns the properties SPASE records carry beyond the
// crosswalk rules. Caller overrides take precedence over these.
func (s *Strategy) Supplement() map[string]any {
	out := map[string]any{
		"alternateName": crosswalk.Optional(s.text("ResourceHeader/AlternateName")),
		"inLanguage":    defaultLanguage,
		"isRelatedTo":   s.associations(assocOther),
		"isPartOf":      s.associations(assocPartOf),
	}
	if cadence := s.timeSpan().cadence; cadence != "" {
		out["temporal"] = soso.DeleteNull([]any{CadenceSentence(cadence), cadence})
	}
	if terms := s.texts("MeasurementType"); len(terms) > 0 {
		out["measurementTechnique"] = map[string]any{
			"@type":    vocabulary.TypeDefinedTerm,
			"keywords": terms,
		}
	}

	instruments := s.instruments()
	if len(instruments) > 0 {
		var list []any
		for _, in := range instruments {
			list = append(list, map[string]any{
				"@type":      vocabulary.TypeIndividualProduct,
				"identifier": in.ID,
				"name":       in.Name,
				"url":        in.URLs,
			})
		}
		out["instrument"] = list
		out["observatory"] = s.observatories(instruments)
	}

	cleaned, _ := soso.DeleteNull(out).(map[string]any)
	return cleaned
}

func (s *Strategy) instruments() []linkedResource {
	var out []linkedResource
	seen := make(map[string]bool)
	for _, id := range s.texts("InstrumentID") {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, s.resolveResource(id, tagObservatoryID))
	}
	return out
}

// observatories follows instruments to their observatory records and
// those to observatory groups. Groups are listed before the observatory
// that names them.
func (s *Strategy) observatories(instruments []linkedResource) any {
	var out []any
	recorded := make(map[string]bool)
	add := func(r linkedResource) {
		if recorded[r.ID] {
			return
		}
		recorded[r.ID] = true
		out = append(out, map[string]any{
			"@type": vocabulary.TypeResearchProject,
			"@id":   r.ID,
			"name":  r.Name,
			"url":   r.URLs,
		})
	}

	for _, in := range instruments {
		if in.Parent == "" {
			continue
		}
		obs := s.resolveResource(in.Parent, tagObservatoryGroupID)
		if obs.Parent != "" {
			add(s.resolveResource(obs.Parent, ""))
		}
		add(obs)
	}
	return soso.DeleteNull(out)
}
