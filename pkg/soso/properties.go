package soso

// Property binds a SOSO property name to the rule that produces it.
type Property struct {
	Name string
	Rule func(Strategy) any
}

// Properties lists every rule-backed SOSO property in output order.
var Properties = []Property{
	{"name", Strategy.Name},
	{"description", Strategy.Description},
	{"url", Strategy.URL},
	{"sameAs", Strategy.SameAs},
	{"version", Strategy.Version},
	{"isAccessibleForFree", Strategy.IsAccessibleForFree},
	{"keywords", Strategy.Keywords},
	{"identifier", Strategy.Identifier},
	{"citation", Strategy.Citation},
	{"variableMeasured", Strategy.VariableMeasured},
	{"includedInDataCatalog", Strategy.IncludedInDataCatalog},
	{"subjectOf", Strategy.SubjectOf},
	{"distribution", Strategy.Distribution},
	{"potentialAction", Strategy.PotentialAction},
	{"dateCreated", Strategy.DateCreated},
	{"dateModified", Strategy.DateModified},
	{"datePublished", Strategy.DatePublished},
	{"expires", Strategy.Expires},
	{"temporalCoverage", Strategy.TemporalCoverage},
	{"spatialCoverage", Strategy.SpatialCoverage},
	{"creator", Strategy.Creator},
	{"contributor", Strategy.Contributor},
	{"provider", Strategy.Provider},
	{"publisher", Strategy.Publisher},
	{"funding", Strategy.Funding},
	{"license", Strategy.License},
	{"wasRevisionOf", Strategy.WasRevisionOf},
	{"wasDerivedFrom", Strategy.WasDerivedFrom},
	{"isBasedOn", Strategy.IsBasedOn},
	{"wasGeneratedBy", Strategy.WasGeneratedBy},
}

// PropertyNames returns the names from Properties.
func PropertyNames() []string {
	names := make([]string, len(Properties))
	for i, p := range Properties {
		names[i] = p.Name
	}
	return names
}

// Extract evaluates every rule of s and returns the non-absent results.
// The @id key is set when s implements IDProvider.
func Extract(s Strategy) map[string]any {
	out := make(map[string]any, len(Properties)+1)
	for _, p := range Properties {
		if v := DeleteNull(p.Rule(s)); v != nil {
			out[p.Name] = v
		}
	}
	if idp, ok := s.(IDProvider); ok {
		if v := DeleteNull(idp.ID()); v != nil {
			out["@id"] = v
		}
	}
	return out
}
