package soso

// Strategy is the capability contract implemented by every crosswalk.
// Each rule returns nil when the source record has no value for the
// property. Implementations are bound to one parsed document and must be
// safe to call repeatedly: calling a rule twice yields identical output.
type Strategy interface {
	// Schema returns the schema-name tag the strategy was selected by.
	Schema() string
	// SchemaVersion returns the version declared by the record, or "".
	SchemaVersion() string

	Name() any
	Description() any
	URL() any
	SameAs() any
	Version() any
	IsAccessibleForFree() any
	Keywords() any
	Identifier() any
	Citation() any
	VariableMeasured() any
	IncludedInDataCatalog() any
	SubjectOf() any
	Distribution() any
	PotentialAction() any
	DateCreated() any
	DateModified() any
	DatePublished() any
	Expires() any
	TemporalCoverage() any
	SpatialCoverage() any
	Creator() any
	Contributor() any
	Provider() any
	Publisher() any
	Funding() any
	License() any
	WasRevisionOf() any
	WasDerivedFrom() any
	IsBasedOn() any
	WasGeneratedBy() any
}

// IDProvider is implemented by strategies that can name the record itself.
// The value becomes the JSON-LD @id.
type IDProvider interface {
	ID() any
}

// Supplementer is implemented by strategies that can derive properties
// outside the Strategy rule set (instrument, observatory, inLanguage...).
// Supplementary values sit beneath caller overrides.
type Supplementer interface {
	Supplement() map[string]any
}

// AbsentRules answers every rule with nil. Strategies embed it and
// override only the rules their schema can serve.
type AbsentRules struct{}

func (AbsentRules) Name() any                  { return nil }
func (AbsentRules) Description() any           { return nil }
func (AbsentRules) URL() any                   { return nil }
func (AbsentRules) SameAs() any                { return nil }
func (AbsentRules) Version() any               { return nil }
func (AbsentRules) IsAccessibleForFree() any   { return nil }
func (AbsentRules) Keywords() any              { return nil }
func (AbsentRules) Identifier() any            { return nil }
func (AbsentRules) Citation() any              { return nil }
func (AbsentRules) VariableMeasured() any      { return nil }
func (AbsentRules) IncludedInDataCatalog() any { return nil }
func (AbsentRules) SubjectOf() any             { return nil }
func (AbsentRules) Distribution() any          { return nil }
func (AbsentRules) PotentialAction() any       { return nil }
func (AbsentRules) DateCreated() any           { return nil }
func (AbsentRules) DateModified() any          { return nil }
func (AbsentRules) DatePublished() any         { return nil }
func (AbsentRules) Expires() any               { return nil }
func (AbsentRules) TemporalCoverage() any      { return nil }
func (AbsentRules) SpatialCoverage() any       { return nil }
func (AbsentRules) Creator() any               { return nil }
func (AbsentRules) Contributor() any           { return nil }
func (AbsentRules) Provider() any              { return nil }
func (AbsentRules) Publisher() any             { return nil }
func (AbsentRules) Funding() any               { return nil }
func (AbsentRules) License() any               { return nil }
func (AbsentRules) WasRevisionOf() any         { return nil }
func (AbsentRules) WasDerivedFrom() any        { return nil }
func (AbsentRules) IsBasedOn() any             { return nil }
func (AbsentRules) WasGeneratedBy() any        { return nil }
