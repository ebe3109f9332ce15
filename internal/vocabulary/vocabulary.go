// Package vocabulary holds the IRIs and type names of the SOSO profile of
// schema.org, and the identifier registries SOSO documents point at.
package vocabulary

// Namespace IRIs bound in the output @context.
const (
	SchemaOrg  = "https://schema.org/"
	Prov       = "http://www.w3.org/ns/prov#"
	ProvOne    = "http://purl.dataone.org/provone/2015/01/15/ontology#"
	Time       = "http://www.w3.org/2006/time#"
	SSN        = "http://www.w3.org/ns/ssn/"
	SSNSystems = "http://www.w3.org/ns/ssn/systems/"
)

// Context returns a fresh JSON-LD @context object for SOSO Datasets.
func Context() map[string]any {
	return map[string]any{
		"@vocab":     SchemaOrg,
		"prov":       Prov,
		"provone":    ProvOne,
		"time":       Time,
		"ssn":        SSN,
		"ssn-system": SSNSystems,
	}
}

// schema.org types emitted by the crosswalks.
const (
	TypeDataset                    = "Dataset"
	TypeDataDownload               = "DataDownload"
	TypePropertyValue              = "PropertyValue"
	TypePropertyValueSpecification = "PropertyValueSpecification"
	TypeRole                       = "Role"
	TypePerson                     = "Person"
	TypeOrganization               = "Organization"
	TypeCreativeWork               = "CreativeWork"
	TypeSearchAction               = "SearchAction"
	TypeEntryPoint                 = "EntryPoint"
	TypeMonetaryGrant              = "MonetaryGrant"
	TypeDateTime                   = "DateTime"
	TypeIndividualProduct          = "IndividualProduct"
	TypeResearchProject            = "ResearchProject"
	TypeGeoShape                   = "GeoShape"
	TypeDefinedTerm                = "DefinedTerm"

	// TypePlace is written with its prefix, as SOSO spatial examples do.
	TypePlace = "schema:Place"
)

// Identifier registries.
const (
	// DOIRegistry is the propertyID of DOI PropertyValues.
	DOIRegistry = "https://registry.identifiers.org/registry/doi"
	// ORCIDRegistry is the propertyID of ORCiD PropertyValues.
	ORCIDRegistry = "https://registry.identifiers.org/registry/orcid"
	// ORCIDBase prefixes bare ORCiD identifiers.
	ORCIDBase = "https://orcid.org/"
	// RORBase prefixes ROR organization identifiers.
	RORBase = "https://ror.org/"
)
