package spase

import (
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const windRecord = "testdata/NASA/NumericalData/Wind/MFI/PT1M.xml"

const minimalRecord = `<?xml version="1.0" encoding="UTF-8"?>
<Spase xmlns="http://www.spase-group.org/data/schema">
  <Version>2.6.1</Version>
  <NumericalData>
    <ResourceID>spase://NASA/Test/1</ResourceID>
    <ResourceHeader>
      <ResourceName>Test</ResourceName>
      <Contact>
        <PersonID>spase://SMWG/Person/J.Smith</PersonID>
        <Role>PrincipalInvestigator</Role>
      </Contact>
    </ResourceHeader>
    <Parameter>
      <Name>B_x</Name>
      <Units>nT</Units>
    </Parameter>
  </NumericalData>
</Spase>`

func parse(t *testing.T, record string) *Strategy {
	t.Helper()
	doc, err := xmldoc.Parse(strings.NewReader(record), "record.xml", Schema)
	require.NoError(t, err)
	return New(doc, crosswalk.Options{})
}

// header wraps ResourceHeader content in a NumericalData record.
func header(content string) string {
	return `<Spase xmlns="http://www.spase-group.org/data/schema"><Version>2.6.1</Version>
<NumericalData><ResourceID>spase://NASA/Test/1</ResourceID>
<ResourceHeader>` + content + `</ResourceHeader></NumericalData></Spase>`
}

func body(content string) string {
	return `<Spase xmlns="http://www.spase-group.org/data/schema"><Version>2.6.1</Version>
<NumericalData><ResourceID>spase://NASA/Test/1</ResourceID>` + content + `</NumericalData></Spase>`
}

func loadWind(t *testing.T, extended bool) *Strategy {
	t.Helper()
	fsys := filesystem.NewOSFileSystem()
	s, _, err := crosswalk.Open(fsys, windRecord, "spase", crosswalk.Options{Extended: extended})
	require.NoError(t, err)
	require.IsType(t, &Strategy{}, s)
	return s.(*Strategy)
}

func TestMinimalRecord(t *testing.T) {
	s := parse(t, minimalRecord)

	assert.Equal(t, "https://hpde.io/NASA/Test/1", s.URL())
	assert.Equal(t, s.URL(), s.Identifier())
	assert.Equal(t, "spase://NASA/Test/1", s.ID())
	assert.Equal(t, "2.6.1", s.SchemaVersion())

	assert.Equal(t, []any{
		map[string]any{
			"@type":    vocabulary.TypeRole,
			"roleName": "PrincipalInvestigator",
			"creator": map[string]any{
				"@type":      vocabulary.TypePerson,
				"name":       "J Smith",
				"givenName":  "J",
				"familyName": "Smith",
			},
		},
	}, s.Creator())

	assert.Equal(t, []any{
		map[string]any{
			"@type":    vocabulary.TypePropertyValue,
			"name":     "B_x",
			"unitText": "nT",
		},
	}, s.VariableMeasured())
}

func TestMinimalRecord_MissingFieldsAreAbsent(t *testing.T) {
	s := parse(t, minimalRecord)

	assert.Nil(t, s.Description())
	assert.Nil(t, s.SameAs())
	assert.Nil(t, s.Keywords())
	assert.Nil(t, s.Distribution())
	assert.Nil(t, s.PotentialAction())
	assert.Nil(t, s.TemporalCoverage())
	assert.Nil(t, s.SpatialCoverage())
	assert.Nil(t, s.DateModified())
	assert.Nil(t, s.DatePublished())

	props := soso.Extract(s)
	for _, absent := range []string{"version", "license", "funding", "contributor", "publisher",
		"provider", "wasRevisionOf", "wasDerivedFrom", "isBasedOn", "wasGeneratedBy",
		"includedInDataCatalog", "subjectOf", "dateCreated", "expires"} {
		assert.NotContains(t, props, absent)
	}
	assert.Equal(t, "spase://NASA/Test/1", props["@id"])
}

func TestIdentifier_LandingPageIsNotDOI(t *testing.T) {
	s := parse(t, `<Spase xmlns="http://www.spase-group.org/data/schema"><Version>2.6.1</Version>
<NumericalData><ResourceID>spase://NASA/DOI/Test</ResourceID>
<ResourceHeader><ResourceName>Test</ResourceName></ResourceHeader></NumericalData></Spase>`)

	assert.Equal(t, "https://hpde.io/NASA/DOI/Test", s.URL())
	assert.Equal(t, s.URL(), s.Identifier())
}

func TestVariableMeasured_NonFiniteBounds(t *testing.T) {
	s := parse(t, body(`<Parameter><Name>flag</Name><ValidMin>-Inf</ValidMin><ValidMax>NaN</ValidMax></Parameter>
<Parameter><Name>count</Name><ValidMin>0</ValidMin><ValidMax>+Inf</ValidMax></Parameter>`))

	assert.Equal(t, []any{
		map[string]any{
			"@type":    vocabulary.TypePropertyValue,
			"name":     "flag",
			"minValue": "-Inf",
			"maxValue": "NaN",
		},
		map[string]any{
			"@type":    vocabulary.TypePropertyValue,
			"name":     "count",
			"minValue": float64(0),
			"maxValue": "+Inf",
		},
	}, s.VariableMeasured())

	_, err := json.Marshal(soso.Extract(s))
	require.NoError(t, err)
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	root := `<Spase xmlns="` + Namespace + `">`
	assert.True(t, f.CanParse([]byte(root)))
	assert.True(t, f.CanParse([]byte("\xEF\xBB\xBF\n"+root)))
	assert.False(t, f.CanParse([]byte(`{"Spase": {}}`)))
	assert.False(t, f.CanParse(nil))
}

func TestRulesAreRepeatable(t *testing.T) {
	s := loadWind(t, true)
	assert.Equal(t, soso.Extract(s), soso.Extract(s))
}

func TestNoRecordRoot(t *testing.T) {
	s := parse(t, `<Spase xmlns="http://www.spase-group.org/data/schema"><Version>2.6.1</Version></Spase>`)

	assert.Nil(t, s.Name())
	assert.Nil(t, s.URL())
	assert.Nil(t, s.Citation())
	assert.Nil(t, s.Creator())
	assert.Empty(t, soso.Extract(s))
}

func TestRecordRootVariesByKind(t *testing.T) {
	s := parse(t, `<Spase xmlns="http://www.spase-group.org/data/schema"><Version>2.6.1</Version>
<DisplayData><ResourceID>spase://NASA/Display/1</ResourceID>
<ResourceHeader><ResourceName>Plots</ResourceName></ResourceHeader></DisplayData></Spase>`)

	assert.Equal(t, "Plots", s.Name())
	assert.Equal(t, "https://hpde.io/NASA/Display/1", s.URL())
}

func TestQueriesIgnoreForeignNamespaces(t *testing.T) {
	s := parse(t, `<Spase xmlns="http://www.spase-group.org/data/schema" xmlns:x="urn:x"><Version>2.6.1</Version>
<NumericalData><ResourceID>spase://NASA/Test/1</ResourceID>
<Keyword>wind</Keyword><x:Keyword>ignored</x:Keyword></NumericalData></Spase>`)

	assert.Equal(t, "wind", s.Keywords())
}

func TestWindRecord(t *testing.T) {
	s := loadWind(t, false)

	assert.Equal(t, "Wind MFI Magnetic Field, 1 min", s.Name())
	assert.Equal(t, "https://doi.org/10.48322/b8hp-4k59", s.URL())
	assert.Equal(t, map[string]any{
		"@id":        "https://doi.org/10.48322/b8hp-4k59",
		"@type":      vocabulary.TypePropertyValue,
		"propertyID": vocabulary.DOIRegistry,
		"value":      "doi:10.48322/b8hp-4k59",
		"url":        "https://doi.org/10.48322/b8hp-4k59",
	}, s.Identifier())
	assert.Equal(t, []string{"spase://VSPO/NumericalData/Wind/MFI/PT1M"}, s.SameAs())
	assert.Equal(t, "magnetic field, solar wind", s.Keywords())
	assert.Equal(t, "2023-05-02T12:34:56", s.DateModified())
	assert.Equal(t, "2019-05-01T00:00:00", s.DatePublished())
	assert.Nil(t, s.DateCreated())

	assert.Equal(t, "Szabo, A. (2023). NASA/GSFC/SPDF. https://doi.org/10.48322/b8hp-4k59", s.Citation())

	assert.Equal(t, map[string]any{
		"@type":            vocabulary.TypeDateTime,
		"temporalCoverage": "1994-11-12T00:00:00Z/2024-01-01T00:00:00Z",
		"temporal": map[string]any{
			"temporal":    "PT1M",
			"description": "The time series is periodic with a 1 minute cadence",
		},
	}, s.TemporalCoverage())

	assert.Equal(t, []any{
		map[string]any{
			"@type":         vocabulary.TypePlace,
			"identifier":    regionBase + "HELIOSPHERE_NEAREARTH",
			"alternateName": "Heliosphere.NearEarth",
		},
	}, s.SpatialCoverage())

	assert.Equal(t, []any{
		map[string]any{
			"@type":       vocabulary.TypePropertyValue,
			"name":        "BGSE",
			"description": "Magnetic field vector in GSE coordinates",
			"unitText":    "nT",
			"minValue":    float64(-65534),
			"maxValue":    float64(65534),
		},
		map[string]any{
			"@type":       vocabulary.TypePropertyValue,
			"name":        "Epoch",
			"description": "Time tag",
		},
	}, s.VariableMeasured())

	creators := s.Creator().([]any)
	require.Len(t, creators, 1)
	person := creators[0].(map[string]any)["creator"].(map[string]any)
	assert.Equal(t, "Adam Szabo", person["name"])
	assert.NotContains(t, person, "affiliation")
	assert.NotContains(t, person, "identifier")

	assert.Nil(t, s.Contributor())
	assert.Nil(t, s.Publisher())
	assert.Nil(t, s.License())
	assert.Nil(t, s.Funding())
	assert.Nil(t, s.IsBasedOn())
}

func TestWindRecord_Extended(t *testing.T) {
	s := loadWind(t, true)

	assert.Equal(t, "2019-05-01T00:00:00", s.DateCreated())

	assert.Equal(t, map[string]any{
		"@type":    vocabulary.TypeCreativeWork,
		"citation": "Szabo, A. (2023). NASA/GSFC/SPDF. https://doi.org/10.48322/b8hp-4k59",
		"about": []map[string]any{{
			"name":        "Wind MFI instrument page",
			"url":         "https://wind.nasa.gov/mfi_instrument.php",
			"description": "Instrument description and data notes",
		}},
	}, s.Citation())

	creators := s.Creator().([]any)
	require.Len(t, creators, 1)
	person := creators[0].(map[string]any)["creator"].(map[string]any)
	assert.Equal(t, map[string]any{
		"@type": vocabulary.TypeOrganization,
		"name":  "NASA Goddard Space Flight Center",
	}, person["affiliation"])
	assert.Equal(t, map[string]any{
		"@id":        "https://orcid.org/0000-0003-3255-9071",
		"@type":      vocabulary.TypePropertyValue,
		"propertyID": vocabulary.ORCIDRegistry,
		"url":        "https://orcid.org/0000-0003-3255-9071",
		"value":      "orcid:0000-0003-3255-9071",
	}, person["identifier"])

	assert.Equal(t, []any{
		map[string]any{
			"@type":    vocabulary.TypeRole,
			"roleName": "Contributor",
			"contributor": map[string]any{
				"@type":      vocabulary.TypePerson,
				"name":       "Ronald P. Lepping",
				"givenName":  "Ronald P.",
				"familyName": "Lepping",
			},
		},
	}, s.Contributor())

	assert.Equal(t, map[string]any{
		"@id":   "https://ror.org/00ryjtt64",
		"@type": vocabulary.TypeOrganization,
		"name":  "NASA/GSFC/SPDF",
		"url":   "https://ror.org/00ryjtt64",
	}, s.Publisher())

	assert.Equal(t, []any{
		map[string]any{
			"@type":      vocabulary.TypeMonetaryGrant,
			"funder":     map[string]any{"@type": vocabulary.TypeOrganization, "name": "NASA"},
			"identifier": "80NSSC20K1234",
			"name":       "Heliophysics Guest Investigators",
		},
	}, s.Funding())

	assert.Equal(t, "https://creativecommons.org/licenses/by/4.0/", s.License())
	assert.Nil(t, s.WasRevisionOf())
	assert.Equal(t, map[string]any{"@id": "spase://NASA/NumericalData/Wind/MFI/PT3S"}, s.WasDerivedFrom())
	assert.Equal(t, s.WasDerivedFrom(), s.IsBasedOn())
}

func TestWindRecord_Supplement(t *testing.T) {
	s := loadWind(t, false)

	assert.Equal(t, map[string]any{
		"alternateName": "WI_H0_MFI",
		"inLanguage":    "en",
		"isRelatedTo":   map[string]any{"@id": "spase://NASA/NumericalData/Wind/MFI/PT1H"},
		"temporal":      []any{"The time series is periodic with a 1 minute cadence", "PT1M"},
		"measurementTechnique": map[string]any{
			"@type":    vocabulary.TypeDefinedTerm,
			"keywords": []string{"MagneticField"},
		},
		"instrument": []any{
			map[string]any{
				"@type":      vocabulary.TypeIndividualProduct,
				"identifier": "spase://SMWG/Instrument/Wind/MFI",
				"name":       "Wind Magnetic Field Investigation",
				"url":        []string{"https://wind.nasa.gov/mfi.php"},
			},
		},
		"observatory": []any{
			map[string]any{
				"@type": vocabulary.TypeResearchProject,
				"@id":   "spase://SMWG/Observatory/ISTP",
				"name":  "International Solar-Terrestrial Physics",
			},
			map[string]any{
				"@type": vocabulary.TypeResearchProject,
				"@id":   "spase://SMWG/Observatory/Wind",
				"name":  "Wind",
				"url":   []string{"https://wind.nasa.gov/"},
			},
		},
	}, s.Supplement())
}

func TestSupplement_UnresolvedInstrument(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/repo")
	mfs.AddFile("NASA/Test/1.xml", body(`<InstrumentID>spase://SMWG/Instrument/Missing</InstrumentID>`))

	s, _, err := crosswalk.Open(mfs, "/repo/NASA/Test/1.xml", "spase", crosswalk.Options{})
	require.NoError(t, err)

	supplement := s.(soso.Supplementer).Supplement()
	assert.Equal(t, []any{
		map[string]any{
			"@type":      vocabulary.TypeIndividualProduct,
			"identifier": "spase://SMWG/Instrument/Missing",
		},
	}, supplement["instrument"])
	assert.NotContains(t, supplement, "observatory")
}

func TestInferRepositoryRoot(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		resourceID string
		want       string
	}{
		{"nested", "/data/spase/NASA/NumericalData/Wind/PT1M.xml", "spase://NASA/NumericalData/Wind/PT1M", "/data/spase"},
		{"relative", "testdata/NASA/X.xml", "spase://NASA/X", "testdata"},
		{"at root", "NASA/X.xml", "spase://NASA/X", "."},
		{"layout mismatch", "/data/other.xml", "spase://NASA/X", ""},
		{"partial segment", "/data/XNASA/NumericalData/Wind/PT1M.xml", "spase://NASA/NumericalData/Wind/PT1M", ""},
		{"partial relative segment", "XNASA/X.xml", "spase://NASA/X", ""},
		{"no scheme", "/data/NASA/X.xml", "NASA/X", ""},
		{"no id", "/data/NASA/X.xml", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferRepositoryRoot(tt.path, tt.resourceID))
		})
	}
}

func TestRepository_RecordCachesMisses(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/repo")
	repo := NewRepository(mfs, "/repo")

	_, ok := repo.Record("spase://SMWG/Person/Nobody")
	assert.False(t, ok)

	mfs.AddFile("SMWG/Person/Nobody.xml", minimalRecord)
	_, ok = repo.Record("spase://SMWG/Person/Nobody")
	assert.False(t, ok, "misses are remembered for the life of the repository")

	_, ok = repo.Record("not-an-identifier")
	assert.False(t, ok)

	var nilRepo *Repository
	_, ok = nilRepo.Record("spase://SMWG/Person/Nobody")
	assert.False(t, ok)
}
