package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIdentifier(t *testing.T) {
	tests := []struct {
		id       string
		want     Person
		fullName string
		citation string
	}{
		{"spase://SMWG/Person/J.Smith", Person{Given: "J", Family: "Smith"}, "J Smith", "Smith, J."},
		{"spase://SMWG/Person/John.H.Smith", Person{Given: "John H.", Family: "Smith"}, "John H. Smith", "Smith, J.H."},
		{"spase://SMWG/Person/Lee.Frost.Bargatze", Person{Given: "Lee Frost", Family: "Bargatze"}, "Lee Frost Bargatze", "Bargatze, L.F."},
		{"spase://SMWG/Person/James.A.Van.Allen", Person{Given: "James A.", Family: "Van Allen"}, "James A. Van Allen", "Van Allen, J.A."},
		{"spase://SMWG/Person/MMS_SDC_POC", Person{Literal: "MMS_SDC_POC"}, "MMS_SDC_POC", "MMS_SDC_POC"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := FromIdentifier(tt.id)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fullName, got.FullName())
			assert.Equal(t, tt.citation, got.Citation())
		})
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Person
	}{
		{"empty", "  ", nil},
		{"single family given", "Smith, J.", []Person{{Given: "J.", Family: "Smith"}}},
		{"single bare initial", "Smith, J", []Person{{Given: "J.", Family: "Smith"}}},
		{
			"semicolon separated",
			"Smith, J.; Doe, A.",
			[]Person{{Given: "J.", Family: "Smith"}, {Given: "A.", Family: "Doe"}},
		},
		{
			"semicolon with middle initials",
			"Fuselier, Stephen, A.; Young, David, T.",
			[]Person{{Given: "Stephen A.", Family: "Fuselier"}, {Given: "David T.", Family: "Young"}},
		},
		{
			"period comma packed with conjunction",
			"Smith, J., Doe, A., and Roe, B.",
			[]Person{{Given: "J.", Family: "Smith"}, {Given: "A.", Family: "Doe"}, {Given: "B.", Family: "Roe"}},
		},
		{
			"ampersand conjunction",
			"Smith, J. & Doe, A.",
			[]Person{{Given: "J.", Family: "Smith"}, {Given: "A.", Family: "Doe"}},
		},
		{"given family order", "Jane Q. Public", []Person{{Given: "Jane Q.", Family: "Public"}}},
		{"et al kept", "Smith, J. et al.", []Person{{Literal: "Smith, J. et al."}}},
		{"single word", "ISTP", []Person{{Literal: "ISTP"}}},
		{"identifier inside list", "spase://SMWG/Person/J.Smith; Doe, A.", []Person{{Given: "J", Family: "Smith"}, {Given: "A.", Family: "Doe"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.raw))
		})
	}
}

func TestParse_MixedShapes(t *testing.T) {
	people := Parse([]string{"spase://SMWG/Person/J.Smith", "spase://SMWG/Person/A.Doe"})
	require.Len(t, people, 2)
	assert.Equal(t, "Doe", people[1].Family)

	people = Parse([]string{"Smith, J.; Doe, A."})
	require.Len(t, people, 2)
}

func TestCitationList(t *testing.T) {
	smith := Person{Given: "J", Family: "Smith"}
	doe := Person{Given: "Alice", Family: "Doe"}
	roe := Person{Given: "B. C.", Family: "Roe"}

	assert.Equal(t, "", CitationList(nil))
	assert.Equal(t, "Smith, J.", CitationList([]Person{smith}))
	assert.Equal(t, "Smith, J., & Doe, A.", CitationList([]Person{smith, doe}))
	assert.Equal(t, "Smith, J., Doe, A., & Roe, B.C.", CitationList([]Person{smith, doe, roe}))
	assert.Equal(t, "Smith, J. et al.", CitationList([]Person{{Literal: "Smith, J. et al."}}))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "J.H.", Initials("John H."))
	assert.Equal(t, "S.A.", Initials("Stephen, A."))
	assert.Equal(t, "É.", Initials("émile"))
	assert.Equal(t, "", Initials(""))
}

func TestParseIsDeterministic(t *testing.T) {
	raw := "Fuselier, Stephen, A.; Young, David, T.; Burch, James, L."
	first := CitationList(ParseList(raw))
	second := CitationList(ParseList(raw))
	assert.Equal(t, first, second)
	assert.Equal(t, "Fuselier, S.A., Young, D.T., & Burch, J.L.", first)
}
