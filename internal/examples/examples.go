// Package examples embeds sample records for every supported schema.
//
// The SPASE sample comes with the Person, Instrument and Observatory
// records it references, laid out as a repository, so it also exercises
// sibling record resolution.
package examples

import (
	"embed"
	"fmt"
	"strings"

	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

//go:embed all:records
var records embed.FS

const root = "records"

// Example is one embedded sample record.
type Example struct {
	Strategy    string
	Path        string // relative to FS()
	Description string
}

var catalog = []Example{
	{
		Strategy:    "eml",
		Path:        "eml/knb-lter-sev.31.999.xml",
		Description: "Sevilleta LTER meteorology data package (EML 2.2)",
	},
	{
		Strategy:    "spase",
		Path:        "spase/NASA/NumericalData/Wind/MFI/PT1M.xml",
		Description: "Wind MFI 1-minute magnetic field (SPASE NumericalData)",
	},
}

// List returns every example ordered by strategy.
func List() []Example {
	out := make([]Example, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the example for a strategy name.
func Get(strategy string) (Example, error) {
	for _, ex := range catalog {
		if strings.EqualFold(ex.Strategy, strings.TrimSpace(strategy)) {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("no example for %q: %w", strategy, soso.ErrUnknownStrategy)
}

// FS returns the embedded records as a filesystem provider.
func FS() *filesystem.EmbedFileSystem {
	return filesystem.NewEmbedFileSystem(records, root)
}

// Content returns the raw record bytes of ex.
func Content(ex Example) ([]byte, error) {
	return FS().ReadFile(ex.Path)
}
