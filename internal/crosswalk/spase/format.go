// Package spase converts SPASE (Space Physics Archive Search and Extract)
// records to SOSO.
//
// Every query is built with xmldoc.Location from the record root of the
// document at hand, so one strategy serves NumericalData, DisplayData,
// Instrument and Observatory records alike.
package spase

import (
	"bytes"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const (
	// Namespace is the SPASE schema namespace URI.
	Namespace = "http://www.spase-group.org/data/schema"

	// Prefix is the query prefix bound to Namespace.
	Prefix = "spase"
)

// Schema describes SPASE records to the loader.
var Schema = xmldoc.Schema{
	Name:       "SPASE",
	Prefix:     Prefix,
	Namespace:  Namespace,
	Extension:  soso.RecordExtension,
	VersionTag: "Version",
}

// Format registers the SPASE crosswalk.
type Format struct{}

var _ crosswalk.Format = (*Format)(nil)

func (f *Format) Name() string          { return "spase" }
func (f *Format) Schema() xmldoc.Schema { return Schema }

func (f *Format) Description() string {
	return "SPASE heliophysics resource descriptions (NumericalData, DisplayData, ...)"
}

// CanParse returns true if the input looks like a SPASE record.
func (f *Format) CanParse(peek []byte) bool {
	peek = xmldoc.TrimPrologue(peek)
	return len(peek) > 0 && peek[0] == '<' && bytes.Contains(peek, []byte(Namespace))
}

func (f *Format) New(doc *xmldoc.Document, opts crosswalk.Options) soso.Strategy {
	return New(doc, opts)
}

func init() {
	crosswalk.Register(&Format{})
}
