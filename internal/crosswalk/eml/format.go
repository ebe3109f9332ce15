// Package eml converts Ecological Metadata Language datasets to SOSO.
//
// EML declares its namespace on the root element only; the elements
// below it are unqualified, so queries here use bare local names.
package eml

import (
	"bytes"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const (
	// Namespace is the EML 2.2 namespace URI.
	Namespace = "https://eml.ecoinformatics.org/eml-2.2.0"

	// Prefix is the query prefix bound to Namespace.
	Prefix = "eml"
)

// namespaceMarkers identify EML documents of any release.
var namespaceMarkers = [][]byte{
	[]byte("eml.ecoinformatics.org/eml-"),
	[]byte("eml://ecoinformatics.org/eml-"),
}

// Schema describes EML documents to the loader.
var Schema = xmldoc.Schema{
	Name:      "EML",
	Prefix:    Prefix,
	Namespace: Namespace,
	Extension: soso.RecordExtension,
}

// Format registers the EML crosswalk.
type Format struct{}

var _ crosswalk.Format = (*Format)(nil)

func (f *Format) Name() string          { return "eml" }
func (f *Format) Schema() xmldoc.Schema { return Schema }

func (f *Format) Description() string {
	return "Ecological Metadata Language datasets (EML 2.1 and 2.2)"
}

// CanParse returns true if the input looks like an EML document.
func (f *Format) CanParse(peek []byte) bool {
	peek = xmldoc.TrimPrologue(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	for _, m := range namespaceMarkers {
		if bytes.Contains(peek, m) {
			return true
		}
	}
	return false
}

func (f *Format) New(doc *xmldoc.Document, opts crosswalk.Options) soso.Strategy {
	return New(doc, opts)
}

func init() {
	crosswalk.Register(&Format{})
}
