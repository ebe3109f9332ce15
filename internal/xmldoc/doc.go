// Package xmldoc loads metadata records into a namespace-aware element
// tree and answers path queries against it.
//
// # Queries
//
// Paths follow the ElementTree subset used by metadata crosswalks:
//
//	ResourceHeader/ResourceName          children of the context element
//	./ResourceHeader                     same, explicit
//	.//spase:Parameter                   every descendant named Parameter
//	.//spase:NumericalData/spase:ResourceHeader/spase:ResourceID
//	*                                    any element
//
// A prefixed step matches elements whose resolved namespace URI is the URI
// bound to that prefix in the document's Namespaces. An unprefixed step
// matches only elements outside any namespace. Local names alone never
// match across namespaces.
//
// # Location paths
//
// Location builds the rooted query used by every crosswalk rule,
// `.//{prefix}:{rootTag}/{prefix}:{suffix...}`, from the record root tag of
// the current document. Record kinds differ per file (NumericalData,
// DisplayData, Instrument, ...), so the root tag is never a constant.
//
// # Errors
//
// Load fails with *FormatError when the path lacks the schema extension,
// before anything is read, and with *ParseError when the content is not
// well-formed. Both match the soso sentinels via errors.Is.
package xmldoc
