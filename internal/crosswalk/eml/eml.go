package eml

import (
	"math"
	"strconv"
	"strings"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const (
	dataset = "dataset"

	keywordSeparator = ", "
	doiResolver      = "https://doi.org/"
)

// Strategy is the EML crosswalk bound to one document.
type Strategy struct {
	soso.AbsentRules

	doc  *xmldoc.Document
	opts crosswalk.Options
}

var (
	_ soso.Strategy   = (*Strategy)(nil)
	_ soso.IDProvider = (*Strategy)(nil)
)

// New binds a strategy to doc.
func New(doc *xmldoc.Document, opts crosswalk.Options) *Strategy {
	return &Strategy{doc: doc, opts: opts}
}

func (s *Strategy) Schema() string { return "eml" }

// SchemaVersion is read from the root namespace: ".../eml-2.2.0" → "2.2.0".
func (s *Strategy) SchemaVersion() string {
	_, version, found := strings.Cut(s.doc.Root.Name.Space, "eml-")
	if !found {
		return ""
	}
	return version
}

func (s *Strategy) all(path string) []*xmldoc.Element {
	return s.doc.FindAll(dataset + "/" + path)
}

func (s *Strategy) text(path string) string {
	return s.doc.FindText(dataset + "/" + path)
}

func (s *Strategy) texts(path string) []string {
	return s.doc.FindTexts(dataset + "/" + path)
}

// within evaluates path below e.
func (s *Strategy) within(e *xmldoc.Element, path string) []*xmldoc.Element {
	return s.doc.FindAllFrom(e, path)
}

func (s *Strategy) textWithin(e *xmldoc.Element, path string) string {
	if found := s.within(e, path); len(found) > 0 {
		return found[0].Content()
	}
	return ""
}

func (s *Strategy) packageID() string {
	id, _ := s.doc.Root.Attribute("packageId")
	return strings.TrimSpace(id)
}

// ID is the package identifier.
func (s *Strategy) ID() any { return crosswalk.Optional(s.packageID()) }

func (s *Strategy) Name() any { return crosswalk.Optional(s.text("title")) }

// Description joins the abstract's paragraphs with blank lines.
func (s *Strategy) Description() any {
	return crosswalk.Optional(paragraphs(s.all("abstract")))
}

// paragraphs flattens text blocks that hold either bare text or para
// children.
func paragraphs(blocks []*xmldoc.Element) string {
	var parts []string
	for _, b := range blocks {
		if t := b.Content(); t != "" {
			parts = append(parts, t)
		}
		var walk func(e *xmldoc.Element)
		walk = func(e *xmldoc.Element) {
			for _, c := range e.Children {
				if c.Name.Local == "para" {
					if t := c.Content(); t != "" {
						parts = append(parts, t)
					}
				}
				walk(c)
			}
		}
		walk(b)
	}
	return strings.Join(parts, "\n\n")
}

func (s *Strategy) URL() any { return crosswalk.Optional(s.url()) }

func (s *Strategy) url() string {
	if u := s.text("distribution/online/url"); u != "" {
		return u
	}
	if id := s.packageID(); isDOI(id) {
		return doiURL(id)
	}
	return ""
}

func (s *Strategy) SameAs() any {
	if ids := s.texts("alternateIdentifier"); len(ids) > 0 {
		return ids
	}
	return nil
}

func (s *Strategy) Keywords() any {
	words := s.texts("keywordSet/keyword")
	if len(words) == 0 {
		return nil
	}
	return strings.Join(words, keywordSeparator)
}

// Identifier is a DOI PropertyValue for DOI package ids, else the id.
func (s *Strategy) Identifier() any {
	id := s.packageID()
	if id == "" {
		return nil
	}
	if isDOI(id) {
		return crosswalk.DOIIdentifier(doiURL(id))
	}
	return id
}

func isDOI(id string) bool {
	return strings.HasPrefix(strings.ToLower(id), "doi:") || strings.Contains(id, "doi.org/")
}

// doiURL resolves "doi:10.x/y" to its https form.
func doiURL(id string) string {
	if strings.HasPrefix(id, "http") {
		return id
	}
	return doiResolver + id[len("doi:"):]
}

// VariableMeasured lists one PropertyValue per dataTable attribute.
func (s *Strategy) VariableMeasured() any {
	var out []any
	for _, a := range s.all("dataTable/attributeList/attribute") {
		unit := s.textWithin(a, ".//standardUnit")
		if unit == "" {
			unit = s.textWithin(a, ".//customUnit")
		}
		out = append(out, map[string]any{
			"@type":         vocabulary.TypePropertyValue,
			"name":          s.textWithin(a, "attributeName"),
			"alternateName": s.textWithin(a, "attributeLabel"),
			"description":   s.textWithin(a, "attributeDefinition"),
			"unitText":      unit,
			"minValue":      numeric(s.textWithin(a, ".//bounds/minimum")),
			"maxValue":      numeric(s.textWithin(a, ".//bounds/maximum")),
		})
	}
	return soso.DeleteNull(out)
}

func numeric(v string) any {
	if v == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return v
}

// Distribution lists a DataDownload per dataTable physical object.
func (s *Strategy) Distribution() any {
	var out []any
	for _, p := range s.all("dataTable/physical") {
		format := s.textWithin(p, "dataFormat/externallyDefinedFormat/formatName")
		if format == "" && len(s.within(p, "dataFormat/textFormat")) > 0 {
			format = "text/csv"
		}
		out = append(out, map[string]any{
			"@type":          vocabulary.TypeDataDownload,
			"name":           s.textWithin(p, "objectName"),
			"contentUrl":     s.textWithin(p, "distribution/online/url"),
			"encodingFormat": format,
			"contentSize":    s.textWithin(p, "size"),
		})
	}
	return soso.DeleteNull(out)
}

func (s *Strategy) DateModified() any  { return crosswalk.Optional(s.text("pubDate")) }
func (s *Strategy) DatePublished() any { return crosswalk.Optional(s.text("pubDate")) }

// License prefers machine-readable licence urls over rights text.
func (s *Strategy) License() any {
	if urls := s.texts("licensed/url"); len(urls) > 0 {
		return crosswalk.OneOrMany(urls)
	}
	return crosswalk.Optional(paragraphs(s.all("intellectualRights")))
}
