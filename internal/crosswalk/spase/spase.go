package spase

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

const (
	// hpdeBase replaces the spase:// scheme when a record has no DOI.
	hpdeBase = "https://hpde.io/"

	idScheme = "spase://"

	// regionBase prefixes ObservedRegion identifiers.
	regionBase = "http://www.spase-group.org/data/schema/"

	// keywordSeparator joins Keyword values into one keywords string.
	keywordSeparator = ", "
)

// Strategy is the SPASE crosswalk bound to one document.
type Strategy struct {
	soso.AbsentRules

	doc     *xmldoc.Document
	opts    crosswalk.Options
	records *Repository

	authorsOnce sync.Once
	authors     AuthorRecord

	accessOnce sync.Once
	access     AccessURLs
}

var (
	_ soso.Strategy     = (*Strategy)(nil)
	_ soso.IDProvider   = (*Strategy)(nil)
	_ soso.Supplementer = (*Strategy)(nil)
)

// New binds a strategy to doc. Sibling records are looked up through
// opts.FS when it is set.
func New(doc *xmldoc.Document, opts crosswalk.Options) *Strategy {
	s := &Strategy{doc: doc, opts: opts}
	if opts.FS != nil {
		root := opts.RepositoryRoot
		if root == "" {
			root = InferRepositoryRoot(doc.Path, s.text("ResourceID"))
		}
		if root != "" {
			s.records = NewRepository(opts.FS, root)
		}
	}
	return s
}

// Document returns the record the strategy reads.
func (s *Strategy) Document() *xmldoc.Document { return s.doc }

func (s *Strategy) Schema() string        { return "spase" }
func (s *Strategy) SchemaVersion() string { return s.doc.Version }

func (s *Strategy) name(local string) xml.Name { return s.doc.Name(local) }

func (s *Strategy) all(suffix string) []*xmldoc.Element {
	return s.doc.FindAll(s.doc.Location(suffix))
}

func (s *Strategy) text(suffix string) string {
	return s.doc.FindText(s.doc.Location(suffix))
}

func (s *Strategy) texts(suffix string) []string {
	return s.doc.FindTexts(s.doc.Location(suffix))
}

// descendants returns every element named local anywhere below the
// record root.
func (s *Strategy) descendants(local string) []*xmldoc.Element {
	root := s.doc.Location("")
	if root == "" {
		return nil
	}
	return s.doc.FindAll(root + "//" + Prefix + ":" + local)
}

func (s *Strategy) ID() any { return crosswalk.Optional(s.text("ResourceID")) }

func (s *Strategy) Name() any { return crosswalk.Optional(s.text("ResourceHeader/ResourceName")) }

func (s *Strategy) Description() any { return crosswalk.Optional(s.text("ResourceHeader/Description")) }

// URL prefers the DOI and falls back to the landing page derived from the
// ResourceID.
func (s *Strategy) URL() any { return crosswalk.Optional(s.url()) }

func (s *Strategy) url() string {
	if doi := s.text("ResourceHeader/DOI"); doi != "" {
		return doi
	}
	id := s.text("ResourceID")
	if id == "" {
		return ""
	}
	return strings.ReplaceAll(id, idScheme, hpdeBase)
}

func (s *Strategy) SameAs() any {
	if ids := s.texts("ResourceHeader/PriorID"); len(ids) > 0 {
		return ids
	}
	return nil
}

func (s *Strategy) Keywords() any {
	var words []string
	for _, e := range s.descendants("Keyword") {
		if w := e.Content(); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil
	}
	return strings.Join(words, keywordSeparator)
}

// Identifier is a DOI PropertyValue when the url is a DOI, else the url.
func (s *Strategy) Identifier() any {
	url := s.url()
	if url == "" {
		return nil
	}
	if !crosswalk.IsDOI(url) {
		return url
	}
	return crosswalk.DOIIdentifier(url)
}

// VariableMeasured lists one PropertyValue per Parameter.
func (s *Strategy) VariableMeasured() any {
	var out []any
	for _, p := range s.descendants("Parameter") {
		description, _, _ := strings.Cut(p.ChildText(s.name("Description")), "\n")
		out = append(out, map[string]any{
			"@type":       vocabulary.TypePropertyValue,
			"name":        p.ChildText(s.name("Name")),
			"description": strings.TrimSpace(description),
			"unitText":    p.ChildText(s.name("Units")),
			"minValue":    numeric(p.ChildText(s.name("ValidMin"))),
			"maxValue":    numeric(p.ChildText(s.name("ValidMax"))),
		})
	}
	return soso.DeleteNull(out)
}

// numeric returns v as a number when it parses as a finite one. NaN and
// infinities stay strings because JSON has no literal for them.
func numeric(v string) any {
	if v == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return v
}

func (s *Strategy) SpatialCoverage() any {
	var out []any
	for _, region := range s.texts("ObservedRegion") {
		out = append(out, map[string]any{
			"@type":         vocabulary.TypePlace,
			"identifier":    regionBase + strings.ToUpper(strings.ReplaceAll(region, ".", "_")),
			"alternateName": region,
		})
	}
	return soso.DeleteNull(out)
}
