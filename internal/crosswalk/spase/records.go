package spase

import (
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
)

// Repository resolves resource identifiers to sibling records laid out as
// <root>/<identifier without scheme>.xml.
type Repository struct {
	fs   filesystem.FileSystemProvider
	root string

	mu    sync.Mutex
	cache map[string]*xmldoc.Document
}

// NewRepository returns a resolver for records under root.
func NewRepository(fs filesystem.FileSystemProvider, root string) *Repository {
	return &Repository{fs: fs, root: root, cache: make(map[string]*xmldoc.Document)}
}

// InferRepositoryRoot finds the repository root from a record's own path
// and identifier: the record for spase://NASA/X/Y lives at <root>/NASA/X/Y.xml.
// It returns "" when the path does not follow that layout.
func InferRepositoryRoot(recordPath, resourceID string) string {
	rel := strings.TrimPrefix(resourceID, idScheme)
	if rel == "" || rel == resourceID {
		return ""
	}
	p := filepath.ToSlash(recordPath)
	suffix := rel + path.Ext(p)
	if !strings.HasSuffix(p, suffix) {
		return ""
	}
	if len(p) > len(suffix) && p[len(p)-len(suffix)-1] != '/' {
		return ""
	}
	root := strings.TrimSuffix(strings.TrimSuffix(p, suffix), "/")
	if root == "" {
		if strings.HasPrefix(p, "/") {
			return "/"
		}
		return "."
	}
	return root
}

// Path returns where the record for id would be stored.
func (r *Repository) Path(id string) string {
	return path.Join(r.root, strings.TrimPrefix(id, idScheme)+Schema.Extension)
}

// Record loads the record for id. Missing or unreadable records report
// false; they never fail the calling rule.
func (r *Repository) Record(id string) (*xmldoc.Document, bool) {
	if r == nil || !strings.HasPrefix(id, idScheme) {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.cache[id]; ok {
		return doc, doc != nil
	}
	doc, err := xmldoc.Load(r.fs, r.Path(id), Schema)
	if err != nil {
		doc = nil
	}
	r.cache[id] = doc
	return doc, doc != nil
}

// PersonInfo is what a Person record contributes to a creator entry.
type PersonInfo struct {
	ORCID       string
	Affiliation string
}

func (s *Strategy) lookupPerson(id string) (PersonInfo, bool) {
	doc, ok := s.records.Record(id)
	if !ok {
		return PersonInfo{}, false
	}
	info := PersonInfo{
		ORCID:       doc.FindText(doc.Location("ORCIdentifier")),
		Affiliation: doc.FindText(doc.Location("OrganizationName")),
	}
	return info, info != PersonInfo{}
}

// linkedResource is an instrument, observatory or observatory group
// resolved from its record.
type linkedResource struct {
	ID   string
	Name string
	URLs []string
	// Parent is the ObservatoryID of an instrument or the
	// ObservatoryGroupID of an observatory.
	Parent string
}

func (s *Strategy) resolveResource(id, parentTag string) linkedResource {
	res := linkedResource{ID: id}
	doc, ok := s.records.Record(id)
	if !ok {
		return res
	}
	res.Name = doc.FindText(doc.Location("ResourceHeader/ResourceName"))
	for _, info := range informationURLs(doc) {
		if url, _ := info["url"].(string); url != "" {
			res.URLs = append(res.URLs, url)
		}
	}
	if parentTag != "" {
		res.Parent = doc.FindText(doc.Location(parentTag))
	}
	return res
}

// informationURLs lists the ResourceHeader/InformationURL blocks of doc.
func informationURLs(doc *xmldoc.Document) []map[string]any {
	var out []map[string]any
	for _, e := range doc.FindAll(doc.Location("ResourceHeader/InformationURL")) {
		url := e.ChildText(doc.Name("URL"))
		if url == "" {
			continue
		}
		entry := map[string]any{"url": url}
		if name := e.ChildText(doc.Name("Name")); name != "" {
			entry["name"] = name
			if d := e.ChildText(doc.Name("Description")); d != "" {
				entry["description"] = d
			}
		}
		out = append(out, entry)
	}
	return out
}
