// Package conversion turns source metadata records into SOSO JSON-LD
// documents: it opens the record with the selected crosswalk, evaluates
// every rule, and layers supplementary values and caller overrides on top.
package conversion

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	_ "github.com/sosocrosswalk/soso/internal/crosswalk/eml"
	_ "github.com/sosocrosswalk/soso/internal/crosswalk/spase"
	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/identity"
	"github.com/sosocrosswalk/soso/internal/logging"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// Result is one converted record.
type Result struct {
	Path     string
	Strategy string

	// ID is the document's @id.
	ID string

	Document map[string]any
	Duration time.Duration
}

// Converter converts single records. It holds no per-record state and is
// safe for concurrent use.
type Converter struct {
	fs     filesystem.FileSystemProvider
	logger soso.Logger
}

// NewConverter creates a Converter reading records through fs.
// A nil logger discards messages. Panics if fs is nil.
func NewConverter(fs filesystem.FileSystemProvider, logger soso.Logger) *Converter {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Converter{fs: fs, logger: logger}
}

// Convert loads the record named by req and returns its JSON-LD document.
func (c *Converter) Convert(req soso.ConversionRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	opts := crosswalk.Options{
		Extended:       req.Extended,
		FS:             c.fs,
		RepositoryRoot: req.RepositoryRoot,
	}
	strategy, doc, err := crosswalk.Open(c.fs, req.Path, req.Strategy, opts)
	if err != nil {
		return nil, err
	}
	c.logger.Verbose("Loaded %s as %s %s (%s)", req.Path, strategy.Schema(), strategy.SchemaVersion(), doc.RecordTag())

	document, err := Assemble(strategy, req.Overrides)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Path, err)
	}

	id, _ := document["@id"].(string)
	if id == "" {
		id = "urn:uuid:" + identity.ForKey(req.Path).String()
		document["@id"] = id
		c.logger.Verbose("%s has no identifier, using %s", req.Path, id)
	}

	return &Result{
		Path:     req.Path,
		Strategy: strategy.Schema(),
		ID:       id,
		Document: document,
		Duration: time.Since(start),
	}, nil
}

// Assemble builds the JSON-LD document for a bound strategy. Values are
// layered from lowest to highest precedence: rule values, supplementary
// values, overrides. Nil overrides are ignored.
func Assemble(s soso.Strategy, overrides map[string]any) (map[string]any, error) {
	out := map[string]any{
		"@context": vocabulary.Context(),
		"@type":    vocabulary.TypeDataset,
	}
	for k, v := range soso.Extract(s) {
		out[k] = v
	}
	if sup, ok := s.(soso.Supplementer); ok {
		for k, v := range sup.Supplement() {
			if v = soso.DeleteNull(v); v != nil {
				out[k] = v
			}
		}
	}
	for k, v := range overrides {
		if v == nil {
			continue
		}
		out[k] = v
	}

	if err := canonicalLanguage(out); err != nil {
		return nil, err
	}
	return out, nil
}

// canonicalLanguage rewrites a string inLanguage as a canonical BCP 47 tag.
func canonicalLanguage(doc map[string]any) error {
	raw, ok := doc["inLanguage"].(string)
	if !ok {
		return nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return fmt.Errorf("inLanguage %q: %v: %w", raw, err, soso.ErrInvalidOverride)
	}
	doc["inLanguage"] = tag.String()
	return nil
}
