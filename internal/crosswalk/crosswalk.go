// Package crosswalk keeps the registry of metadata schemas that can be
// converted to SOSO, and opens records with the strategy selected by
// schema name.
//
// Schema packages register themselves from init:
//
//	func init() {
//		crosswalk.Register(&Format{})
//	}
//
// and callers import them for the side effect.
package crosswalk

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// AutoDetect is the schema name that selects a format by sniffing content.
const AutoDetect = "auto"

// Options tune how a strategy reads its record.
type Options struct {
	// Extended enables rules beyond the baseline crosswalk.
	Extended bool

	// FS reads sibling records. Nil disables sibling lookups.
	FS filesystem.FileSystemProvider

	// RepositoryRoot is the directory sibling record paths resolve
	// against. Empty lets the strategy infer it from the record path.
	RepositoryRoot string
}

// Format is one convertible metadata schema.
type Format interface {
	// Name returns the schema-name tag ("spase").
	Name() string
	Description() string
	Schema() xmldoc.Schema
	// CanParse reports whether the first bytes of a record look like
	// this schema.
	CanParse(peek []byte) bool
	// New binds a strategy to a loaded document.
	New(doc *xmldoc.Document, opts Options) soso.Strategy
}

var (
	mu      sync.RWMutex
	formats = make(map[string]Format)
)

// Register adds f to the registry. Registering a name twice panics.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()

	name := strings.ToLower(f.Name())
	if _, dup := formats[name]; dup {
		panic(fmt.Sprintf("crosswalk: format %q registered twice", name))
	}
	formats[name] = f
}

// Get returns the format registered under name, case-insensitively.
func Get(name string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q (available: %s): %w", name, strings.Join(namesLocked(), ", "), soso.ErrUnknownStrategy)
	}
	return f, nil
}

// List returns every registered format ordered by name.
func List() []Format {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Format, 0, len(formats))
	for _, name := range namesLocked() {
		out = append(out, formats[name])
	}
	return out
}

// Names returns the registered schema names in order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect returns the first format, by name, that claims peek.
func Detect(peek []byte) (Format, error) {
	peek = xmldoc.TrimPrologue(peek)
	for _, f := range List() {
		if f.CanParse(peek) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no registered format recognises the record: %w", soso.ErrUnknownStrategy)
}

// Open loads the record at path with the format named name and binds a
// strategy to it. With AutoDetect the extension check uses
// soso.RecordExtension and the format is chosen from the content.
func Open(fsys filesystem.FileSystemProvider, path, name string, opts Options) (soso.Strategy, *xmldoc.Document, error) {
	var f Format
	if strings.EqualFold(strings.TrimSpace(name), AutoDetect) {
		if !xmldoc.HasExtension(path, soso.RecordExtension) {
			return nil, nil, &xmldoc.FormatError{FilePath: path, Expected: soso.RecordExtension, Schema: "metadata"}
		}
		content, err := fsys.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if f, err = Detect(content); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		var err error
		if f, err = Get(name); err != nil {
			return nil, nil, err
		}
	}

	doc, err := xmldoc.Load(fsys, path, f.Schema())
	if err != nil {
		return nil, nil, err
	}
	if opts.FS == nil {
		opts.FS = fsys
	}
	return f.New(doc, opts), doc, nil
}
