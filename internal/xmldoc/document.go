package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/sosocrosswalk/soso/internal/files/filesystem"
)

// Schema describes how records of one metadata schema are recognised and
// queried.
type Schema struct {
	// Name is the human label used in errors ("SPASE").
	Name string
	// Prefix is the query prefix bound to Namespace.
	Prefix string
	// Namespace is the schema's namespace URI.
	Namespace string
	// Extension is the required file extension, including the dot.
	Extension string
	// VersionTag is the local name of the top-level element carrying the
	// schema version. Empty when the schema declares no such element.
	VersionTag string
}

// Namespaces returns the prefix binding queries against this schema use.
func (s Schema) Namespaces() Namespaces {
	return Namespaces{s.Prefix: s.Namespace}
}

// Document is a parsed record. It is immutable once loaded.
type Document struct {
	Path       string
	Root       *Element
	Namespaces Namespaces
	Schema     Schema

	// Version is the declared schema version, or "" when absent.
	Version string
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// TrimPrologue drops a leading UTF-8 byte order mark and surrounding
// whitespace, leaving content that starts at its first markup byte.
func TrimPrologue(content []byte) []byte {
	return bytes.TrimSpace(bytes.TrimPrefix(bytes.TrimSpace(content), utf8BOM))
}

// HasExtension reports whether path ends in ext, ignoring case.
func HasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// Load reads and parses the record at path through fsys.
// The extension check runs before the file is touched.
func Load(fsys filesystem.FileSystemProvider, path string, schema Schema) (*Document, error) {
	if !HasExtension(path, schema.Extension) {
		return nil, &FormatError{FilePath: path, Expected: schema.Extension, Schema: schema.Name}
	}

	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)), path, schema)
}

// Parse builds a Document from r. path is only used in error messages.
func Parse(r io.Reader, path string, schema Schema) (*Document, error) {
	root, err := buildTree(r)
	if err != nil {
		return nil, wrapXMLError(err, path)
	}

	doc := &Document{
		Path:       path,
		Root:       root,
		Namespaces: schema.Namespaces(),
		Schema:     schema,
	}
	if schema.VersionTag != "" {
		doc.Version = root.ChildText(xml.Name{Space: schema.Namespace, Local: schema.VersionTag})
	}
	return doc, nil
}

var errNoRoot = errors.New("document has no root element")

func buildTree(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attr: t.Copy().Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if len(top.Children) == 0 {
				top.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// RecordRoot returns the element describing the record: the first
// top-level element that is not the version element. Nil when the
// document holds nothing else.
func (d *Document) RecordRoot() *Element {
	version := xml.Name{Space: d.Schema.Namespace, Local: d.Schema.VersionTag}
	for _, c := range d.Root.Children {
		if d.Schema.VersionTag != "" && c.Name == version {
			continue
		}
		return c
	}
	return nil
}

// RecordTag returns the local name of RecordRoot, or "".
func (d *Document) RecordTag() string {
	if rr := d.RecordRoot(); rr != nil {
		return rr.Name.Local
	}
	return ""
}

// Location returns the query path of suffix below this document's record
// root. It returns "" when the document has no record root.
func (d *Document) Location(suffix string) string {
	tag := d.RecordTag()
	if tag == "" {
		return ""
	}
	return Location(d.Schema.Prefix, tag, suffix)
}

// Name qualifies local with the schema namespace.
func (d *Document) Name(local string) xml.Name {
	return xml.Name{Space: d.Schema.Namespace, Local: local}
}

// Query evaluates path from the document element and reports malformed
// paths.
func (d *Document) Query(path string) ([]*Element, error) {
	steps, err := compile(path, d.Namespaces)
	if err != nil {
		return nil, err
	}
	return selectFrom(d.Root, steps), nil
}

// FindAll returns every element matching path in document order.
// Malformed paths match nothing.
func (d *Document) FindAll(path string) []*Element {
	found, _ := d.Query(path)
	return found
}

// Find returns the first element matching path, or nil.
func (d *Document) Find(path string) *Element {
	if found := d.FindAll(path); len(found) > 0 {
		return found[0]
	}
	return nil
}

// FindText returns the trimmed text of the first element matching path,
// or "" when nothing matches.
func (d *Document) FindText(path string) string {
	return d.Find(path).Content()
}

// FindTexts returns the non-empty trimmed texts of every element matching
// path.
func (d *Document) FindTexts(path string) []string {
	var out []string
	for _, e := range d.FindAll(path) {
		if text := e.Content(); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// FindAllFrom evaluates path with e as the context element.
func (d *Document) FindAllFrom(e *Element, path string) []*Element {
	if e == nil {
		return nil
	}
	steps, err := compile(path, d.Namespaces)
	if err != nil {
		return nil
	}
	return selectFrom(e, steps)
}
