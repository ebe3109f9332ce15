package xmldoc

import (
	"encoding/xml"
	"strings"
)

// Element is one node of a parsed record. Name.Space holds the resolved
// namespace URI, never the prefix used in the source.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Element

	// Text is the character data before the first child element.
	Text string
}

// Content returns Text with surrounding whitespace removed.
func (e *Element) Content() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text)
}

// Attribute returns the value of the first attribute with the given local
// name, ignoring its namespace.
func (e *Element) Attribute(local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// FirstChild returns the first direct child matching name, or nil.
func (e *Element) FirstChild(name xml.Name) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildText returns the trimmed text of the first direct child matching
// name, or "".
func (e *Element) ChildText(name xml.Name) string {
	return e.FirstChild(name).Content()
}

// ChildTexts returns the non-empty trimmed texts of every direct child
// matching name, in document order.
func (e *Element) ChildTexts(name xml.Name) []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, c := range e.Children {
		if c.Name == name {
			if text := c.Content(); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

// walk visits the descendants of e in document order, excluding e.
func (e *Element) walk(fn func(*Element)) {
	for _, c := range e.Children {
		fn(c)
		c.walk(fn)
	}
}
