package xmldoc

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Namespaces maps query prefixes to namespace URIs.
type Namespaces map[string]string

type step struct {
	name       xml.Name
	any        bool
	descendant bool
}

func (s step) matches(e *Element) bool {
	if s.any {
		return true
	}
	return e.Name == s.name
}

// compile turns a query path into steps, resolving prefixes through ns.
func compile(path string, ns Namespaces) ([]step, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty query path")
	}
	if strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("query path %q must be relative", path)
	}

	var steps []step
	descendant := false
	for _, token := range strings.Split(path, "/") {
		switch token {
		case "":
			descendant = true
			continue
		case ".":
			continue
		}

		st := step{descendant: descendant}
		descendant = false

		if token == "*" {
			st.any = true
			steps = append(steps, st)
			continue
		}

		prefix, local, found := strings.Cut(token, ":")
		if !found {
			st.name = xml.Name{Local: token}
		} else {
			uri, ok := ns[prefix]
			if !ok {
				return nil, fmt.Errorf("prefix %q not bound in query path %q", prefix, path)
			}
			st.name = xml.Name{Space: uri, Local: local}
		}
		if st.name.Local == "" {
			return nil, fmt.Errorf("empty element name in query path %q", path)
		}
		steps = append(steps, st)
	}
	if descendant || len(steps) == 0 {
		return nil, fmt.Errorf("query path %q does not end in an element name", path)
	}
	return steps, nil
}

// selectFrom evaluates steps with ctx as the context element.
func selectFrom(ctx *Element, steps []step) []*Element {
	current := []*Element{ctx}
	for _, st := range steps {
		var next []*Element
		seen := make(map[*Element]bool)
		add := func(e *Element) {
			if st.matches(e) && !seen[e] {
				seen[e] = true
				next = append(next, e)
			}
		}
		for _, c := range current {
			if st.descendant {
				c.walk(add)
			} else {
				for _, child := range c.Children {
					add(child)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

// Location builds the query path for a field of the record:
// `.//{prefix}:{rootTag}/{prefix}:{suffix...}`. The suffix is a
// slash-separated list of local names; an empty suffix addresses the
// record root itself.
func Location(prefix, rootTag, suffix string) string {
	var b strings.Builder
	b.WriteString(".//")
	b.WriteString(qualify(prefix, rootTag))
	for _, part := range strings.Split(suffix, "/") {
		if part == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(qualify(prefix, part))
	}
	return b.String()
}

func qualify(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
