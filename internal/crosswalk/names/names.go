// Package names normalizes the author strings found in metadata records.
//
// Records name people two ways: as a repository identifier such as
// "spase://SMWG/Person/John.H.Smith", or as free text such as
// "Smith, J.; Doe, A." that may pack several authors into one field.
// Both parse into Person values, which render in two modes: a citation
// form ("Smith, J.H.") and structured given/family components.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// identifierMarker is the path segment that precedes the name in person
// identifiers.
const identifierMarker = "Person/"

// Person is one parsed author.
type Person struct {
	Given  string
	Family string

	// Literal holds the raw text when the entry could not be split into
	// given and family names (organisations, "et al." strings).
	Literal string
}

// IsLiteral reports whether p carries unsplit text only.
func (p Person) IsLiteral() bool {
	return p.Literal != ""
}

// FullName returns "Given Family", or the literal text.
func (p Person) FullName() string {
	if p.IsLiteral() {
		return p.Literal
	}
	return strings.TrimSpace(p.Given + " " + p.Family)
}

// Citation returns the citation form "Family, G.M.", or the literal text.
func (p Person) Citation() string {
	if p.IsLiteral() {
		return p.Literal
	}
	if p.Family == "" {
		return p.Given
	}
	if init := Initials(p.Given); init != "" {
		return p.Family + ", " + init
	}
	return p.Family
}

// Initials abbreviates every part of a given name: "John H." → "J.H.".
func Initials(given string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(given, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.'
	}) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteByte('.')
	}
	return b.String()
}

// IsIdentifier reports whether s is a person identifier.
func IsIdentifier(s string) bool {
	return strings.Contains(s, identifierMarker)
}

// FromIdentifier splits the name part of a person identifier:
// "spase://SMWG/Person/John.H.Smith" → Given "John H.", Family "Smith".
// A name without separators becomes a literal.
func FromIdentifier(id string) Person {
	_, name, found := strings.Cut(id, identifierMarker)
	if !found {
		name = id
	}
	name = strings.Trim(strings.TrimSpace(name), "./")

	given, rest, found := strings.Cut(name, ".")
	if !found || rest == "" {
		return Person{Literal: name}
	}

	middle, family, found := strings.Cut(rest, ".")
	if !found || family == "" {
		return Person{Given: given, Family: rest}
	}
	if utf8.RuneCountInString(middle) == 1 {
		middle += "."
	}
	return Person{
		Given:  given + " " + middle,
		Family: strings.ReplaceAll(family, ".", " "),
	}
}

// Parse turns raw author values into people. Identifier values map to
// one person each; free-text values may expand to several.
func Parse(raw []string) []Person {
	var people []Person
	for _, r := range raw {
		if IsIdentifier(r) {
			people = append(people, FromIdentifier(r))
			continue
		}
		people = append(people, ParseList(r)...)
	}
	return people
}

// ParseList splits a free-text author field. The delimiter decides the
// strategy: ";" separates entries, otherwise "., " does (the field then
// packs "Family, G., Family, G." pairs), otherwise the field holds a single
// "Family, Given" or "Given Family" entry. A final "and"/"&" conjunction is
// dropped. Text containing "et al" is kept verbatim as one literal.
func ParseList(raw string) []Person {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.Contains(raw, "et al") {
		return []Person{{Literal: raw}}
	}

	var entries []string
	switch {
	case strings.Contains(raw, ";"):
		entries = strings.Split(raw, ";")
	case strings.Contains(raw, "., "):
		entries = strings.Split(raw, "., ")
		for i := 0; i < len(entries)-1; i++ {
			entries[i] += "."
		}
	default:
		entries = []string{raw}
	}

	var people []Person
	for _, entry := range entries {
		for _, part := range splitConjunction(entry) {
			if p, ok := parseEntry(part); ok {
				people = append(people, p)
			}
		}
	}
	return people
}

func splitConjunction(entry string) []string {
	entry = strings.TrimSpace(entry)
	for _, conj := range []string{"and ", "& "} {
		entry = strings.TrimPrefix(entry, conj)
	}
	for _, conj := range []string{" and ", " & "} {
		if before, after, found := strings.Cut(entry, conj); found {
			return append(splitConjunction(before), splitConjunction(after)...)
		}
	}
	return []string{entry}
}

func parseEntry(entry string) (Person, bool) {
	entry = strings.Trim(strings.TrimSpace(entry), ",")
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return Person{}, false
	}
	if IsIdentifier(entry) {
		return FromIdentifier(entry), true
	}

	if family, given, found := strings.Cut(entry, ","); found {
		family = strings.TrimSpace(family)
		given = normalizeGiven(given)
		if family == "" {
			return Person{Literal: entry}, true
		}
		return Person{Given: given, Family: family}, true
	}

	fields := strings.Fields(entry)
	if len(fields) < 2 {
		return Person{Literal: entry}, true
	}
	return Person{
		Given:  normalizeGiven(strings.Join(fields[:len(fields)-1], " ")),
		Family: fields[len(fields)-1],
	}, true
}

// normalizeGiven joins comma-separated given parts with spaces and gives
// a bare trailing initial its period: "Stephen, A" → "Stephen A.".
func normalizeGiven(given string) string {
	fields := strings.Fields(strings.ReplaceAll(given, ",", " "))
	if len(fields) == 0 {
		return ""
	}
	last := fields[len(fields)-1]
	if utf8.RuneCountInString(last) == 1 && unicode.IsLetter([]rune(last)[0]) {
		fields[len(fields)-1] = last + "."
	}
	return strings.Join(fields, " ")
}

// CitationList renders people in citation form, separated by ", " with
// "& " before the last entry: "Smith, J., & Doe, A.".
func CitationList(people []Person) string {
	parts := make([]string, 0, len(people))
	for _, p := range people {
		if c := p.Citation(); c != "" {
			parts = append(parts, c)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", & " + parts[len(parts)-1]
}
