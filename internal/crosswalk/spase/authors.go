package spase

import (
	"strings"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/crosswalk/names"
	"github.com/sosocrosswalk/soso/internal/vocabulary"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
)

// DefaultPublisher names the archive when a record states no publisher.
const DefaultPublisher = "NASA Heliophysics Digital Resource Library"

// authorRole is the role given to authors listed in PublicationInfo.
const authorRole = "Author"

// AuthorRecord is what one walk over the ResourceHeader yields about
// authorship.
type AuthorRecord struct {
	// Authors are person identifiers from Contacts, or the single
	// free-text Authors value from PublicationInfo.
	Authors []string
	// Roles parallels Authors.
	Roles []string
	// FromPublication is set when PublicationInfo supplied the authors.
	FromPublication bool

	PublicationDate string
	Publisher       string
	Title           string

	// Contributors are person identifiers with the Contributor role.
	Contributors []string
	// ByRole lists person identifiers per remaining role, in order.
	ByRole map[string][]string
	// Contacts lists every person identifier seen.
	Contacts []string
}

// principalRank orders author candidates: principal investigators first,
// then any other role naming a PI.
func principalRank(role string) int {
	switch {
	case strings.Contains(role, "PrincipalInvestigator"):
		return 2
	case strings.Contains(role, "PI"):
		return 1
	}
	return 0
}

func (s *Strategy) authorRecord() AuthorRecord {
	s.authorsOnce.Do(func() {
		s.authors = s.resolveAuthors()
	})
	return s.authors
}

func (s *Strategy) resolveAuthors() AuthorRecord {
	rec := AuthorRecord{ByRole: make(map[string][]string)}
	header := s.doc.Find(s.doc.Location("ResourceHeader"))
	if header == nil {
		return rec
	}

	rank := 0
	var publication *xmldoc.Element
	for _, child := range header.Children {
		switch child.Name {
		case s.name("Contact"):
			id := child.ChildText(s.name("PersonID"))
			if id == "" {
				continue
			}
			rec.Contacts = append(rec.Contacts, id)

			principal := ""
			for _, role := range child.ChildTexts(s.name("Role")) {
				switch {
				case principalRank(role) > 0:
					if principal == "" || principalRank(role) > principalRank(principal) {
						principal = role
					}
				case role == "Contributor":
					rec.Contributors = append(rec.Contributors, id)
				case role == "Publisher":
					if rec.Publisher == "" {
						rec.Publisher = names.FromIdentifier(id).FullName()
					}
				default:
					rec.ByRole[role] = append(rec.ByRole[role], id)
				}
			}

			switch r := principalRank(principal); {
			case r == 0:
			case r > rank:
				// a higher tier replaces what was collected so far
				rank = r
				rec.Authors = []string{id}
				rec.Roles = []string{principal}
			case r == rank:
				rec.Authors = append(rec.Authors, id)
				rec.Roles = append(rec.Roles, principal)
			}
		case s.name("PublicationInfo"):
			publication = child
		}
	}

	if publication != nil {
		if authors := publication.ChildText(s.name("Authors")); authors != "" {
			rec.Authors = []string{authors}
			rec.Roles = []string{authorRole}
			rec.FromPublication = true
		}
		if date := publication.ChildText(s.name("PublicationDate")); date != "" {
			rec.PublicationDate = date
		}
		if by := publication.ChildText(s.name("PublishedBy")); by != "" {
			rec.Publisher = by
		}
		if title := publication.ChildText(s.name("Title")); title != "" {
			rec.Title = title
		}
	}
	return rec
}

// repositoryName is the part of the last RepositoryID after "Repository/".
func (s *Strategy) repositoryName() string {
	ids := s.texts("AccessInformation/RepositoryID")
	if len(ids) == 0 {
		return ""
	}
	_, name, _ := strings.Cut(ids[len(ids)-1], "Repository/")
	return name
}

func (s *Strategy) publisherName() string {
	if p := s.authorRecord().Publisher; p != "" {
		return p
	}
	return s.repositoryName()
}

// Citation renders "Authors (Year). Title. Publisher. URL". The year is
// the publication date, else the release date, else the earliest
// revision; the year and title segments are left out when unknown.
func (s *Strategy) Citation() any {
	if s.doc.RecordRoot() == nil {
		return nil
	}
	rec := s.authorRecord()

	yr := year(rec.PublicationDate)
	if yr == "" {
		yr = year(s.dateModified())
	}
	if yr == "" {
		yr = year(s.datePublished())
	}
	publisher := s.publisherName()
	if publisher == "" {
		publisher = DefaultPublisher
	}

	authors := names.CitationList(names.Parse(rec.Authors))
	var b strings.Builder
	b.WriteString(authors)
	switch {
	case yr != "":
		b.WriteString(" (" + yr + "). ")
	case authors != "":
		if !strings.HasSuffix(authors, ".") {
			b.WriteString(".")
		}
		b.WriteString(" ")
	}
	if rec.Title != "" {
		b.WriteString(rec.Title + ". ")
	}
	b.WriteString(publisher + ". ")
	b.WriteString(s.url())
	citation := strings.TrimSpace(b.String())

	if s.opts.Extended {
		if about := s.informationURLs(); len(about) > 0 {
			return map[string]any{
				"@type":    vocabulary.TypeCreativeWork,
				"citation": citation,
				"about":    about,
			}
		}
	}
	return citation
}

// Creator lists one Role per resolved author, in source order.
func (s *Strategy) Creator() any {
	rec := s.authorRecord()

	var out []any
	for i, raw := range rec.Authors {
		role := authorRole
		if !rec.FromPublication && i < len(rec.Roles) {
			role = rec.Roles[i]
		}

		if names.IsIdentifier(raw) {
			out = append(out, s.roleEntry("creator", role, names.FromIdentifier(raw), raw))
			continue
		}
		for _, p := range names.ParseList(raw) {
			out = append(out, s.roleEntry("creator", role, p, matchContact(p, rec.Contacts)))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// roleEntry wraps a person in a schema.org Role under key ("creator",
// "contributor"). id is the person identifier used for the sibling
// record lookup, possibly "".
func (s *Strategy) roleEntry(key, role string, p names.Person, id string) map[string]any {
	person := map[string]any{
		"@type": vocabulary.TypePerson,
		"name":  p.FullName(),
	}
	if p.Given != "" {
		person["givenName"] = p.Given
	}
	if p.Family != "" {
		person["familyName"] = p.Family
	}
	if s.opts.Extended && id != "" {
		if info, ok := s.lookupPerson(id); ok {
			if info.Affiliation != "" {
				person["affiliation"] = map[string]any{
					"@type": vocabulary.TypeOrganization,
					"name":  info.Affiliation,
				}
			}
			if info.ORCID != "" {
				person["identifier"] = crosswalk.ORCIDIdentifier(info.ORCID)
			}
		}
	}
	return map[string]any{
		"@type":    vocabulary.TypeRole,
		"roleName": role,
		key:        person,
	}
}

// matchContact finds the contact identifier naming the same person as p.
func matchContact(p names.Person, contacts []string) string {
	if p.IsLiteral() || p.Family == "" {
		return ""
	}
	for _, id := range contacts {
		c := names.FromIdentifier(id)
		if !strings.EqualFold(c.Family, p.Family) {
			continue
		}
		a, b := names.Initials(c.Given), names.Initials(p.Given)
		if a == "" || b == "" || a[0] == b[0] {
			return id
		}
	}
	return ""
}
