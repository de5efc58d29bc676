package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownSection is returned by Store.Section for names outside SectionNames.
var ErrUnknownSection = errors.New("content: unknown section")

// Section names understood by Store.Section.
const (
	SectionProjects     = "projects"
	SectionSkills       = "skills"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionCertificates = "certificates"
	SectionAchievements = "achievements"
	SectionNav          = "nav"
	SectionStats        = "stats"
)

// SectionNames lists every section in the order they appear on the page.
func SectionNames() []string {
	return []string{
		SectionNav,
		SectionStats,
		SectionSkills,
		SectionProjects,
		SectionExperience,
		SectionEducation,
		SectionCertificates,
		SectionAchievements,
	}
}

// Data is the raw input of a Store.
type Data struct {
	Profile      Profile           `yaml:"profile"`
	Projects     []Project         `yaml:"projects" validate:"dive"`
	Skills       []SkillCategory   `yaml:"skills" validate:"dive"`
	Experience   []ExperienceEntry `yaml:"experience" validate:"dive"`
	Education    []EducationEntry  `yaml:"education" validate:"dive"`
	Certificates []Certificate     `yaml:"certificates" validate:"dive"`
	Achievements []Achievement     `yaml:"achievements" validate:"dive"`
	Nav          []NavLink         `yaml:"nav" validate:"required,min=1,dive"`
	Stats        []Stat            `yaml:"stats" validate:"dive"`
}

// Store is a read-only view over Data. Every accessor returns a copy, so the
// records it was built from cannot be changed through it.
type Store struct {
	data Data
}

// New builds a Store from d. d is deep-copied.
func New(d Data) *Store {
	return &Store{data: d.clone()}
}

// Default returns the store holding the site owner's records.
func Default() *Store {
	return New(Data{
		Profile:      profile,
		Projects:     projects,
		Skills:       skills,
		Experience:   experience,
		Education:    education,
		Certificates: certificates,
		Achievements: achievements,
		Nav:          navLinks,
		Stats:        stats,
	})
}

func (s *Store) Profile() Profile {
	p := s.data.Profile
	p.Bio = cloneStrings(p.Bio)
	return p
}

func (s *Store) Projects() []Project {
	out := make([]Project, len(s.data.Projects))
	for i, p := range s.data.Projects {
		p.Tags = cloneStrings(p.Tags)
		out[i] = p
	}
	return out
}

func (s *Store) Skills() []SkillCategory {
	out := make([]SkillCategory, len(s.data.Skills))
	for i, c := range s.data.Skills {
		c.Skills = cloneStrings(c.Skills)
		out[i] = c
	}
	return out
}

func (s *Store) Experience() []ExperienceEntry {
	out := make([]ExperienceEntry, len(s.data.Experience))
	for i, e := range s.data.Experience {
		e.Tech = cloneStrings(e.Tech)
		out[i] = e
	}
	return out
}

func (s *Store) Education() []EducationEntry {
	return append([]EducationEntry(nil), s.data.Education...)
}

func (s *Store) Certificates() []Certificate {
	return append([]Certificate(nil), s.data.Certificates...)
}

func (s *Store) Achievements() []Achievement {
	return append([]Achievement(nil), s.data.Achievements...)
}

func (s *Store) Nav() []NavLink {
	return append([]NavLink(nil), s.data.Nav...)
}

func (s *Store) Stats() []Stat {
	return append([]Stat(nil), s.data.Stats...)
}

// Data returns a deep copy of everything in the store.
func (s *Store) Data() Data {
	return s.data.clone()
}

// Section returns the ordered records of the named section.
func (s *Store) Section(name string) ([]any, error) {
	var out []any
	switch name {
	case SectionProjects:
		for _, r := range s.Projects() {
			out = append(out, r)
		}
	case SectionSkills:
		for _, r := range s.Skills() {
			out = append(out, r)
		}
	case SectionExperience:
		for _, r := range s.Experience() {
			out = append(out, r)
		}
	case SectionEducation:
		for _, r := range s.Education() {
			out = append(out, r)
		}
	case SectionCertificates:
		for _, r := range s.Certificates() {
			out = append(out, r)
		}
	case SectionAchievements:
		for _, r := range s.Achievements() {
			out = append(out, r)
		}
	case SectionNav:
		for _, r := range s.Nav() {
			out = append(out, r)
		}
	case SectionStats:
		for _, r := range s.Stats() {
			out = append(out, r)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return out, nil
}

// MailtoURL builds a mailto: link for addr with an optional subject.
func MailtoURL(addr, subject string) string {
	u := url.URL{Scheme: "mailto", Opaque: addr}
	if subject != "" {
		// url.Values encodes spaces as '+', which mail clients show literally.
		u.RawQuery = "subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	}
	return u.String()
}

// IsExternal reports whether href leaves the page.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

func (d Data) clone() Data {
	out := d
	out.Profile.Bio = cloneStrings(d.Profile.Bio)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Tags = cloneStrings(p.Tags)
		out.Projects[i] = p
	}
	out.Skills = make([]SkillCategory, len(d.Skills))
	for i, c := range d.Skills {
		c.Skills = cloneStrings(c.Skills)
		out.Skills[i] = c
	}
	out.Experience = make([]ExperienceEntry, len(d.Experience))
	for i, e := range d.Experience {
		e.Tech = cloneStrings(e.Tech)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Certificates = append([]Certificate(nil), d.Certificates...)
	out.Achievements = append([]Achievement(nil), d.Achievements...)
	out.Nav = append([]NavLink(nil), d.Nav...)
	out.Stats = append([]Stat(nil), d.Stats...)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
