// Package content holds the static records rendered by the portfolio page.
// Records are defined once at process start and never mutated.
package content

// Project is a card in the projects section.
type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tags        []string `yaml:"tags" validate:"required,min=1,dive,required"`
	Link        string   `yaml:"link" validate:"required,url|eq=#"`
	Date        string   `yaml:"date" validate:"required"`
}

// SkillCategory groups skill badges under a heading.
type SkillCategory struct {
	Category string   `yaml:"category" validate:"required"`
	Skills   []string `yaml:"skills" validate:"required,min=1,dive,required"`
}

// ExperienceEntry is a single role in the experience section.
type ExperienceEntry struct {
	Role        string   `yaml:"role" validate:"required"`
	Company     string   `yaml:"company" validate:"required"`
	Via         string   `yaml:"via,omitempty"`
	Period      string   `yaml:"period" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tech        []string `yaml:"tech" validate:"dive,required"`
}

// Certificate is listed under certifications.
type Certificate struct {
	Title  string `yaml:"title" validate:"required"`
	Issuer string `yaml:"issuer" validate:"required"`
	Date   string `yaml:"date" validate:"required"`
}

// Achievement is a free-form line under certifications.
type Achievement struct {
	Text string `yaml:"text" validate:"required"`
}

// EducationEntry is a card in the education section.
type EducationEntry struct {
	Institution string `yaml:"institution" validate:"required"`
	Location    string `yaml:"location" validate:"required"`
	Degree      string `yaml:"degree" validate:"required"`
	Score       string `yaml:"score,omitempty"`
	Period      string `yaml:"period" validate:"required"`
}

// NavLink is an in-page anchor shown in the navigation bar.
type NavLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,startswith=#"`
}

// Stat is a headline counter in the about section.
type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Profile carries the owner's identity and the free text around the sections.
type Profile struct {
	Name         string   `yaml:"name" validate:"required"`
	FirstName    string   `yaml:"first_name" validate:"required"`
	Headline     string   `yaml:"headline" validate:"required"`
	Tagline      string   `yaml:"tagline" validate:"required"`
	Intro        string   `yaml:"intro" validate:"required"`
	Bio          []string `yaml:"bio" validate:"required,min=1,dive,required"` // Markdown paragraphs
	Email        string   `yaml:"email" validate:"required,email"`
	GitHub       string   `yaml:"github" validate:"required,url"`
	LinkedIn     string   `yaml:"linkedin" validate:"required,url"`
	Availability string   `yaml:"availability"`
	ContactBlurb string   `yaml:"contact_blurb" validate:"required"`
	Credits      string   `yaml:"credits"`
}
