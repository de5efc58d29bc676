package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDefaultStoreCounts(t *testing.T) {
	s := Default()

	tests := []struct {
		section string
		want    int
	}{
		{SectionProjects, 4},
		{SectionSkills, 4},
		{SectionExperience, 3},
		{SectionEducation, 3},
		{SectionCertificates, 3},
		{SectionAchievements, 2},
		{SectionNav, 6},
		{SectionStats, 4},
	}
	for _, tt := range tests {
		records, err := s.Section(tt.section)
		if err != nil {
			t.Fatalf("Section(%q) failed: %v", tt.section, err)
		}
		if len(records) != tt.want {
			t.Errorf("Section(%q) has %d records, want %d", tt.section, len(records), tt.want)
		}
	}
}

func TestDefaultStoreIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default content should validate: %v", err)
	}
}

func TestSectionNamesAllResolve(t *testing.T) {
	s := Default()
	for _, name := range SectionNames() {
		if _, err := s.Section(name); err != nil {
			t.Errorf("Section(%q) failed: %v", name, err)
		}
	}
}

func TestSectionUnknown(t *testing.T) {
	_, err := Default().Section("blog")
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestSectionPreservesOrder(t *testing.T) {
	records, err := Default().Section(SectionNav)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#about", "#skills", "#projects", "#experience", "#education", "#contact"}
	for i, r := range records {
		link, ok := r.(NavLink)
		if !ok {
			t.Fatalf("record %d is %T, want NavLink", i, r)
		}
		if link.Href != want[i] {
			t.Errorf("nav[%d].Href = %q, want %q", i, link.Href, want[i])
		}
	}
}

func TestStoreAccessorsReturnCopies(t *testing.T) {
	s := Default()

	p := s.Projects()
	p[0].Title = "changed"
	p[0].Tags[0] = "changed"

	again := s.Projects()
	if again[0].Title == "changed" {
		t.Error("mutating returned project changed the store")
	}
	if again[0].Tags[0] == "changed" {
		t.Error("mutating returned tags changed the store")
	}

	prof := s.Profile()
	prof.Bio[0] = "changed"
	if s.Profile().Bio[0] == "changed" {
		t.Error("mutating returned bio changed the store")
	}
}

func TestNewCopiesInput(t *testing.T) {
	d := Data{Nav: []NavLink{{Label: "About", Href: "#about"}}}
	s := New(d)
	d.Nav[0].Label = "changed"
	if s.Nav()[0].Label != "About" {
		t.Errorf("store shares memory with its input: %q", s.Nav()[0].Label)
	}
}

func TestValidateRejectsBadRecords(t *testing.T) {
	d := Default().Data()
	d.Nav = append(d.Nav, NavLink{Label: "Blog", Href: "/blog"})
	d.Projects[0].Link = "not a url"

	err := New(d).Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validator.ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d field errors, want 2: %v", len(verrs), err)
	}
}

func TestValidateAllowsPlaceholderLink(t *testing.T) {
	d := Default().Data()
	d.Projects[1].Link = "#"
	if err := New(d).Validate(); err != nil {
		t.Fatalf("placeholder link should validate: %v", err)
	}
}

func TestMailtoURL(t *testing.T) {
	tests := []struct {
		addr, subject, want string
	}{
		{"maulika@example.com", "", "mailto:maulika@example.com"},
		{"maulika@example.com", "Hello there", "mailto:maulika@example.com?subject=Hello%20there"},
		{"a@b.co", "C++ & Go", "mailto:a@b.co?subject=C%2B%2B%20%26%20Go"},
	}
	for _, tt := range tests {
		if got := MailtoURL(tt.addr, tt.subject); got != tt.want {
			t.Errorf("MailtoURL(%q, %q) = %q, want %q", tt.addr, tt.subject, got, tt.want)
		}
	}
}

func TestIsExternal(t *testing.T) {
	if !IsExternal("https://github.com/RMaulika") {
		t.Error("https link should be external")
	}
	if IsExternal("#about") || IsExternal("#") {
		t.Error("anchors should not be external")
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("Interned at **IBM** & <script>x</script>")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<strong>IBM</strong>") {
		t.Errorf("expected bold markup, got %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw html should not pass through: %q", html)
	}
}
