package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/rmaulika/folio/content"
	"github.com/rmaulika/folio/motion"
)

// fader hands out container stagger indexes to the fade items of one reveal
// section, in document order.
type fader struct {
	next int
}

func (f *fader) attrs(ordinal int) string {
	s := fadeAttrs(ordinal, f.next)
	f.next++
	return s
}

// openSection starts a reveal container. An empty id renders no anchor.
func openSection(h *htmlWriter, id, class string) {
	h.raw(`<section`)
	if id != "" {
		h.attr("id", id)
	}
	h.attr("class", "section "+class)
	h.raw(revealAttrs(), `><div class="container">`)
}

func closeSection(h *htmlWriter) {
	h.raw(`</div></section>`)
}

// sectionHeading renders the eyebrow label, the title and the rule under
// them.
func sectionHeading(h *htmlWriter, f *fader, eyebrow, title string) {
	h.raw(`<p class="eyebrow"`, f.attrs(0), `>`)
	h.text(eyebrow)
	h.raw(`</p><h2 class="section-title"`, f.attrs(0), `>`)
	h.text(title)
	h.raw(`</h2><hr class="rule">`)
}

func tagList(h *htmlWriter, class string, tags []string) {
	h.raw(`<ul class="`, class, `">`)
	for _, t := range tags {
		h.raw(`<li class="tag">`)
		h.text(t)
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}

// externalLink writes an anchor opening tag; outbound links open in a new tab.
func externalLink(h *htmlWriter, class, href string) {
	h.raw(`<a`)
	if class != "" {
		h.attr("class", class)
	}
	h.href(href)
	if content.IsExternal(href) {
		h.raw(` target="_blank" rel="noopener noreferrer"`)
	}
	h.raw(`>`)
}

// Hero renders the introduction. Its entrances play on page load rather than
// on scroll.
func Hero(p content.Profile) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="hero"><div class="hero-glow" aria-hidden="true"></div><div class="container">`)
		if p.Availability != "" {
			h.raw(`<div`, enterAttrs(motion.HeroBadge), `><span class="badge availability"><span class="pulse" aria-hidden="true"></span>`)
			h.text(p.Availability)
			h.raw(`</span></div>`)
		}
		h.raw(`<h1 class="hero-title"`, enterAttrs(motion.HeroHeading), `>I'm `)
		h.text(p.FirstName)
		h.raw(`,<br><span class="muted">`)
		h.text(p.Headline)
		h.raw(`</span></h1>`)
		h.raw(`<p class="hero-lede"`, enterAttrs(motion.HeroLede), `>`)
		h.text(p.Intro)
		h.raw(`</p>`)
		h.raw(`<div class="hero-links"`, enterAttrs(motion.HeroLinks), `>`)
		h.raw(`<a class="button" href="#projects">View work `, iconArrowDown, `</a>`)
		h.raw(`<span class="divider" aria-hidden="true"></span>`)
		socialIcons(h, p)
		h.raw(`</div></div></section>`)
	})
}

func socialIcons(h *htmlWriter, p content.Profile) {
	h.raw(`<div class="social">`)
	if p.GitHub != "" {
		externalLink(h, "icon-button", p.GitHub)
		h.raw(iconGitHub, `<span class="sr-only">GitHub</span></a>`)
	}
	if p.LinkedIn != "" {
		externalLink(h, "icon-button", p.LinkedIn)
		h.raw(iconLinkedIn, `<span class="sr-only">LinkedIn</span></a>`)
	}
	if p.Email != "" {
		externalLink(h, "icon-button", content.MailtoURL(p.Email, ""))
		h.raw(iconMail, `<span class="sr-only">Email</span></a>`)
	}
	h.raw(`</div>`)
}

// About renders the Markdown bio and the headline counters.
func About(p content.Profile, stats []content.Stat) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "about", "about")
		sectionHeading(h, f, "About", "A bit about me")
		h.raw(`<div class="bio"`, f.attrs(1), `>`)
		for _, para := range p.Bio {
			html, err := content.RenderMarkdown(para)
			if err != nil {
				h.err = err
				return
			}
			h.raw(html)
		}
		h.raw(`</div>`)

		// The counters form their own stagger group.
		stagger := &fader{}
		h.raw(`<div class="stats">`)
		for _, s := range stats {
			h.raw(`<div class="card stat"`, stagger.attrs(0), `><span class="stat-value">`)
			h.text(s.Value)
			h.raw(`</span><span class="stat-label">`)
			h.text(s.Label)
			h.raw(`</span></div>`)
		}
		h.raw(`</div>`)
		closeSection(h)
	})
}

// Skills renders one badge group per category.
func Skills(categories []content.SkillCategory) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "skills", "skills surface")
		sectionHeading(h, f, "Skills", "Technical toolkit")
		h.raw(`<div class="skill-groups">`)
		for _, c := range categories {
			h.raw(`<div class="skill-group"`, f.attrs(0), `><h3>`)
			h.text(c.Category)
			h.raw(`</h3>`)
			tagList(h, "badges", c.Skills)
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
		closeSection(h)
	})
}

// Projects renders one card per project.
func Projects(projects []content.Project) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "projects", "projects")
		sectionHeading(h, f, "Projects", "Selected work")
		h.raw(`<div class="grid grid-2">`)
		for _, p := range projects {
			h.raw(`<article class="card project"`, f.attrs(0), `>`)
			externalLink(h, "card-link", p.Link)
			h.raw(`<header class="card-header"><div><h3 class="card-title">`)
			h.text(p.Title)
			h.raw(`</h3><p class="project-date mono">`)
			h.text(p.Date)
			h.raw(`</p></div>`, iconArrowOut, `</header>`)
			h.raw(`<p class="card-description">`)
			h.text(p.Description)
			h.raw(`</p>`)
			tagList(h, "tags", p.Tags)
			h.raw(`</a></article>`)
		}
		h.raw(`</div>`)
		closeSection(h)
	})
}

// Experience renders the roles, most recent first.
func Experience(entries []content.ExperienceEntry) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "experience", "experience surface")
		sectionHeading(h, f, "Experience", "Where I've worked")
		h.raw(`<div class="stack">`)
		for _, e := range entries {
			h.raw(`<article class="card role"`, f.attrs(0), `><header class="card-header"><div><h3 class="card-title">`)
			h.text(e.Role + " — " + e.Company)
			h.raw(`</h3>`)
			if e.Via != "" {
				h.raw(`<p class="muted small">via `)
				h.text(e.Via)
				h.raw(`</p>`)
			}
			h.raw(`</div><span class="period mono">`)
			h.text(e.Period)
			h.raw(`</span></header><p class="card-description">`)
			h.text(e.Description)
			h.raw(`</p>`)
			tagList(h, "tags", e.Tech)
			h.raw(`</article>`)
		}
		h.raw(`</div>`)
		closeSection(h)
	})
}

// Education renders one card per institution.
func Education(entries []content.EducationEntry) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "education", "education")
		sectionHeading(h, f, "Education", "Academic background")
		h.raw(`<div class="grid grid-3">`)
		for _, e := range entries {
			h.raw(`<article class="card school"`, f.attrs(0), `><span class="badge accent">`)
			h.text(e.Period)
			h.raw(`</span><h3 class="card-title">`)
			h.text(e.Institution)
			h.raw(`</h3><p class="muted small">`)
			h.text(e.Location)
			h.raw(`</p><p class="degree">`)
			h.text(e.Degree)
			h.raw(`</p>`)
			if e.Score != "" {
				h.raw(`<p class="score">`)
				h.text(e.Score)
				h.raw(`</p>`)
			}
			h.raw(`</article>`)
		}
		h.raw(`</div>`)
		closeSection(h)
	})
}

// Certifications renders certificates next to achievements. The section has
// no anchor of its own.
func Certifications(certs []content.Certificate, achievements []content.Achievement) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "", "certifications surface")
		sectionHeading(h, f, "Certifications & Achievements", "Recognition")
		h.raw(`<div class="grid grid-2">`)

		h.raw(`<div class="column"`, f.attrs(0), `><h3>Certificates</h3>`)
		for _, c := range certs {
			h.raw(`<div class="card certificate"><h4>`)
			h.text(c.Title)
			h.raw(`</h4><p class="small"><span class="accent">`)
			h.text(c.Issuer)
			h.raw(`</span> <span class="muted">`)
			h.text(c.Date)
			h.raw(`</span></p></div>`)
		}
		h.raw(`</div>`)

		h.raw(`<div class="column"`, f.attrs(0), `><h3>Achievements</h3>`)
		for _, a := range achievements {
			h.raw(`<div class="card achievement"><p class="muted">`)
			h.text(a.Text)
			h.raw(`</p></div>`)
		}
		h.raw(`</div>`)

		h.raw(`</div>`)
		closeSection(h)
	})
}

// Contact renders the closing call to action with the outbound links.
func Contact(p content.Profile) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := &fader{}
		openSection(h, "contact", "contact")
		sectionHeading(h, f, "Contact", "Let's work together")
		h.raw(`<p class="lede"`, f.attrs(1), `>`)
		h.text(p.ContactBlurb)
		h.raw(`</p>`)
		h.raw(`<div class="contact-links"`, f.attrs(2), `>`)
		if p.Email != "" {
			externalLink(h, "button", content.MailtoURL(p.Email, "Hello from your portfolio"))
			h.raw(iconMail, ` Say hello</a>`)
		}
		if p.GitHub != "" {
			externalLink(h, "button button-outline", p.GitHub)
			h.raw(iconGitHub, ` GitHub</a>`)
		}
		if p.LinkedIn != "" {
			externalLink(h, "button button-outline", p.LinkedIn)
			h.raw(iconLinkedIn, ` LinkedIn</a>`)
		}
		h.raw(`</div>`)
		closeSection(h)
	})
}

// Footer renders the copyright line and credits.
func Footer(p content.Profile, year int) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<footer class="site-footer"><div class="container footer-row"><span class="small muted">&copy; `)
		h.raw(strconv.Itoa(year), " ")
		h.text(p.Name)
		h.raw(`</span>`)
		if p.Credits != "" {
			h.raw(`<span class="small muted">`)
			h.text(p.Credits)
			h.raw(`</span>`)
		}
		h.raw(`</div></footer>`)
	})
}
