// Package view describes what each page section should display. Every
// section is a pure function of the theme (plus static content and, for the
// carousel, a snapshot), so templates only have to paint the result.
package view

import (
	"html/template"

	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/content"
	"github.com/nicodeveloper97/portfolio/internal/scroll"
	"github.com/nicodeveloper97/portfolio/internal/theme"
)

// Heading classes shared by every section title.
const headingGradient = "bg-clip-text text-transparent bg-gradient-to-r from-green-400 to-blue-500"

// ThemeButton is the floating toggle.
type ThemeButton struct {
	Label string
}

// RenderThemeButton names the theme the button switches to.
func RenderThemeButton(t theme.Theme) ThemeButton {
	if t.IsDark() {
		return ThemeButton{Label: "Light Mode"}
	}
	return ThemeButton{Label: "Dark Mode"}
}

// ProgressBar carries the spring constants the browser smooths with.
type ProgressBar struct {
	Initial   float64
	Stiffness float64
	Damping   float64
	RestDelta float64
}

func RenderProgressBar() ProgressBar {
	s := scroll.NewSpring()
	return ProgressBar{
		Initial:   s.Value(),
		Stiffness: s.Stiffness,
		Damping:   s.Damping(),
		RestDelta: s.RestDelta,
	}
}

type Hero struct {
	Section  string
	Greeting string
	Role     string
	RoleText string
	Heading  string
}

func RenderHero(t theme.Theme, p content.Profile) Hero {
	pal := theme.PaletteFor(t)
	return Hero{
		Section:  pal.Hero,
		Greeting: p.Greeting,
		Role:     p.Role,
		RoleText: pal.Heading,
		Heading:  headingGradient,
	}
}

type About struct {
	Section    string
	Title      string
	Heading    string
	Text       template.HTML
	TextClass  string
	ProfileURL string
}

func RenderAbout(t theme.Theme, p content.Profile, text template.HTML) About {
	pal := theme.PaletteFor(t)
	return About{
		Section:    pal.Section,
		Title:      p.AboutHeading,
		Heading:    headingGradient,
		Text:       text,
		TextClass:  pal.Body,
		ProfileURL: p.ProfileURL,
	}
}

// Service is one bullet of the experience list. Delay staggers its entry.
type Service struct {
	Text  string
	Delay float64
}

type Experience struct {
	Section   string
	Title     string
	Heading   string
	Card      string
	CardTitle string
	CardBody  string
	ItemClass string
	Role      string
	Summary   string
	Services  []Service
}

func RenderExperience(t theme.Theme, p content.Profile, e content.Experience) Experience {
	pal := theme.PaletteFor(t)
	services := make([]Service, len(e.Services))
	for i, s := range e.Services {
		services[i] = Service{Text: s, Delay: float64(i) * 0.1}
	}
	return Experience{
		Section:   pal.Section,
		Title:     p.ExperienceHeading,
		Heading:   headingGradient,
		Card:      pal.Experience,
		CardTitle: pal.Heading,
		CardBody:  pal.ExpBody,
		ItemClass: pal.Body,
		Role:      e.Title,
		Summary:   e.Description,
		Services:  services,
	}
}

type ContactCard struct {
	content.ContactLink
	Surface    string
	LabelClass string
	TextClass  string
}

type Contact struct {
	Section   string
	Title     string
	Heading   string
	LeadClass string
	Lead      string
	Highlight string
	HighClass string
	Tail      string
	Cards     []ContactCard
}

func RenderContact(t theme.Theme, p content.Profile, links []content.ContactLink) Contact {
	pal := theme.PaletteFor(t)
	cards := make([]ContactCard, len(links))
	for i, l := range links {
		cards[i] = ContactCard{
			ContactLink: l,
			Surface:     pal.Contact,
			LabelClass:  pal.Highlight,
			TextClass:   pal.Muted,
		}
	}
	return Contact{
		Section:   pal.Section,
		Title:     p.ContactHeading,
		Heading:   headingGradient,
		LeadClass: pal.Lead,
		Lead:      p.ContactLead,
		Highlight: p.ContactHighlight,
		HighClass: pal.Highlight,
		Tail:      p.ContactTail,
		Cards:     cards,
	}
}

// Slide is the animation descriptor of a carousel transition, in percent of
// the card width.
type Slide struct {
	Direction  string
	EnterX     int
	ExitX      int
	Stiffness  int
	Damping    int
	FadeSecond float64
}

func RenderSlide(d carousel.Direction) Slide {
	return Slide{
		Direction:  d.String(),
		EnterX:     d.EnterOffset(),
		ExitX:      d.ExitOffset(),
		Stiffness:  300,
		Damping:    30,
		FadeSecond: 0.2,
	}
}

type Indicator struct {
	Index  int
	Active bool
	Class  string
}

// Projects is the carousel section for one snapshot.
type Projects struct {
	SessionID   string
	Section     string
	Title       string
	Heading     string
	ActiveIndex int
	Project     content.Project
	Description template.HTML
	Card        string
	CardTitle   string
	CardBody    string
	TechHeading string
	TechClass   string
	Chip        string
	ViewProject string
	Slide       Slide
	Indicators  []Indicator
}

// RenderProjects builds the carousel for snap. snap.ActiveIndex must be a
// valid index into projects, which the controller guarantees.
func RenderProjects(t theme.Theme, p content.Profile, projects []content.Project, descriptions []template.HTML, snap carousel.Snapshot) Projects {
	pal := theme.PaletteFor(t)
	indicators := make([]Indicator, len(projects))
	for i := range projects {
		ind := Indicator{Index: i, Active: i == snap.ActiveIndex, Class: pal.Indicator}
		if ind.Active {
			ind.Class = pal.IndicatorOn
		}
		indicators[i] = ind
	}

	var desc template.HTML
	if snap.ActiveIndex < len(descriptions) {
		desc = descriptions[snap.ActiveIndex]
	}
	return Projects{
		Section:     pal.Section,
		Title:       p.ProjectsHeading,
		Heading:     headingGradient,
		ActiveIndex: snap.ActiveIndex,
		Project:     projects[snap.ActiveIndex],
		Description: desc,
		Card:        pal.Card,
		CardTitle:   pal.CardTitle,
		CardBody:    pal.CardBody,
		TechHeading: p.TechHeading,
		TechClass:   pal.CardLabel,
		Chip:        pal.Chip,
		ViewProject: p.ViewProject,
		Slide:       RenderSlide(snap.Direction),
		Indicators:  indicators,
	}
}
