package view

import (
	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/content"
	"github.com/nicodeveloper97/portfolio/internal/theme"
)

// Site is the static input of every render: the content and its prose
// already converted to HTML.
type Site struct {
	Content  *content.Content
	Rendered *content.Rendered
}

// NewSite renders the prose of c once.
func NewSite(c *content.Content, md *content.Markdown) (*Site, error) {
	r, err := md.RenderAll(c)
	if err != nil {
		return nil, err
	}
	return &Site{Content: c, Rendered: r}, nil
}

// State is the output contract of the core for one render.
type State struct {
	ActiveIndex int                `json:"activeIndex"`
	Direction   carousel.Direction `json:"direction"`
	IsDark      bool               `json:"isDark"`
}

// NewState combines a carousel snapshot with the theme.
func NewState(snap carousel.Snapshot, t theme.Theme) State {
	return State{ActiveIndex: snap.ActiveIndex, Direction: snap.Direction, IsDark: t.IsDark()}
}

// Page is everything the index template paints.
type Page struct {
	SessionID   string
	Lang        string
	Title       string
	Description string
	Theme       string
	PageClass   string
	State       State

	Button     ThemeButton
	Progress   ProgressBar
	Hero       Hero
	About      About
	Experience Experience
	Projects   Projects
	Contact    Contact
}

// Compose builds the whole page for one session.
func (s *Site) Compose(sessionID string, snap carousel.Snapshot, t theme.Theme) Page {
	c := s.Content
	return Page{
		SessionID:   sessionID,
		Lang:        c.Profile.Lang,
		Title:       c.Profile.Title,
		Description: c.Profile.Description,
		Theme:       t.String(),
		PageClass:   theme.PaletteFor(t).Page,
		State:       NewState(snap, t),

		Button:     RenderThemeButton(t),
		Progress:   RenderProgressBar(),
		Hero:       RenderHero(t, c.Profile),
		About:      RenderAbout(t, c.Profile, s.Rendered.About),
		Experience: RenderExperience(t, c.Profile, c.Experience),
		Projects:   s.Carousel(sessionID, snap, t),
		Contact:    RenderContact(t, c.Profile, c.Contacts),
	}
}

// Carousel renders only the projects section, for partial updates.
func (s *Site) Carousel(sessionID string, snap carousel.Snapshot, t theme.Theme) Projects {
	p := RenderProjects(t, s.Content.Profile, s.Content.Projects, s.Rendered.Descriptions, snap)
	p.SessionID = sessionID
	return p
}
