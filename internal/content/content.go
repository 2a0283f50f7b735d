// Package content holds the static records the page is built from and loads
// them from a TOML file.
package content

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Project is one portfolio item shown in the carousel.
type Project struct {
	ID           string   `toml:"id" json:"id"`
	Name         string   `toml:"name" json:"name"`
	Image        string   `toml:"image" json:"image"`
	URL          string   `toml:"url" json:"url"`
	Description  string   `toml:"description" json:"description"`
	Technologies []string `toml:"technologies" json:"technologies"`
}

// Experience is the experience card plus the list of services under it.
type Experience struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Services    []string `toml:"services"`
}

// ContactLink is a card in the contact panel.
type ContactLink struct {
	Href        string `toml:"href"`
	Icon        string `toml:"icon"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
}

// Profile is the copy around the sections.
type Profile struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Lang        string `toml:"lang"`
	Greeting    string `toml:"greeting"`
	Role        string `toml:"role"`
	About       string `toml:"about"`
	ProfileURL  string `toml:"profile_url"`

	AboutHeading      string `toml:"about_heading"`
	ExperienceHeading string `toml:"experience_heading"`
	ProjectsHeading   string `toml:"projects_heading"`
	TechHeading       string `toml:"tech_heading"`
	ViewProject       string `toml:"view_project"`
	ContactHeading    string `toml:"contact_heading"`
	ContactLead       string `toml:"contact_lead"`
	ContactHighlight  string `toml:"contact_highlight"`
	ContactTail       string `toml:"contact_tail"`
}

// Content is everything the page renders. It is read once at startup and
// never mutated afterwards.
type Content struct {
	Profile    Profile       `toml:"profile"`
	Experience Experience    `toml:"experience"`
	Projects   []Project     `toml:"projects"`
	Contacts   []ContactLink `toml:"contacts"`
}

// ErrNoProjects means the carousel would have nothing to show.
var ErrNoProjects = errors.New("content: at least one project is required")

// LoadFile decodes path on top of the defaults, so a file only needs the
// sections it changes. Projects and contacts in the file replace the
// defaults entirely.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes TOML content on top of the defaults and validates it.
func Parse(data string) (*Content, error) {
	c := Default()

	var file Content
	md, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("content: decoding: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("content: unknown key %q", undecoded[0].String())
	}

	if md.IsDefined("profile") {
		mergeProfile(&c.Profile, file.Profile)
	}
	if md.IsDefined("experience") {
		c.Experience = file.Experience
	}
	if md.IsDefined("projects") {
		c.Projects = file.Projects
	}
	if md.IsDefined("contacts") {
		c.Contacts = file.Contacts
	}

	c.assignIDs()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func mergeProfile(dst *Profile, src Profile) {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.Title, src.Title)
	set(&dst.Description, src.Description)
	set(&dst.Lang, src.Lang)
	set(&dst.Greeting, src.Greeting)
	set(&dst.Role, src.Role)
	set(&dst.About, src.About)
	set(&dst.ProfileURL, src.ProfileURL)
	set(&dst.AboutHeading, src.AboutHeading)
	set(&dst.ExperienceHeading, src.ExperienceHeading)
	set(&dst.ProjectsHeading, src.ProjectsHeading)
	set(&dst.TechHeading, src.TechHeading)
	set(&dst.ViewProject, src.ViewProject)
	set(&dst.ContactHeading, src.ContactHeading)
	set(&dst.ContactLead, src.ContactLead)
	set(&dst.ContactHighlight, src.ContactHighlight)
	set(&dst.ContactTail, src.ContactTail)
}

// assignIDs gives every project without an id a slug of its name.
func (c *Content) assignIDs() {
	for i := range c.Projects {
		if c.Projects[i].ID == "" {
			c.Projects[i].ID = slug(c.Projects[i].Name)
		}
	}
}

// Validate checks the records exist and links parse. It does not fetch
// anything.
func (c *Content) Validate() error {
	if len(c.Projects) == 0 {
		return ErrNoProjects
	}
	seen := make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("content: project %d: name is required", i)
		}
		if p.URL != "" {
			if _, err := url.ParseRequestURI(p.URL); err != nil {
				return fmt.Errorf("content: project %d (%s): bad url: %w", i, p.Name, err)
			}
		}
		if j, dup := seen[p.ID]; dup {
			return fmt.Errorf("content: project %d (%s): id %q already used by project %d", i, p.Name, p.ID, j)
		}
		seen[p.ID] = i
	}
	for i, l := range c.Contacts {
		if l.Href == "" || l.Label == "" {
			return fmt.Errorf("content: contact %d: href and label are required", i)
		}
	}
	return nil
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
