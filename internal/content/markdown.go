package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders the prose fields (about text, descriptions). Raw HTML in
// the source is dropped.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts src to HTML safe for direct inclusion in a template.
func (m *Markdown) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Rendered is the prose of a Content converted once up front.
type Rendered struct {
	About        template.HTML
	Descriptions []template.HTML // parallel to Content.Projects
}

// RenderAll converts every prose field of c.
func (m *Markdown) RenderAll(c *Content) (*Rendered, error) {
	about, err := m.Render(c.Profile.About)
	if err != nil {
		return nil, err
	}
	r := &Rendered{About: about, Descriptions: make([]template.HTML, len(c.Projects))}
	for i, p := range c.Projects {
		if r.Descriptions[i], err = m.Render(p.Description); err != nil {
			return nil, fmt.Errorf("project %s: %w", p.ID, err)
		}
	}
	return r, nil
}
