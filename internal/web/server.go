// Package web is the HTTP surface of the portfolio: the page itself, the
// per-session theme and carousel endpoints, the live channel and the admin
// API.
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicodeveloper97/portfolio/internal/session"
	"github.com/nicodeveloper97/portfolio/internal/view"
	"github.com/nicodeveloper97/portfolio/internal/visits"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires a Server. Visits may be nil to disable tracking; an empty
// AdminToken leaves the admin API unregistered.
type Options struct {
	Site          *view.Site
	Sessions      *session.Manager
	Visits        *visits.Store
	AdminToken    string
	ImagesDir     string
	Version       string
	RetentionDays int
}

type Server struct {
	site          *view.Site
	sessions      *session.Manager
	visits        *visits.Store
	adminToken    string
	imagesDir     string
	version       string
	retentionDays int

	tmpl *template.Template
}

// New parses the embedded templates.
func New(opts Options) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parsing templates: %w", err)
	}
	return &Server{
		site:          opts.Site,
		sessions:      opts.Sessions,
		visits:        opts.Visits,
		adminToken:    opts.AdminToken,
		imagesDir:     opts.ImagesDir,
		version:       opts.Version,
		retentionDays: opts.RetentionDays,
		tmpl:          tmpl,
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.tmpl)

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))
	if s.imagesDir != "" {
		r.Static("/images", s.imagesDir)
	}

	r.Use(s.visitorTrackingMiddleware())

	r.GET("/", s.index)
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":         "Privacy Policy",
			"retentionDays": s.retentionDays,
		})
	})

	sessions := r.Group("/s/:id", s.sessionMiddleware())
	sessions.GET("/state", s.state)
	sessions.GET("/projects", s.projects)
	sessions.GET("/live", s.live)
	sessions.POST("/theme", s.rateLimitMiddleware(), s.toggleTheme)
	sessions.POST("/carousel/:index", s.rateLimitMiddleware(), s.goTo)
	sessions.DELETE("", s.unmount)
	sessions.POST("/unmount", s.unmount)

	NewHealthHandler("portfolio", s.version, s.sessions, s.visits).RegisterRoutes(r)
	s.setupAdminRoutes(r)

	return r
}

// renderFragment executes one named template into a string, for pushing
// over the live channel.
func (s *Server) renderFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("web: rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
