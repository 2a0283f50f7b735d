package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/session"
	"github.com/nicodeveloper97/portfolio/internal/view"
)

// index mounts a new page session and paints the whole page for it.
func (s *Server) index(c *gin.Context) {
	sess, err := s.sessions.Mount()
	if err != nil {
		log.Printf("web: mounting session: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrTooManySessions) {
			status = http.StatusServiceUnavailable
		}
		c.String(status, "Sorry, the page could not be loaded right now.")
		return
	}

	snap, th := sess.Snapshot()
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index.html", s.site.Compose(sess.ID, snap, th))
}

func (s *Server) state(c *gin.Context) {
	sess := currentSession(c)
	snap, th := sess.Snapshot()
	c.JSON(http.StatusOK, view.NewState(snap, th))
}

func (s *Server) projects(c *gin.Context) {
	sess := currentSession(c)
	snap, th := sess.Snapshot()
	c.HTML(http.StatusOK, "projects.html", s.site.Carousel(sess.ID, snap, th))
}

// toggleTheme flips the theme. Every section changes, so htmx callers get
// the whole page body back.
func (s *Server) toggleTheme(c *gin.Context) {
	sess := currentSession(c)
	th := sess.Theme.Toggle()
	snap := sess.Carousel.Snapshot()

	if isHTMX(c) {
		c.HTML(http.StatusOK, "page.html", s.site.Compose(sess.ID, snap, th))
		return
	}
	c.JSON(http.StatusOK, view.NewState(snap, th))
}

// goTo selects a project from an indicator click.
func (s *Server) goTo(c *gin.Context) {
	sess := currentSession(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	if err := sess.Carousel.GoTo(index); err != nil {
		switch {
		case errors.Is(err, carousel.ErrInvalidIndex):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, carousel.ErrClosed):
			c.JSON(http.StatusGone, gin.H{"error": "session ended"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	snap, th := sess.Snapshot()
	if isHTMX(c) {
		c.HTML(http.StatusOK, "projects.html", s.site.Carousel(sess.ID, snap, th))
		return
	}
	c.JSON(http.StatusOK, view.NewState(snap, th))
}

func (s *Server) unmount(c *gin.Context) {
	sess := currentSession(c)
	if err := s.sessions.Unmount(sess.ID); err != nil && !errors.Is(err, session.ErrNotFound) {
		log.Printf("web: unmounting %s: %v", sess.ID, err)
	}
	c.Status(http.StatusNoContent)
}
