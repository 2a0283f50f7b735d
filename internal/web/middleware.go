package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nicodeveloper97/portfolio/internal/session"
)

const sessionKey = "session"

// sessionMiddleware resolves :id to a mounted session or answers 404.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.sessions.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// rateLimitMiddleware caps user actions per session.
func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "slow down"})
			return
		}
		c.Next()
	}
}

// Paths that are not page views.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/s/",
	"/health",
}

// visitorTrackingMiddleware records page views with hashed addresses,
// honouring Do Not Track.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.visits == nil {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		// Unknown paths and failures are not page views.
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.visits.Record(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
	}
}
