package web

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// adminAuthMiddleware accepts the admin token as a bearer token or as the
// admin_token cookie.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			token, _ = c.Cookie("admin_token")
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if s.visits == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
			return
		}
		c.Next()
	}
}

// setupAdminRoutes registers the admin API when a token is configured.
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if s.adminToken == "" {
		return
	}
	log.Printf("Admin API available at: /admin/api")

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"stats":    stats,
			"sessions": s.sessions.Len(),
		})
	})

	adminGroup.GET("/api/visitors", func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "200"))
		if err != nil || limit < 1 || limit > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 1000"})
			return
		}
		visitors, err := s.visits.Recent(c.Request.Context(), limit)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visitors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"visitors": visitors})
	})

	// Removes visits past the retention window now instead of waiting for
	// the scheduled cleanup.
	adminGroup.POST("/api/cleanup", func(c *gin.Context) {
		removed, err := s.visits.Cleanup(c.Request.Context(), time.Duration(s.retentionDays)*24*time.Hour)
		if err != nil {
			log.Printf("Error cleaning up visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cleanup failed"})
			return
		}
		log.Printf("Privacy cleanup: Removed %d visitor records", removed)
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.visits.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
