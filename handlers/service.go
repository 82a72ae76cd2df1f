package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// ReadinessCheck reports whether one dependency is usable.
type ReadinessCheck func() bool

// RegisterServiceRoutes mounts GET / (metadata), /health and /ready. Every
// named check must pass for /ready to answer 200.
func RegisterServiceRoutes(r gin.IRoutes, checks map[string]ReadinessCheck) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Mistral Document Q&A API",
			"status":  "running",
			"endpoints": gin.H{
				"docs":      "/swagger/index.html",
				"upload":    "/upload",
				"ask":       "/ask",
				"documents": "/documents",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}
		for name, check := range checks {
			ok := check()
			deps[name] = ok
			ready = ready && ok
		}
		uptime := time.Since(startTime).Round(time.Second).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
