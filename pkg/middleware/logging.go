package middleware

import (
	"net/http"
	"time"

	"github.com/docqa/docqa/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through pkg/logger. Client errors
// log at warn and server errors at error.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		lvl := logger.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			lvl = logger.LevelError
		case status >= http.StatusBadRequest:
			lvl = logger.LevelWarn
		}
		f := logger.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": time.Since(start).Round(time.Microsecond).String(),
			"client":  c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			f["errors"] = c.Errors.String()
		}
		logger.Log(lvl, "http request", f)
	}
}

// CORS allows every origin, method and header, answering preflights directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		if req := c.GetHeader("Access-Control-Request-Headers"); req != "" {
			h.Set("Access-Control-Allow-Headers", req)
		} else {
			h.Set("Access-Control-Allow-Headers", "*")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
