package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docqa/docqa/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, path, remote string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if remote != "" {
		req.RemoteAddr = remote
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2))
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, serve(r, "/ok", ""))
	require.Equal(t, http.StatusOK, serve(r, "/ok", ""))
	require.Equal(t, before+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, serve(r, "/limited", ""))
	require.Equal(t, http.StatusTooManyRequests, serve(r, "/limited", ""))

	// one token refills after 500ms at 2 rps
	time.Sleep(600 * time.Millisecond)
	require.Equal(t, http.StatusOK, serve(r, "/limited", ""))
}

func TestRateLimitMiddleware_SeparatesClients(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/u", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, serve(r, "/u", "10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, serve(r, "/u", "10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, serve(r, "/u", "10.0.0.2:1234"))
}

func TestRateLimitMiddleware_IndependentInstances(t *testing.T) {
	a := gin.New()
	a.Use(RateLimitMiddleware(0.5, 1))
	a.GET("/x", func(c *gin.Context) { c.Status(200) })
	b := gin.New()
	b.Use(RateLimitMiddleware(0.5, 1))
	b.GET("/x", func(c *gin.Context) { c.Status(200) })

	require.Equal(t, http.StatusOK, serve(a, "/x", ""))
	require.Equal(t, http.StatusOK, serve(b, "/x", ""))
}
