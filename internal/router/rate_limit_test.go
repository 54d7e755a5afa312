package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(`{"email":" Asha@Example.com "}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "10.0.0.7:5678"

	require.Equal(t, "asha@example.com|10.0.0.7", KeyByIPAndJSONField("email")(c))

	body, err := io.ReadAll(c.Request.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Asha@Example.com", "request body should be restored")

	c.Request = httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(`{"email":42}`))
	c.Request.RemoteAddr = "10.0.0.7:5678"
	require.Equal(t, "10.0.0.7", KeyByIPAndJSONField("email")(c), "non-string field falls back to ip")
}

func TestKeyBySessionOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/products/1/reviews", nil)
	c.Request.RemoteAddr = "10.0.0.8:1234"
	require.Equal(t, "10.0.0.8", KeyBySessionOrIP(c))

	c.Request.Header.Set("X-Session-ID", "session-abc-123")
	require.Equal(t, "s:session-abc-123", KeyBySessionOrIP(c))
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Contains(t, w.Body.String(), `"ok":true`)
	}
}

func TestRateLimitMiddlewareBlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rule := RateLimitRule{Scene: "form", Prefix: "bg:rate:form", WindowSeconds: 600, MaxRequests: 2, MessageKey: "error.form_too_many"}
	r := gin.New()
	r.POST("/contact", RateLimitMiddleware(client, rule, KeyByIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "10.0.0.9:4321"
		r.ServeHTTP(w, req)
		return w
	}
	require.Contains(t, send().Body.String(), `"status_code":0`)
	require.Contains(t, send().Body.String(), `"status_code":0`)

	blocked := send()
	require.Contains(t, blocked.Body.String(), `"status_code":429`)
	require.Equal(t, "600", blocked.Header().Get("Retry-After"))
	require.True(t, mr.Exists("bg:rate:form:10.0.0.9"))

	mr.FastForward(601 * time.Second)
	require.Contains(t, send().Body.String(), `"status_code":0`, "window expiry resets the counter")
}

func TestRateLimitMiddlewareRedisDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	r := gin.New()
	r.POST("/contact", RateLimitMiddleware(client, RateLimitRule{Scene: "form", WindowSeconds: 60, MaxRequests: 1}, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
	require.Contains(t, w.Body.String(), `"status_code":500`)
}
