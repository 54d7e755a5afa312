package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"
	handlershared "github.com/bgcollection/storefront/internal/http/handlers/shared"
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/repository"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("generated request id should not be empty")
	}
	if resp := strings.TrimSpace(generated); resp == "" {
		t.Fatalf("generated request id should not be blank")
	}
}


type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func newSessionEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString(handlershared.SessionIDContextKey)})
	})
	return r
}

func TestSessionMiddlewareGeneratesID(t *testing.T) {
	r := newSessionEngine()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	generated := w.Header().Get(handlershared.SessionIDHeader)
	if !sessionIDPattern.MatchString(generated) {
		t.Fatalf("generated session id should be url safe, got %q", generated)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["session_id"] != generated {
		t.Fatalf("context session id should match header, got %q want %q", body["session_id"], generated)
	}
}

func TestSessionMiddlewareEchoesClientID(t *testing.T) {
	r := newSessionEngine()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(handlershared.SessionIDHeader, "browser-session_01")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(handlershared.SessionIDHeader); got != "browser-session_01" {
		t.Fatalf("session id should be echoed, got %q", got)
	}
}

func TestSessionMiddlewareRejectsMalformedID(t *testing.T) {
	r := newSessionEngine()
	for _, raw := range []string{"short", "has space inside", "semi;colon-value", strings.Repeat("a", 129)} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(handlershared.SessionIDHeader, raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		resp := decodeEnvelope(t, w)
		if resp.StatusCode != response.CodeBadRequest {
			t.Fatalf("session id %q should be rejected, got status_code %d", raw, resp.StatusCode)
		}
	}
}

func newTestAuthService(secret string) *service.AuthService {
	state := service.NewSessionState(repository.NewMemoryStorageRepository())
	return service.NewAuthService(state, config.AuthConfig{}, config.JWTConfig{SecretKey: secret, ExpireHours: 1})
}

func newUserAuthEngine(authService *service.AuthService, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/me", UserJWTAuthMiddleware(authService, secret), func(c *gin.Context) {
		response.Success(c, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func loginForTest(t *testing.T, authService *service.AuthService, sessionID string) *service.AuthResult {
	t.Helper()
	result, err := authService.Login(context.Background(), sessionID, service.LoginInput{Email: "shopper@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return result
}

func serveMe(r *gin.Engine, sessionID, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(handlershared.SessionIDHeader, sessionID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserJWTAuthMiddlewareMissingSecret(t *testing.T) {
	r := newUserAuthEngine(newTestAuthService("secret"), "")
	resp := decodeEnvelope(t, serveMe(r, "session-0001", "anything"))
	if resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("missing secret should be unauthorized, got %d", resp.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareRejectsMissingAndForeignTokens(t *testing.T) {
	authService := newTestAuthService("secret")
	r := newUserAuthEngine(authService, "secret")

	if resp := decodeEnvelope(t, serveMe(r, "session-0001", "")); resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("missing header should be unauthorized, got %d", resp.StatusCode)
	}

	foreign := loginForTest(t, newTestAuthService("other-secret"), "session-0001")
	if resp := decodeEnvelope(t, serveMe(r, "session-0001", foreign.Token)); resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("token signed by another key should be unauthorized, got %d", resp.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareAcceptsSessionToken(t *testing.T) {
	authService := newTestAuthService("secret")
	r := newUserAuthEngine(authService, "secret")
	result := loginForTest(t, authService, "session-0001")

	resp := decodeEnvelope(t, serveMe(r, "session-0001", result.Token))
	if resp.StatusCode != 0 {
		t.Fatalf("valid token should pass, got %d msg=%s", resp.StatusCode, resp.Msg)
	}
	var data map[string]string
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if data["user_id"] != result.User.ID {
		t.Fatalf("user id mismatch: got %q want %q", data["user_id"], result.User.ID)
	}
}

func TestUserJWTAuthMiddlewareRejectsOtherSession(t *testing.T) {
	authService := newTestAuthService("secret")
	r := newUserAuthEngine(authService, "secret")
	result := loginForTest(t, authService, "session-0001")

	resp := decodeEnvelope(t, serveMe(r, "session-0002", result.Token))
	if resp.StatusCode != response.CodeForbidden {
		t.Fatalf("token bound to another session should be forbidden, got %d", resp.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.UseClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "bg-test")
	t.Cleanup(func() { cache.UseClient(nil, "") })

	authService := newTestAuthService("secret")
	r := newUserAuthEngine(authService, "secret")
	result := loginForTest(t, authService, "session-0001")

	claims, err := authService.ParseUserJWT(result.Token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if err := authService.Logout(context.Background(), "session-0001", claims); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	resp := decodeEnvelope(t, serveMe(r, "session-0001", result.Token))
	if resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("revoked token should be unauthorized, got %d", resp.StatusCode)
	}
}
