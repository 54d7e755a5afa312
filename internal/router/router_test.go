package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bgcollection/storefront/internal/config"
	handlershared "github.com/bgcollection/storefront/internal/http/handlers/shared"
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/provider"
	"github.com/bgcollection/storefront/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Decode(v)
	if err != nil {
		t.Fatalf("decode config failed: %v", err)
	}
	cfg.Server.Mode = "test"
	cfg.Auth.LoginDelayMS = 0
	cfg.Storage.Driver = "memory"

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:router_%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	products := repository.NewProductRepository(db)
	seed := []models.Product{
		{ID: "3", Name: "Minimal Clock", Price: models.NewMoneyFromInt(500), Category: "wall-clocks", Colors: models.StringArray{"White"}, Rating: 4.8, Popularity: 80},
		{ID: "14", Name: "Walnut Photo Frame", Price: models.NewMoneyFromInt(899), Category: "photo-frames", Rating: 4.1, Popularity: 60},
	}
	for i := range seed {
		if err := products.Upsert(&seed[i]); err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })

	return SetupRouter(cfg, provider.NewContainer(cfg))
}

type apiCall struct {
	method    string
	path      string
	sessionID string
	token     string
	body      interface{}
}

func doAPI(t *testing.T, r *gin.Engine, call apiCall) envelope {
	t.Helper()
	var reader *bytes.Reader
	if call.body != nil {
		raw, err := json.Marshal(call.body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(call.method, call.path, reader)
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.sessionID != "" {
		req.Header.Set(handlershared.SessionIDHeader, call.sessionID)
	}
	if call.token != "" {
		req.Header.Set("Authorization", "Bearer "+call.token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s should answer http 200, got %d", call.method, call.path, w.Code)
	}
	return decodeEnvelope(t, w)
}

func decodeData(t *testing.T, resp envelope, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, dest); err != nil {
		t.Fatalf("decode data failed: %v data=%s", err, string(resp.Data))
	}
}

func TestRouterHealthAndNotFound(t *testing.T) {
	r := setupTestRouter(t)

	health := doAPI(t, r, apiCall{method: http.MethodGet, path: "/health"})
	if health.StatusCode != 0 {
		t.Fatalf("health should succeed, got %d", health.StatusCode)
	}
	var status struct {
		Database string `json:"database"`
	}
	decodeData(t, health, &status)
	if status.Database != "ok" {
		t.Fatalf("database should be reachable, got %q", status.Database)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/nowhere"}); resp.StatusCode != response.CodeNotFound {
		t.Fatalf("unknown route should map to 404, got %d", resp.StatusCode)
	}
}

func TestRouterCatalog(t *testing.T) {
	r := setupTestRouter(t)

	resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/public/products/3"})
	if resp.StatusCode != 0 {
		t.Fatalf("product detail should succeed, got %d msg=%s", resp.StatusCode, resp.Msg)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/public/products/999"}); resp.StatusCode != response.CodeNotFound {
		t.Fatalf("missing product should be 404, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/public/products?sort=bogus"}); resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("unknown sort should be rejected, got %d", resp.StatusCode)
	}
}

func TestRouterCartFlow(t *testing.T) {
	r := setupTestRouter(t)
	const session = "cart-session-01"

	for i := 0; i < 2; i++ {
		resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/cart/items", sessionID: session, body: gin.H{"product_id": "3", "color": "White"}})
		if resp.StatusCode != 0 {
			t.Fatalf("add to cart should succeed, got %d msg=%s", resp.StatusCode, resp.Msg)
		}
	}

	var summary struct {
		Lines     []models.CartLine `json:"lines"`
		ItemCount int               `json:"item_count"`
	}
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/cart", sessionID: session}), &summary)
	if len(summary.Lines) != 1 || summary.ItemCount != 2 {
		t.Fatalf("same product and options should merge, got lines=%d count=%d", len(summary.Lines), summary.ItemCount)
	}

	other := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/cart", sessionID: "cart-session-02"})
	decodeData(t, other, &summary)
	if len(summary.Lines) != 0 {
		t.Fatalf("carts must be isolated per session, got %d lines", len(summary.Lines))
	}

	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/cart/items", sessionID: session, body: gin.H{"product_id": "404"}}); resp.StatusCode != response.CodeNotFound {
		t.Fatalf("unknown product should be 404, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/cart/promo", sessionID: session, body: gin.H{"code": "NOPE"}}); resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("invalid promo should be rejected, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/cart/promo", sessionID: session, body: gin.H{"code": "welcome10"}}); resp.StatusCode != 0 {
		t.Fatalf("valid promo should apply, got %d msg=%s", resp.StatusCode, resp.Msg)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodDelete, path: "/api/v1/cart/items?product_id=3&color=White", sessionID: session}); resp.StatusCode != 0 {
		t.Fatalf("remove line should succeed, got %d", resp.StatusCode)
	}
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/cart", sessionID: session}), &summary)
	if len(summary.Lines) != 0 {
		t.Fatalf("cart should be empty after removal, got %d lines", len(summary.Lines))
	}
}

func TestRouterCheckoutFlow(t *testing.T) {
	r := setupTestRouter(t)
	const session = "checkout-session-01"

	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/checkout/start", sessionID: session}); resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("empty cart should not start checkout, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/cart/items", sessionID: session, body: gin.H{"product_id": "14", "quantity": 2}}); resp.StatusCode != 0 {
		t.Fatalf("add to cart failed: %d %s", resp.StatusCode, resp.Msg)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/checkout/start", sessionID: session}); resp.StatusCode != 0 {
		t.Fatalf("start checkout failed: %d %s", resp.StatusCode, resp.Msg)
	}

	invalid := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/checkout/next", sessionID: session, body: gin.H{"email": "not-an-email"}})
	if invalid.StatusCode != response.CodeBadRequest {
		t.Fatalf("incomplete shipping should be rejected, got %d", invalid.StatusCode)
	}

	shipping := gin.H{
		"first_name": "Asha", "last_name": "Rao", "email": "asha@example.com", "phone": "9876543210",
		"address": "1 MG Road", "city": "Pune", "state": "Maharashtra", "zip": "411001", "shipping_method": "express",
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/checkout/next", sessionID: session, body: shipping}); resp.StatusCode != 0 {
		t.Fatalf("shipping step failed: %d %s", resp.StatusCode, resp.Msg)
	}
	payment := gin.H{"payment_method": "card", "card_name": "Asha Rao", "card_number": "4242 4242 4242 4242", "expiry": "12/29", "cvc": "123"}
	review := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/checkout/next", sessionID: session, body: payment})
	if review.StatusCode != 0 {
		t.Fatalf("payment step failed: %d %s", review.StatusCode, review.Msg)
	}
	if strings.Contains(string(review.Data), "4242424242424242") {
		t.Fatalf("full card number must not be stored: %s", string(review.Data))
	}

	var order models.OrderSnapshot
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/checkout/submit", sessionID: session}), &order)
	if !strings.HasPrefix(order.OrderID, "ORD-") {
		t.Fatalf("unexpected order id %q", order.OrderID)
	}
	if order.ShippingMethod != "express" || order.ItemCount() != 2 {
		t.Fatalf("unexpected order snapshot: %+v", order)
	}

	var last models.OrderSnapshot
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders/last", sessionID: session}), &last)
	if last.OrderID != order.OrderID {
		t.Fatalf("last order mismatch: got %s want %s", last.OrderID, order.OrderID)
	}

	var history []models.OrderSnapshot
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders", sessionID: session}), &history)
	if len(history) != 1 || history[0].OrderID != order.OrderID {
		t.Fatalf("placed order should head the history, got %d orders", len(history))
	}

	var summary struct {
		Lines []models.CartLine `json:"lines"`
	}
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/cart", sessionID: session}), &summary)
	if len(summary.Lines) != 0 {
		t.Fatalf("cart should be cleared after submit, got %d lines", len(summary.Lines))
	}
}

func TestRouterOrderHistorySeed(t *testing.T) {
	r := setupTestRouter(t)
	const session = "orders-session-01"

	var orders []models.OrderSnapshot
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders", sessionID: session}), &orders)
	if len(orders) != 3 {
		t.Fatalf("fresh session should see demo orders, got %d", len(orders))
	}

	decodeData(t, doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders?status=shipped", sessionID: session}), &orders)
	for _, order := range orders {
		if !strings.EqualFold(order.Status, "shipped") {
			t.Fatalf("status filter leaked %s", order.Status)
		}
	}

	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders/ORD001/track", sessionID: session}); resp.StatusCode != 0 {
		t.Fatalf("track demo order failed: %d %s", resp.StatusCode, resp.Msg)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders/ORD999", sessionID: session}); resp.StatusCode != response.CodeNotFound {
		t.Fatalf("unknown order should be 404, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/orders?status=cancelled", sessionID: session}); resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("unknown status filter should be rejected, got %d", resp.StatusCode)
	}
}

func TestRouterAccountFlow(t *testing.T) {
	r := setupTestRouter(t)
	const session = "account-session-01"

	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/me", sessionID: session}); resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("me without token should be unauthorized, got %d", resp.StatusCode)
	}

	var result struct {
		Token string             `json:"token"`
		User  models.UserSession `json:"user"`
	}
	decodeData(t, doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/auth/login", sessionID: session, body: gin.H{"email": "shopper@example.com", "password": "pw"}}), &result)
	if result.Token == "" || result.User.Email != "shopper@example.com" {
		t.Fatalf("unexpected login result: %+v", result)
	}

	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/me", sessionID: session, token: result.Token}); resp.StatusCode != 0 {
		t.Fatalf("me with token should succeed, got %d %s", resp.StatusCode, resp.Msg)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodGet, path: "/api/v1/me", sessionID: "account-session-02", token: result.Token}); resp.StatusCode != response.CodeForbidden {
		t.Fatalf("token from another session should be forbidden, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/auth/logout", sessionID: session, token: result.Token}); resp.StatusCode != 0 {
		t.Fatalf("logout failed: %d %s", resp.StatusCode, resp.Msg)
	}
}

func TestRouterContactWithoutRelay(t *testing.T) {
	r := setupTestRouter(t)

	body := gin.H{"name": "Asha", "email": "asha@example.com", "subject": "Hello", "message": "Do you ship abroad?"}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/public/contact", body: body}); resp.StatusCode != response.CodeInternal {
		t.Fatalf("contact without relay key should fail, got %d", resp.StatusCode)
	}
	if resp := doAPI(t, r, apiCall{method: http.MethodPost, path: "/api/v1/public/contact", body: gin.H{"name": "Asha"}}); resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("incomplete contact should be rejected, got %d", resp.StatusCode)
	}
}
