package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/relay"
	"github.com/bgcollection/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const testSessionID = "sess-test-1"

type stubRelay struct {
	mu          sync.Mutex
	configured  bool
	err         error
	submissions []relay.Submission
}

func (r *stubRelay) Configured() bool { return r.configured }

func (r *stubRelay) Submit(_ context.Context, submission relay.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, submission)
	return r.err
}

func (r *stubRelay) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.submissions)
}

type serviceTestEnv struct {
	cfg          *config.Config
	db           *gorm.DB
	storage      *repository.MemoryStorageRepository
	state        *SessionState
	products     *repository.GormProductRepository
	pricing      PricingPolicy
	relay        *stubRelay
	cart         *CartService
	checkout     *CheckoutService
	history      *OrderHistoryService
	wishlist     *WishlistService
	notification *NotificationService
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Decode(v)
	if err != nil {
		t.Fatalf("decode config failed: %v", err)
	}
	cfg.Auth.LoginDelayMS = 0
	return cfg
}

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func seedTestProducts(t *testing.T, repo *repository.GormProductRepository) {
	t.Helper()
	products := []models.Product{
		{ID: "1", Name: "Leather Journal", Price: models.NewMoneyFromInt(1499), Category: "gift-items", Images: models.StringArray{"/images/leather-journal.jpg"}, Colors: models.StringArray{"Brown", "Black"}, Sizes: models.StringArray{"A5", "A6"}, Rating: 4.5, Popularity: 90},
		{ID: "2", Name: "Brass Bowl", Price: models.NewMoneyFromInt(2499), Category: "home-decor", Images: models.StringArray{"/images/brass-bowl.jpg"}, Rating: 4.2, Popularity: 70},
		{ID: "3", Name: "Minimal Clock", Price: models.NewMoneyFromInt(500), Category: "wall-clocks", Images: models.StringArray{"/images/minimal-clock.jpg"}, Colors: models.StringArray{"White"}, Rating: 4.8, Popularity: 80},
		{ID: "14", Name: "Walnut Photo Frame", Price: models.NewMoneyFromInt(899), Category: "photo-frames", Rating: 4.1, Popularity: 60},
	}
	for i := range products {
		if err := repo.Upsert(&products[i]); err != nil {
			t.Fatalf("seed product %s failed: %v", products[i].ID, err)
		}
	}
}

func newServiceTestEnv(t *testing.T) *serviceTestEnv {
	t.Helper()
	cfg := loadTestConfig(t)
	db := openServiceTestDB(t)
	products := repository.NewProductRepository(db)
	seedTestProducts(t, products)

	storage := repository.NewMemoryStorageRepository()
	state := NewSessionState(storage)
	pricing := NewPricingPolicy(cfg.Pricing, cfg.Promo)
	stub := &stubRelay{configured: true}
	notification := NewNotificationService(nil, stub, NewEmailService(&cfg.Email))
	cart := NewCartService(state, products, pricing)

	return &serviceTestEnv{
		cfg:          cfg,
		db:           db,
		storage:      storage,
		state:        state,
		products:     products,
		pricing:      pricing,
		relay:        stub,
		cart:         cart,
		checkout:     NewCheckoutService(state, pricing, stub, notification, cfg.Order, cfg.Relay),
		history:      NewOrderHistoryService(state, cfg.Order, cfg.Pricing.Currency),
		wishlist:     NewWishlistService(state, products, cart),
		notification: notification,
	}
}
