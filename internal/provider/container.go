package provider

import (
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/queue"
	"github.com/bgcollection/storefront/internal/relay"
	"github.com/bgcollection/storefront/internal/repository"
	"github.com/bgcollection/storefront/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	RelayClient *relay.Client

	// Repositories
	StorageRepo    repository.StorageRepository
	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	ReviewRepo     repository.ProductReviewRepository
	NewsletterRepo repository.NewsletterRepository

	// Services
	SessionState        *service.SessionState
	PricingPolicy       service.PricingPolicy
	CatalogService      *service.CatalogService
	CartService         *service.CartService
	CheckoutService     *service.CheckoutService
	OrderHistoryService *service.OrderHistoryService
	AuthService         *service.AuthService
	WishlistService     *service.WishlistService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
	NotificationService *service.NotificationService
	ReviewService       *service.ReviewService
	ContactService      *service.ContactService
	NewsletterService   *service.NewsletterService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		RelayClient: relay.NewClient(cfg.Relay),
	}

	// 1. 初始化 Repositories
	c.initRepositories(models.DB)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.StorageRepo = newStorageRepository(c.Config.Storage, db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ReviewRepo = repository.NewProductReviewRepository(db)
	c.NewsletterRepo = repository.NewNewsletterRepository(db)
}

// newStorageRepository 按配置选择会话存储后端，redis 未启用时回退到数据库
func newStorageRepository(cfg config.StorageConfig, db *gorm.DB) repository.StorageRepository {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case constants.StorageDriverMemory:
		logger.Infow("provider_storage_driver", "driver", driver)
		return repository.NewMemoryStorageRepository()
	case constants.StorageDriverRedis:
		if client := cache.Client(); client != nil {
			logger.Infow("provider_storage_driver", "driver", driver)
			ttl := time.Duration(cfg.RedisTTLHours) * time.Hour
			return repository.NewRedisStorageRepository(client, cache.Prefix(), ttl)
		}
		logger.Warnw("provider_storage_redis_unavailable", "fallback", constants.StorageDriverDatabase)
	}
	logger.Infow("provider_storage_driver", "driver", constants.StorageDriverDatabase)
	return repository.NewStorageRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.SessionState = service.NewSessionState(c.StorageRepo)
	c.PricingPolicy = service.NewPricingPolicy(cfg.Pricing, cfg.Promo)

	c.EmailService = service.NewEmailService(&cfg.Email)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	c.NotificationService = service.NewNotificationService(c.QueueClient, c.RelayClient, c.EmailService)

	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, cfg.Catalog)
	c.CartService = service.NewCartService(c.SessionState, c.ProductRepo, c.PricingPolicy)
	c.CheckoutService = service.NewCheckoutService(c.SessionState, c.PricingPolicy, c.RelayClient, c.NotificationService, cfg.Order, cfg.Relay)
	c.OrderHistoryService = service.NewOrderHistoryService(c.SessionState, cfg.Order, cfg.Pricing.Currency)
	c.AuthService = service.NewAuthService(c.SessionState, cfg.Auth, cfg.UserJWT)
	c.WishlistService = service.NewWishlistService(c.SessionState, c.ProductRepo, c.CartService)

	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo, c.CaptchaService, c.NotificationService)
	c.ContactService = service.NewContactService(c.RelayClient, c.CaptchaService)
	c.NewsletterService = service.NewNewsletterService(c.NewsletterRepo, c.CaptchaService, c.NotificationService)
}
