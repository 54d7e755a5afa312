package router

import (
	"fmt"
	"strings"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"
	publichandlers "github.com/bgcollection/storefront/internal/http/handlers/public"
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "bg"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Scene:         "login",
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxRequests,
		MessageKey:    "error.login_too_many",
	}
	formRule := RateLimitRule{
		Scene:         "form",
		Prefix:        fmt.Sprintf("%s:rate:form", redisPrefix),
		WindowSeconds: cfg.Security.FormRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.FormRateLimit.MaxRequests,
		MessageKey:    "error.form_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		status := gin.H{"status": "ok", "database": "ok"}
		if err := models.Ping(ctx.Request.Context()); err != nil {
			logger.Warnw("health_database_unreachable", "error", err)
			status["status"] = "degraded"
			status["database"] = "unreachable"
		}
		response.Success(ctx, status)
	})

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/featured", publicHandler.GetFeaturedProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/:id/reviews", publicHandler.GetProductReviews)
			public.POST("/products/:id/reviews", RateLimitMiddleware(redisClient, formRule, KeyBySessionOrIP), publicHandler.SubmitProductReview)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
			public.POST("/contact", RateLimitMiddleware(redisClient, formRule, KeyByIP), publicHandler.SubmitContact)
			public.POST("/newsletter", RateLimitMiddleware(redisClient, formRule, KeyByIPAndJSONField("email")), publicHandler.SubscribeNewsletter)
		}

		// 会话接口（X-Session-ID）
		session := apiV1.Group("")
		session.Use(SessionMiddleware())
		{
			session.GET("/cart", publicHandler.GetCart)
			session.POST("/cart/items", publicHandler.AddCartItem)
			session.PUT("/cart/items", publicHandler.UpdateCartItem)
			session.DELETE("/cart/items", publicHandler.DeleteCartItem)
			session.DELETE("/cart", publicHandler.ClearCart)
			session.POST("/cart/promo", publicHandler.ApplyPromo)
			session.DELETE("/cart/promo", publicHandler.RemovePromo)

			session.GET("/wishlist", publicHandler.GetWishlist)
			session.POST("/wishlist", publicHandler.AddWishlistItem)
			session.GET("/wishlist/:product_id", publicHandler.GetWishlistItem)
			session.DELETE("/wishlist/:product_id", publicHandler.RemoveWishlistItem)
			session.POST("/wishlist/:product_id/move-to-cart", publicHandler.MoveWishlistItemToCart)

			session.GET("/checkout", publicHandler.GetCheckout)
			session.POST("/checkout/start", publicHandler.StartCheckout)
			session.PATCH("/checkout", publicHandler.SaveCheckout)
			session.POST("/checkout/next", publicHandler.NextCheckoutStep)
			session.POST("/checkout/back", publicHandler.PrevCheckoutStep)
			session.POST("/checkout/submit", publicHandler.SubmitCheckout)
			session.DELETE("/checkout", publicHandler.ResetCheckout)

			session.GET("/orders", publicHandler.ListOrders)
			session.GET("/orders/last", publicHandler.GetLastOrder)
			session.GET("/orders/:order_id", publicHandler.GetOrder)
			session.GET("/orders/:order_id/track", publicHandler.TrackOrder)

			auth := session.Group("/auth")
			{
				auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
				auth.POST("/register", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserRegister)
				auth.POST("/logout", publicHandler.UserLogout)
			}

			// 用户接口（需鉴权）
			user := session.Group("/me")
			user.Use(UserJWTAuthMiddleware(c.AuthService, cfg.UserJWT.SecretKey))
			{
				user.GET("", publicHandler.GetCurrentUser)
				user.PUT("/profile", publicHandler.UpdateUserProfile)
			}
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, i18n.T(i18n.ResolveLocale(ctx), "error.not_found"))
	})

	return r
}
