package public

import (
	"strconv"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取店铺公开配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	pricing := h.PricingPolicy
	data := map[string]interface{}{
		"site_name": constants.SiteName,
		"currency":  pricing.Currency,
		"languages": i18n.SupportedLocales(),
		"pricing": map[string]interface{}{
			"free_shipping_threshold": models.NewMoneyFromDecimal(pricing.FreeShippingThreshold),
			"standard_fee":            models.NewMoneyFromDecimal(pricing.StandardFee),
			"express_fee":             models.NewMoneyFromDecimal(pricing.ExpressFee),
			"tax_rate":                pricing.TaxRate.String(),
		},
		"shipping_methods": []string{constants.ShippingMethodStandard, constants.ShippingMethodExpress},
		"payment_methods":  []string{constants.PaymentMethodCard, constants.PaymentMethodPaypal, constants.PaymentMethodApple},
		"order_statuses":   []string{constants.OrderStatusProcessing, constants.OrderStatusShipped, constants.OrderStatusDelivered},
		"default_country":  constants.DefaultCountry,
	}
	if h.CaptchaService != nil {
		data["captcha"] = h.CaptchaService.PublicSetting()
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	minRating := 0.0
	if raw := strings.TrimSpace(c.Query("rating")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		minRating = value
	}

	result, err := h.CatalogService.List(c.Request.Context(), service.ProductQuery{
		Q:         c.Query("q"),
		Category:  c.Query("category"),
		Color:     c.Query("color"),
		Size:      c.Query("size"),
		Price:     c.Query("price"),
		MinRating: minRating,
		Sort:      c.Query("sort"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.SuccessWithPage(c, result.Items, response.NewPagination(result.Page, result.PageSize, result.Total))
}

// GetFeaturedProducts 首页推荐商品
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.CatalogService.Featured(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, products)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	detail, err := h.CatalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, detail)
}
