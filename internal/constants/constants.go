package constants

// 会话存储键（对应浏览器端 localStorage 的键名）
const (
	StorageKeyCart      = "cart"
	StorageKeyWishlist  = "wishlist"
	StorageKeyUser      = "user"
	StorageKeyOrders    = "orders"
	StorageKeyLastOrder = "lastOrder"
	StorageKeyCheckout  = "checkout"
	StorageKeyPromo     = "promo"
)

// 会话存储驱动
const (
	StorageDriverDatabase = "database"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

// 订单状态常量
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// 结算流程步骤
const (
	CheckoutStepShipping  = "shipping"
	CheckoutStepPayment   = "payment"
	CheckoutStepReview    = "review"
	CheckoutStepSubmitted = "submitted"
)

// 配送方式
const (
	ShippingMethodStandard = "standard"
	ShippingMethodExpress  = "express"
)

// 支付方式（仅记录用户选择，不接入真实支付）
const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
	PaymentMethodApple  = "apple"
)

// 商品排序方式
const (
	ProductSortNewest    = "newest"
	ProductSortPriceLow  = "price-low"
	ProductSortPriceHigh = "price-high"
	ProductSortPopular   = "popular"
	ProductSortRating    = "rating"
)

// 商品分类
const (
	CategoryPhotoFrames = "photo-frames"
	CategoryWallClocks  = "wall-clocks"
	CategoryHomeDecor   = "home-decor"
	CategoryGiftItems   = "gift-items"
)

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskRelayReview            = "relay:review"
	TaskRelayNewsletter        = "relay:newsletter"
	TaskOrderConfirmationEmail = "email:order_confirmation"
)

// 验证码提供方与场景
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"

	CaptchaSceneContact    = "contact"
	CaptchaSceneReview     = "review"
	CaptchaSceneNewsletter = "newsletter"
)

// 站点默认信息
const (
	SiteName            = "BG Collection"
	SiteCurrencyDefault = "INR"
	DefaultCountry      = "India"
)
