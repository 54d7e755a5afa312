package public

import "github.com/bgcollection/storefront/internal/provider"

// Handler 前台接口处理器入口
// 说明：商品目录与表单接口无需会话，购物车、结账、订单等接口依赖 X-Session-ID。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
