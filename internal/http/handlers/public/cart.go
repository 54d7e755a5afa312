package public

import (
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 加入购物车请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// CartQuantityRequest 修改数量请求，商品行由 product_id + size + color 确定
type CartQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// PromoRequest 优惠码请求
type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.Summary(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加入购物车，同款同规格合并数量
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	summary, err := h.CartService.Add(c.Request.Context(), sessionID, service.AddCartLineInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, summary)
}

// UpdateCartItem 修改商品行数量，小于 1 时按 1 处理
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	key := models.NewLineKey(req.ProductID, req.Size, req.Color)
	summary, err := h.CartService.UpdateQuantity(c.Request.Context(), sessionID, key, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, summary)
}

// DeleteCartItem 删除商品行，参数通过 query 传递
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var raw models.LineKey
	if err := c.ShouldBindQuery(&raw); err != nil || raw.ProductID == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	key := models.NewLineKey(raw.ProductID, raw.Size, raw.Color)
	summary, err := h.CartService.Remove(c.Request.Context(), sessionID, key)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, summary)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), sessionID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// ApplyPromo 应用优惠码
func (h *Handler) ApplyPromo(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	summary, alreadyApplied, err := h.CartService.ApplyPromo(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		respondCartError(c, err)
		return
	}
	key := "message.promo_applied"
	if alreadyApplied {
		key = "message.promo_already_applied"
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), key), gin.H{
		"cart":            summary,
		"already_applied": alreadyApplied,
	})
}

// RemovePromo 移除优惠码
func (h *Handler) RemovePromo(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.RemovePromo(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, summary)
}
