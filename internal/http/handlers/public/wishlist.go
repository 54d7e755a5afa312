package public

import (
	"github.com/bgcollection/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// WishlistRequest 加入收藏请求
type WishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// MoveToCartRequest 收藏移入购物车时选择的规格
type MoveToCartRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// GetWishlist 收藏列表
func (h *Handler) GetWishlist(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.List(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.wishlist_fetch_failed")
		return
	}
	response.Success(c, items)
}

// AddWishlistItem 加入收藏，重复加入无副作用
func (h *Handler) AddWishlistItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	items, err := h.WishlistService.Add(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, items)
}

// GetWishlistItem 判断商品是否已收藏
func (h *Handler) GetWishlistItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID := c.Param("product_id")
	contains, err := h.WishlistService.Contains(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.wishlist_fetch_failed")
		return
	}
	response.Success(c, gin.H{"product_id": productID, "in_wishlist": contains})
}

// RemoveWishlistItem 移出收藏
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.Remove(c.Request.Context(), sessionID, c.Param("product_id"))
	if err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, items)
}

// MoveWishlistItemToCart 收藏移入购物车
func (h *Handler) MoveWishlistItemToCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req MoveToCartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
	}
	summary, err := h.WishlistService.MoveToCart(c.Request.Context(), sessionID, c.Param("product_id"), req.Size, req.Color)
	if err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, summary)
}
