package public

import (
	"github.com/bgcollection/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListOrders 订单历史，可按状态筛选
func (h *Handler) ListOrders(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	orders, err := h.OrderHistoryService.List(c.Request.Context(), sessionID, c.Query("status"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, orders)
}

// GetLastOrder 最近一次下单（确认页）
func (h *Handler) GetLastOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	order, err := h.OrderHistoryService.LastOrder(c.Request.Context(), sessionID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	order, err := h.OrderHistoryService.Get(c.Request.Context(), sessionID, c.Param("order_id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// TrackOrder 订单物流时间线
func (h *Handler) TrackOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	tracking, err := h.OrderHistoryService.Track(c.Request.Context(), sessionID, c.Param("order_id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, tracking)
}
