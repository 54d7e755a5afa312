package public

import (
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func bindCheckoutPatch(c *gin.Context) (service.CheckoutPatch, bool) {
	var patch service.CheckoutPatch
	if c.Request.ContentLength == 0 {
		return patch, true
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return patch, false
	}
	return patch, true
}

// GetCheckout 当前结账草稿
func (h *Handler) GetCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, checkoutErrorRules), response.CodeInternal, "error.checkout_fetch_failed")
		return
	}
	response.Success(c, view)
}

// StartCheckout 开始结账
func (h *Handler) StartCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Begin(c.Request.Context(), sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// SaveCheckout 保存草稿，不切换步骤
func (h *Handler) SaveCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	patch, ok := bindCheckoutPatch(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.SaveDraft(c.Request.Context(), sessionID, patch)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// NextCheckoutStep 校验当前步骤并前进
func (h *Handler) NextCheckoutStep(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	patch, ok := bindCheckoutPatch(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Next(c.Request.Context(), sessionID, patch)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// PrevCheckoutStep 返回上一步
func (h *Handler) PrevCheckoutStep(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Back(c.Request.Context(), sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// SubmitCheckout 提交订单
func (h *Handler) SubmitCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	locale := i18n.ResolveLocale(c)
	order, err := h.CheckoutService.Submit(c.Request.Context(), sessionID, locale)
	if err != nil {
		respondCheckoutSubmitError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(locale, "message.order_placed"), order)
}

// ResetCheckout 丢弃结账草稿
func (h *Handler) ResetCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CheckoutService.Reset(c.Request.Context(), sessionID); err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"reset": true})
}
