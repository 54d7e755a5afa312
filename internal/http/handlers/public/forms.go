package public

import (
	"strconv"

	handlershared "github.com/bgcollection/storefront/internal/http/handlers/shared"
	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewRequest 商品评论请求
type ReviewRequest struct {
	Rating         int                                 `json:"rating"`
	Name           string                              `json:"name"`
	Title          string                              `json:"title"`
	Content        string                              `json:"content"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// ContactRequest 联系表单请求
type ContactRequest struct {
	Name           string                              `json:"name"`
	Email          string                              `json:"email"`
	Phone          string                              `json:"phone"`
	Subject        string                              `json:"subject"`
	Message        string                              `json:"message"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// NewsletterRequest 订阅请求
type NewsletterRequest struct {
	Email          string                              `json:"email"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// GetProductReviews 商品评论列表
func (h *Handler) GetProductReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	page, pageSize = normalizePagination(page, pageSize)

	result, err := h.ReviewService.ListByProduct(c.Param("id"), page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_fetch_failed")
		return
	}
	response.SuccessWithPage(c, result.Items, response.NewPagination(result.Page, result.PageSize, result.Total))
}

// SubmitProductReview 提交商品评论
func (h *Handler) SubmitProductReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	review, err := h.ReviewService.Submit(c.Request.Context(), c.Param("id"), service.ReviewInput{
		Rating:  req.Rating,
		Name:    req.Name,
		Title:   req.Title,
		Content: req.Content,
		Captcha: req.CaptchaPayload.ToServicePayload(),
	})
	if err != nil {
		respondReviewError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "message.review_submitted")
	response.SuccessWithMsg(c, msg, review)
}

// SubmitContact 提交联系表单
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	err := h.ContactService.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Captcha: req.CaptchaPayload.ToServicePayload(),
	})
	if err != nil {
		respondContactError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "message.contact_sent")
	response.SuccessWithMsg(c, msg, gin.H{"sent": true})
}

// SubscribeNewsletter 订阅邮件
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	already, err := h.NewsletterService.Subscribe(c.Request.Context(), service.NewsletterInput{
		Email:   req.Email,
		Captcha: req.CaptchaPayload.ToServicePayload(),
	})
	if err != nil {
		respondNewsletterError(c, err)
		return
	}
	key := "message.newsletter_subscribed"
	if already {
		key = "message.newsletter_already"
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), key), gin.H{"already_subscribed": already})
}
