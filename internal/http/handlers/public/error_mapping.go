package public

import (
	"errors"

	"github.com/bgcollection/storefront/internal/http/response"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			if rule.code == response.CodeBadRequest && respondValidationError(c, rule.key, err) {
				return
			}
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var sessionErrorRules = []mappedHandlerError{
	{target: service.ErrSessionInvalid, code: response.CodeBadRequest, key: "error.session_invalid"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrPriceRangeInvalid, code: response.CodeBadRequest, key: "error.price_range_invalid"},
	{target: service.ErrSortInvalid, code: response.CodeBadRequest, key: "error.sort_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductOptionInvalid, code: response.CodeBadRequest, key: "error.product_option_invalid"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrPromoCodeInvalid, code: response.CodeBadRequest, key: "error.promo_invalid"},
}

var wishlistErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductOptionInvalid, code: response.CodeBadRequest, key: "error.product_option_invalid"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrCheckoutNotStarted, code: response.CodeBadRequest, key: "error.checkout_not_started"},
	{target: service.ErrCheckoutStepInvalid, code: response.CodeBadRequest, key: "error.checkout_step_invalid"},
	{target: service.ErrCheckoutValidation, code: response.CodeBadRequest, key: "error.checkout_validation"},
}

var checkoutSubmitExtraErrorRules = []mappedHandlerError{
	{target: service.ErrRelayFailed, code: response.CodeInternal, key: "error.order_submit_failed"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrCredentialsRequired, code: response.CodeBadRequest, key: "error.credentials_required"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrRegisterInvalid, code: response.CodeBadRequest, key: "error.register_invalid"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrJWTSecretMissing, code: response.CodeInternal, key: "error.jwt_secret_missing"},
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
	{target: service.ErrCaptchaConfigInvalid, code: response.CodeInternal, key: "error.captcha_unavailable"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrReviewInvalid, code: response.CodeBadRequest, key: "error.review_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var contactErrorRules = []mappedHandlerError{
	{target: service.ErrContactInvalid, code: response.CodeBadRequest, key: "error.contact_invalid"},
	{target: service.ErrRelayUnavailable, code: response.CodeInternal, key: "error.relay_unavailable"},
	{target: service.ErrRelayFailed, code: response.CodeInternal, key: "error.contact_failed"},
}

var newsletterErrorRules = []mappedHandlerError{
	{target: service.ErrNewsletterInvalid, code: response.CodeBadRequest, key: "error.newsletter_invalid"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.newsletter_invalid"},
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.product_fetch_failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, cartErrorRules), response.CodeInternal, "error.cart_update_failed")
}

func respondWishlistError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, wishlistErrorRules), response.CodeInternal, "error.wishlist_update_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, checkoutErrorRules), response.CodeInternal, "error.checkout_update_failed")
}

func respondCheckoutSubmitError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, checkoutErrorRules, checkoutSubmitExtraErrorRules), response.CodeInternal, "error.order_submit_failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, orderErrorRules), response.CodeInternal, "error.order_fetch_failed")
}

func respondAuthError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, authErrorRules), response.CodeInternal, fallbackKey)
}

func respondReviewError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(captchaErrorRules, reviewErrorRules), response.CodeInternal, "error.review_submit_failed")
}

func respondContactError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(captchaErrorRules, contactErrorRules), response.CodeInternal, "error.contact_failed")
}

func respondNewsletterError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(captchaErrorRules, newsletterErrorRules), response.CodeInternal, "error.newsletter_failed")
}
