package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrSessionInvalid       = errors.New("session id is invalid")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductOptionInvalid = errors.New("product option not available")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrPriceRangeInvalid    = errors.New("price range is invalid")
	ErrSortInvalid          = errors.New("sort option is invalid")

	ErrCartEmpty        = errors.New("cart is empty")
	ErrPromoCodeInvalid = errors.New("promo code is invalid")

	ErrCheckoutNotStarted  = errors.New("checkout has not been started")
	ErrCheckoutStepInvalid = errors.New("checkout step does not allow this action")
	ErrCheckoutValidation  = errors.New("checkout validation failed")

	ErrRelayFailed      = errors.New("form relay submission failed")
	ErrRelayUnavailable = errors.New("form relay unavailable")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("order status is invalid")

	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidEmail        = errors.New("email is invalid")
	ErrRegisterInvalid     = errors.New("registration fields are incomplete")
	ErrUserNotFound        = errors.New("user session not found")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrJWTSecretMissing    = errors.New("jwt secret is not configured")

	ErrReviewInvalid     = errors.New("review is invalid")
	ErrContactInvalid    = errors.New("contact form is invalid")
	ErrNewsletterInvalid = errors.New("newsletter email is invalid")

	ErrCaptchaRequired      = errors.New("captcha is required")
	ErrCaptchaInvalid       = errors.New("captcha is invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha is not configured")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)

// ValidationError 字段级校验失败，可通过 errors.Is 匹配对应的哨兵错误
type ValidationError struct {
	Kind   error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	kind := ErrCheckoutValidation
	if e.Kind != nil {
		kind = e.Kind
	}
	return kind.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	if e == nil || e.Kind == nil {
		return ErrCheckoutValidation
	}
	return e.Kind
}
