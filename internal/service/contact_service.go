package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/relay"
)

// ContactInput 联系表单
type ContactInput struct {
	Name    string               `json:"name" validate:"required,max=120"`
	Email   string               `json:"email" validate:"required,email"`
	Phone   string               `json:"phone" validate:"max=32"`
	Subject string               `json:"subject" validate:"required,max=200"`
	Message string               `json:"message" validate:"required,max=5000"`
	Captcha CaptchaVerifyPayload `json:"captcha" validate:"-"`
}

// ContactService 联系表单同步转发
type ContactService struct {
	relay   FormRelay
	captcha *CaptchaService
	now     func() time.Time
}

// NewContactService 创建联系表单服务
func NewContactService(formRelay FormRelay, captcha *CaptchaService) *ContactService {
	return &ContactService{relay: formRelay, captcha: captcha, now: time.Now}
}

// Submit 校验并转发联系表单
func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	if err := validateStruct(ErrContactInvalid, input); err != nil {
		return err
	}
	if err := s.captcha.Verify(constants.CaptchaSceneContact, input.Captcha); err != nil {
		return err
	}
	if s.relay == nil || !s.relay.Configured() {
		return ErrRelayUnavailable
	}
	err := s.relay.Submit(ctx, buildContactSubmission(input, s.now()))
	if err == nil {
		return nil
	}
	logger.Warnw("contact_relay_failed", "email", input.Email, "error", err)
	if errors.Is(err, relay.ErrRelayNotConfigured) || errors.Is(err, relay.ErrRelayUnavailable) {
		return ErrRelayUnavailable
	}
	return fmt.Errorf("%w: %v", ErrRelayFailed, err)
}
