package service

import (
	"context"
	"time"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/queue"
	"github.com/bgcollection/storefront/internal/repository"
)

// NewsletterInput 订阅输入
type NewsletterInput struct {
	Email   string               `json:"email" validate:"required,email"`
	Captcha CaptchaVerifyPayload `json:"captcha" validate:"-"`
}

// NewsletterService 邮件订阅
type NewsletterService struct {
	repo          repository.NewsletterRepository
	captcha       *CaptchaService
	notifications *NotificationService
}

// NewNewsletterService 创建订阅服务
func NewNewsletterService(repo repository.NewsletterRepository, captcha *CaptchaService, notifications *NotificationService) *NewsletterService {
	return &NewsletterService{repo: repo, captcha: captcha, notifications: notifications}
}

// Subscribe 订阅，已订阅时返回 alreadySubscribed=true 且不重复通知
func (s *NewsletterService) Subscribe(ctx context.Context, input NewsletterInput) (bool, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" {
		return false, ErrNewsletterInvalid
	}
	if err := formValidate.Var(input.Email, "email"); err != nil {
		return false, ErrNewsletterInvalid
	}
	if err := s.captcha.Verify(constants.CaptchaSceneNewsletter, input.Captcha); err != nil {
		return false, err
	}
	subscriber := &models.NewsletterSubscriber{Email: input.Email, CreatedAt: time.Now()}
	created, err := s.repo.CreateIfAbsent(subscriber)
	if err != nil {
		return false, err
	}
	if !created {
		return true, nil
	}
	s.notifications.EnqueueNewsletterRelay(ctx, queue.NewsletterRelayPayload{
		Email:        subscriber.Email,
		SubscribedAt: subscriber.CreatedAt,
	})
	return false, nil
}
