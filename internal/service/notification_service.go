package service

import (
	"context"
	"errors"

	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/queue"
	"github.com/bgcollection/storefront/internal/relay"
)

// NotificationService 异步通知：队列可用时入队，否则同步投递并只记录失败
type NotificationService struct {
	queueClient *queue.Client
	relay       FormRelay
	email       *EmailService
}

// NewNotificationService 创建通知服务
func NewNotificationService(queueClient *queue.Client, formRelay FormRelay, email *EmailService) *NotificationService {
	return &NotificationService{
		queueClient: queueClient,
		relay:       formRelay,
		email:       email,
	}
}

func (s *NotificationService) queueEnabled() bool {
	return s != nil && s.queueClient.Enabled()
}

// EnqueueReviewRelay 评论转发到表单通道
func (s *NotificationService) EnqueueReviewRelay(ctx context.Context, payload queue.ReviewRelayPayload) {
	if s == nil {
		return
	}
	if s.queueEnabled() {
		if err := s.queueClient.EnqueueReviewRelay(payload); err != nil {
			logger.Warnw("notification_enqueue_failed", "task", queue.TaskRelayReview, "product_id", payload.ProductID, "error", err)
		}
		return
	}
	if err := s.DeliverReviewRelay(ctx, payload); err != nil {
		logger.Warnw("review_relay_failed", "product_id", payload.ProductID, "review_id", payload.ReviewID, "error", err)
	}
}

// EnqueueNewsletterRelay 订阅通知转发
func (s *NotificationService) EnqueueNewsletterRelay(ctx context.Context, payload queue.NewsletterRelayPayload) {
	if s == nil {
		return
	}
	if s.queueEnabled() {
		if err := s.queueClient.EnqueueNewsletterRelay(payload); err != nil {
			logger.Warnw("notification_enqueue_failed", "task", queue.TaskRelayNewsletter, "error", err)
		}
		return
	}
	if err := s.DeliverNewsletterRelay(ctx, payload); err != nil {
		logger.Warnw("newsletter_relay_failed", "email", payload.Email, "error", err)
	}
}

// EnqueueOrderConfirmation 下单确认邮件，邮件未启用时跳过
func (s *NotificationService) EnqueueOrderConfirmation(ctx context.Context, order *models.OrderSnapshot, locale string) {
	if s == nil || order == nil || !s.email.Enabled() {
		return
	}
	payload := queue.OrderConfirmationEmailPayload{Locale: locale, Order: *order}
	if s.queueEnabled() {
		if err := s.queueClient.EnqueueOrderConfirmationEmail(payload); err != nil {
			logger.Warnw("notification_enqueue_failed", "task", queue.TaskOrderConfirmationEmail, "order_id", order.OrderID, "error", err)
		}
		return
	}
	if err := s.DeliverOrderConfirmation(ctx, payload); err != nil {
		logger.Warnw("order_confirmation_email_failed", "order_id", order.OrderID, "error", err)
	}
}

// DeliverReviewRelay 投递评论通知（worker 与同步回退共用）
func (s *NotificationService) DeliverReviewRelay(ctx context.Context, payload queue.ReviewRelayPayload) error {
	return s.submit(ctx, buildReviewSubmission(payload.ProductID, payload.ProductName, payload.Rating, payload.Name, payload.Title, payload.Content))
}

// DeliverNewsletterRelay 投递订阅通知
func (s *NotificationService) DeliverNewsletterRelay(ctx context.Context, payload queue.NewsletterRelayPayload) error {
	return s.submit(ctx, buildNewsletterSubmission(payload.Email, payload.SubscribedAt))
}

// DeliverOrderConfirmation 发送下单确认邮件
func (s *NotificationService) DeliverOrderConfirmation(ctx context.Context, payload queue.OrderConfirmationEmailPayload) error {
	if s == nil || s.email == nil {
		return ErrEmailServiceDisabled
	}
	order := payload.Order
	return s.email.SendOrderConfirmation(&order, payload.Locale)
}

func (s *NotificationService) submit(ctx context.Context, submission relay.Submission) error {
	if s == nil || s.relay == nil || !s.relay.Configured() {
		logger.Debugw("relay_submission_skipped", "subject", submission.Subject)
		return nil
	}
	err := s.relay.Submit(ctx, submission)
	if errors.Is(err, relay.ErrRelayNotConfigured) {
		return nil
	}
	return err
}
