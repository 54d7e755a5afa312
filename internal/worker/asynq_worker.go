package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/provider"
	"github.com/bgcollection/storefront/internal/queue"
	"github.com/bgcollection/storefront/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者，返回已注册的任务类型
func (c *Consumer) Register(mux *asynq.ServeMux) []string {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return nil
	}
	handlers := map[string]asynq.HandlerFunc{
		queue.TaskRelayReview:            c.handleReviewRelay,
		queue.TaskRelayNewsletter:        c.handleNewsletterRelay,
		queue.TaskOrderConfirmationEmail: c.handleOrderConfirmationEmail,
	}
	types := make([]string, 0, len(handlers))
	for taskType, handler := range handlers {
		mux.HandleFunc(taskType, handler)
		types = append(types, taskType)
	}
	sort.Strings(types)
	return types
}

func (c *Consumer) notifications() *service.NotificationService {
	if c == nil || c.Container == nil {
		return nil
	}
	return c.NotificationService
}

func (c *Consumer) handleReviewRelay(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_review_relay_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ReviewRelayPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_review_relay_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if strings.TrimSpace(payload.ProductID) == "" {
		logger.Debugw("worker_review_relay_skip_invalid_payload", "review_id", payload.ReviewID)
		return nil
	}
	notifications := c.notifications()
	if notifications == nil {
		logger.Warnw("worker_review_relay_skip_service_nil", "review_id", payload.ReviewID)
		return nil
	}
	if err := notifications.DeliverReviewRelay(ctx, payload); err != nil {
		logger.Warnw("worker_review_relay_failed", "review_id", payload.ReviewID, "product_id", payload.ProductID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleNewsletterRelay(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_newsletter_relay_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.NewsletterRelayPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_newsletter_relay_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if strings.TrimSpace(payload.Email) == "" {
		logger.Debugw("worker_newsletter_relay_skip_invalid_payload")
		return nil
	}
	notifications := c.notifications()
	if notifications == nil {
		logger.Warnw("worker_newsletter_relay_skip_service_nil")
		return nil
	}
	if err := notifications.DeliverNewsletterRelay(ctx, payload); err != nil {
		logger.Warnw("worker_newsletter_relay_failed", "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderConfirmationEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_email_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	orderID := payload.Order.OrderID
	if strings.TrimSpace(orderID) == "" {
		logger.Debugw("worker_order_confirmation_email_skip_invalid_payload")
		return nil
	}
	if strings.TrimSpace(payload.Order.CustomerContact.Email) == "" {
		logger.Debugw("worker_order_confirmation_email_skip_empty_receiver", "order_id", orderID)
		return nil
	}
	notifications := c.notifications()
	if notifications == nil {
		logger.Warnw("worker_order_confirmation_email_skip_service_nil", "order_id", orderID)
		return nil
	}
	err := notifications.DeliverOrderConfirmation(ctx, payload)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrEmailServiceDisabled), errors.Is(err, service.ErrEmailServiceNotConfigured):
		logger.Debugw("worker_order_confirmation_email_skip_disabled", "order_id", orderID)
		return nil
	case errors.Is(err, service.ErrEmailRecipientRejected), errors.Is(err, service.ErrInvalidEmail):
		logger.Warnw("worker_order_confirmation_email_recipient_rejected", "order_id", orderID, "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	default:
		logger.Warnw("worker_order_confirmation_email_send_failed", "order_id", orderID, "error", err)
		return err
	}
}
