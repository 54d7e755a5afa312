package queue

import (
	"encoding/json"
	"time"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"

	"github.com/hibiken/asynq"
)

const (
	// TaskRelayReview 商品评论转发任务
	TaskRelayReview = constants.TaskRelayReview
	// TaskRelayNewsletter 订阅通知转发任务
	TaskRelayNewsletter = constants.TaskRelayNewsletter
	// TaskOrderConfirmationEmail 下单确认邮件任务
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
)

// ReviewRelayPayload 评论转发任务载荷
type ReviewRelayPayload struct {
	ReviewID    uint      `json:"review_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Rating      int       `json:"rating"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewsletterRelayPayload 订阅转发任务载荷
type NewsletterRelayPayload struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// OrderConfirmationEmailPayload 下单确认邮件任务载荷，订单只存在于会话存储中，因此携带完整快照
type OrderConfirmationEmailPayload struct {
	Locale string               `json:"locale"`
	Order  models.OrderSnapshot `json:"order"`
}

func newJSONTask(taskType string, payload interface{}) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body), nil
}

// NewReviewRelayTask 创建评论转发任务
func NewReviewRelayTask(payload ReviewRelayPayload) (*asynq.Task, error) {
	return newJSONTask(TaskRelayReview, payload)
}

// NewNewsletterRelayTask 创建订阅转发任务
func NewNewsletterRelayTask(payload NewsletterRelayPayload) (*asynq.Task, error) {
	return newJSONTask(TaskRelayNewsletter, payload)
}

// NewOrderConfirmationEmailTask 创建下单确认邮件任务
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	return newJSONTask(TaskOrderConfirmationEmail, payload)
}
