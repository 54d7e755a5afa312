package models

import "time"

// NewsletterSubscriber 邮件订阅表
type NewsletterSubscriber struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                    // 主键
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`     // 订阅邮箱（小写）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                 // 订阅时间
}

// TableName 指定表名
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
