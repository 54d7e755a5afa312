package models

import "time"

// ProductReview 商品评论表
type ProductReview struct {
	ID        uint      `gorm:"primarykey" json:"id"`                             // 主键
	ProductID string    `gorm:"type:varchar(32);not null;index" json:"product_id"` // 商品编号
	Rating    int       `gorm:"not null" json:"rating"`                           // 评分 1-5
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`           // 评论人
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`          // 标题
	Content   string    `gorm:"type:text;not null" json:"content"`                // 内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`                          // 创建时间
}

// TableName 指定表名
func (ProductReview) TableName() string {
	return "product_reviews"
}
