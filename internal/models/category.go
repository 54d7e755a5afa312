package models

import "time"

// Category 商品分类表
type Category struct {
	Slug      string    `gorm:"primaryKey;type:varchar(64)" json:"id"`    // 分类标识（photo-frames 等）
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`   // 分类名称
	Image     string    `gorm:"type:varchar(500)" json:"image"`           // 分类图片
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`        // 排序权重
	CreatedAt time.Time `gorm:"index" json:"created_at"`                  // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
