package models

import "time"

// Product 商品表
type Product struct {
	ID          string      `gorm:"primaryKey;type:varchar(32)" json:"id"`                  // 商品编号
	Name        string      `gorm:"type:varchar(200);not null;index" json:"name"`           // 商品名称
	Description string      `gorm:"type:text" json:"description"`                           // 商品描述
	Price       Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"`     // 售价（INR）
	Images      StringArray `gorm:"type:text" json:"images"`                                // 图片数组
	Category    string      `gorm:"type:varchar(64);not null;index" json:"category"`        // 分类标识
	Colors      StringArray `gorm:"type:text" json:"colors"`                                // 可选颜色
	Sizes       StringArray `gorm:"type:text" json:"sizes"`                                 // 可选尺寸
	Material    string      `gorm:"type:varchar(200)" json:"material"`                      // 材质
	Rating      float64     `gorm:"not null;default:0" json:"rating"`                       // 评分
	ReviewCount int         `gorm:"not null;default:0" json:"review_count"`                 // 评论数
	Popularity  int         `gorm:"not null;default:0;index" json:"popularity"`             // 热度
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`                                // 上架时间
	UpdatedAt   time.Time   `json:"updated_at"`                                             // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// PrimaryImage 返回主图
func (p *Product) PrimaryImage() string {
	if p == nil {
		return ""
	}
	return p.Images.First("/placeholder.svg")
}
