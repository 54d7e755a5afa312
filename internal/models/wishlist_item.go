package models

import "time"

// WishlistItem 收藏项，按商品去重
type WishlistItem struct {
	ProductID string    `json:"product_id"` // 商品编号
	Name      string    `json:"name"`       // 商品名称快照
	Price     Money     `json:"price"`      // 价格快照
	ImageRef  string    `json:"image_ref"`  // 展示图片
	Category  string    `json:"category"`   // 分类标识
	AddedAt   time.Time `json:"added_at"`   // 收藏时间
}
