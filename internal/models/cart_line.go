package models

import "strings"

// LineKey 购物车行标识：商品 + 尺寸 + 颜色
type LineKey struct {
	ProductID string `json:"product_id" form:"product_id"` // 商品编号
	Size      string `json:"size" form:"size"`             // 所选尺寸，可为空
	Color     string `json:"color" form:"color"`           // 所选颜色，可为空
}

// NewLineKey 构造并清理空白
func NewLineKey(productID, size, color string) LineKey {
	return LineKey{
		ProductID: strings.TrimSpace(productID),
		Size:      strings.TrimSpace(size),
		Color:     strings.TrimSpace(color),
	}
}

// Valid 商品编号必填
func (k LineKey) Valid() bool {
	return k.ProductID != ""
}

// String 用于日志输出
func (k LineKey) String() string {
	return k.ProductID + "|" + k.Size + "|" + k.Color
}

// CartLine 购物车行（会话存储中的 JSON 结构）
type CartLine struct {
	ProductID     string `json:"product_id"`               // 商品编号
	Name          string `json:"name"`                     // 商品名称快照
	UnitPrice     Money  `json:"unit_price"`               // 单价快照
	Quantity      int    `json:"quantity"`                 // 数量，最小为 1
	SelectedSize  string `json:"selected_size,omitempty"`  // 所选尺寸
	SelectedColor string `json:"selected_color,omitempty"` // 所选颜色
	ImageRef      string `json:"image_ref"`                // 展示图片
}

// Key 返回行标识
func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.SelectedSize, Color: l.SelectedColor}
}

// LineTotal 单价 × 数量
func (l CartLine) LineTotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}
