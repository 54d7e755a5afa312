package models

import "time"

// CustomerContact 下单联系方式
type CustomerContact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderSnapshot 结账完成时冻结的订单记录，创建后不再重算
type OrderSnapshot struct {
	OrderID         string          `json:"order_id"`                  // 订单号
	CreatedAt       time.Time       `json:"created_at"`                // 下单时间
	Status          string          `json:"status"`                    // processing / shipped / delivered
	Lines           []CartLine      `json:"lines"`                     // 商品行快照
	Subtotal        Money           `json:"subtotal"`                  // 商品小计
	Discount        Money           `json:"discount"`                  // 优惠金额
	ShippingFee     Money           `json:"shipping_fee"`              // 运费
	TaxAmount       Money           `json:"tax_amount"`                // 税额（GST）
	Total           Money           `json:"total"`                     // 应付总额
	Currency        string          `json:"currency"`                  // 币种
	ShippingAddress string          `json:"shipping_address"`          // 收货地址
	ShippingMethod  string          `json:"shipping_method"`           // 配送方式
	PaymentMethod   string          `json:"payment_method"`            // 支付方式
	PromoCode       string          `json:"promo_code,omitempty"`      // 使用的优惠码
	TrackingNumber  *string         `json:"tracking_number,omitempty"` // 物流单号
	CustomerName    string          `json:"customer_name"`             // 收货人
	CustomerContact CustomerContact `json:"customer_contact"`          // 联系方式
}

// ItemCount 商品件数合计
func (o *OrderSnapshot) ItemCount() int {
	if o == nil {
		return 0
	}
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}
