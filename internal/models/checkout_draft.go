package models

import "time"

// CheckoutShipping 收货信息
type CheckoutShipping struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	Zip            string `json:"zip" validate:"required"`
	Country        string `json:"country" validate:"required"`
	ShippingMethod string `json:"shipping_method" validate:"required,oneof=standard express"`
}

// CheckoutPayment 支付信息，卡号仅保留后四位，不保存 CVC
type CheckoutPayment struct {
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=card paypal apple"`
	CardName       string `json:"card_name,omitempty"`
	CardLast4      string `json:"card_last4,omitempty"`
	CardVerified   bool   `json:"card_verified"` // 卡号与 CVC 已在前进时通过校验
	Expiry         string `json:"expiry,omitempty"`
	SameAsShipping bool   `json:"same_as_shipping"`
}

// CheckoutDraft 结账草稿，步骤间共享同一份可变记录
type CheckoutDraft struct {
	Step            string           `json:"step"`                 // shipping / payment / review / submitted
	SubmitAttempted bool             `json:"submit_attempted"`     // 是否尝试过提交
	LastError       string           `json:"last_error,omitempty"` // 最近一次提交失败原因
	Shipping        CheckoutShipping `json:"shipping"`             // 收货信息
	Payment         CheckoutPayment  `json:"payment"`              // 支付信息
	OrderID         string           `json:"order_id,omitempty"`   // 提交成功后的订单号
	UpdatedAt       time.Time        `json:"updated_at"`           // 更新时间
}

// FullName 收货人姓名
func (s CheckoutShipping) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
