package service

import (
	"strings"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PricingPolicy 价格计算规则，购物车与结账共用
type PricingPolicy struct {
	Currency              string
	FreeShippingThreshold decimal.Decimal
	StandardFee           decimal.Decimal
	ExpressFee            decimal.Decimal
	TaxRate               decimal.Decimal
	PromoCode             string
	PromoPercent          decimal.Decimal
}

// PriceBreakdown 金额明细
// total = subtotal - discount + shipping_fee + tax_amount（tax_included=false 时不含税）
type PriceBreakdown struct {
	Currency       string       `json:"currency"`
	Subtotal       models.Money `json:"subtotal"`
	Discount       models.Money `json:"discount"`
	ShippingFee    models.Money `json:"shipping_fee"`
	ShippingMethod string       `json:"shipping_method"`
	TaxRate        string       `json:"tax_rate"`
	TaxAmount      models.Money `json:"tax_amount"`
	TaxIncluded    bool         `json:"tax_included"`
	Total          models.Money `json:"total"`
	PromoCode      string       `json:"promo_code,omitempty"`
}

// NewPricingPolicy 从配置构建价格规则
func NewPricingPolicy(pricing config.PricingConfig, promo config.PromoConfig) PricingPolicy {
	currency := strings.TrimSpace(pricing.Currency)
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}
	return PricingPolicy{
		Currency:              currency,
		FreeShippingThreshold: decimal.NewFromFloat(pricing.FreeShippingThreshold),
		StandardFee:           decimal.NewFromFloat(pricing.StandardFee),
		ExpressFee:            decimal.NewFromFloat(pricing.ExpressFee),
		TaxRate:               decimal.NewFromFloat(pricing.TaxRate),
		PromoCode:             strings.ToUpper(strings.TrimSpace(promo.Code)),
		PromoPercent:          decimal.NewFromFloat(promo.Percent),
	}
}

// MatchPromo 匹配优惠码（不区分大小写），返回规范化后的优惠码
func (p PricingPolicy) MatchPromo(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" || p.PromoCode == "" || normalized != p.PromoCode {
		return "", false
	}
	return normalized, true
}

// Subtotal 商品小计
func (p PricingPolicy) Subtotal(lines []models.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal().Decimal)
	}
	return subtotal
}

// ShippingFee 运费：加急固定收费；标准配送满额包邮；空购物车不收运费
func (p PricingPolicy) ShippingFee(subtotal decimal.Decimal, method string, empty bool) decimal.Decimal {
	if empty {
		return decimal.Zero
	}
	if method == constants.ShippingMethodExpress {
		return p.ExpressFee
	}
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.StandardFee
}

// Quote 计算金额明细，includeTax=false 时税额仅作展示，不计入总额
func (p PricingPolicy) Quote(lines []models.CartLine, method, promoCode string, includeTax bool) PriceBreakdown {
	if method != constants.ShippingMethodExpress {
		method = constants.ShippingMethodStandard
	}
	subtotal := p.Subtotal(lines)
	discount := decimal.Zero
	appliedPromo := ""
	if code, ok := p.MatchPromo(promoCode); ok && len(lines) > 0 {
		discount = subtotal.Mul(p.PromoPercent).Div(hundred).Round(2)
		appliedPromo = code
	}
	shipping := p.ShippingFee(subtotal, method, len(lines) == 0)
	tax := subtotal.Mul(p.TaxRate).Round(2)

	total := subtotal.Sub(discount).Add(shipping)
	if includeTax {
		total = total.Add(tax)
	}
	return PriceBreakdown{
		Currency:       p.Currency,
		Subtotal:       models.NewMoneyFromDecimal(subtotal),
		Discount:       models.NewMoneyFromDecimal(discount),
		ShippingFee:    models.NewMoneyFromDecimal(shipping),
		ShippingMethod: method,
		TaxRate:        p.TaxRate.String(),
		TaxAmount:      models.NewMoneyFromDecimal(tax),
		TaxIncluded:    includeTax,
		Total:          models.NewMoneyFromDecimal(total),
		PromoCode:      appliedPromo,
	}
}
