package service

import (
	"context"
	"strings"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/repository"
)

// AddCartLineInput 加入购物车输入
type AddCartLineInput struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

// CartSummary 购物车视图，金额为税前估算
type CartSummary struct {
	Lines                 []models.CartLine `json:"lines"`
	ItemCount             int               `json:"item_count"`
	Pricing               PriceBreakdown    `json:"pricing"`
	EstimatedTax          models.Money      `json:"estimated_tax"`
	FreeShippingThreshold models.Money      `json:"free_shipping_threshold"`
}

// CartService 购物车服务
type CartService struct {
	state       *SessionState
	productRepo repository.ProductRepository
	pricing     PricingPolicy
}

// NewCartService 创建购物车服务
func NewCartService(state *SessionState, productRepo repository.ProductRepository, pricing PricingPolicy) *CartService {
	return &CartService{
		state:       state,
		productRepo: productRepo,
		pricing:     pricing,
	}
}

// List 当前购物车行
func (s *CartService) List(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	return s.state.Cart(ctx, sessionID)
}

// Summary 购物车及税前金额估算
func (s *CartService) Summary(ctx context.Context, sessionID string) (*CartSummary, error) {
	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	promo, err := s.state.Promo(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(lines, promo), nil
}

func (s *CartService) buildSummary(lines []models.CartLine, promo string) *CartSummary {
	quote := s.pricing.Quote(lines, constants.ShippingMethodStandard, promo, false)
	return &CartSummary{
		Lines:                 lines,
		ItemCount:             cartItemCount(lines),
		Pricing:               quote,
		EstimatedTax:          quote.TaxAmount,
		FreeShippingThreshold: models.NewMoneyFromDecimal(s.pricing.FreeShippingThreshold),
	}
}

// Add 加入购物车，价格与名称以商品目录为准
func (s *CartService) Add(ctx context.Context, sessionID string, input AddCartLineInput) (*CartSummary, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	if err := s.addLocked(ctx, sessionID, input); err != nil {
		return nil, err
	}
	return s.summaryLocked(ctx, sessionID)
}

func (s *CartService) addLocked(ctx context.Context, sessionID string, input AddCartLineInput) error {
	if input.Quantity < 1 {
		return ErrInvalidQuantity
	}
	line, err := s.resolveLine(input)
	if err != nil {
		return err
	}
	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return err
	}
	lines, err = addCartLine(lines, line)
	if err != nil {
		return err
	}
	if err := s.state.SaveCart(ctx, sessionID, lines); err != nil {
		logger.Warnw("cart_persist_failed", "session_id", sessionID, "product_id", line.ProductID, "error", err)
		return err
	}
	return nil
}

func (s *CartService) resolveLine(input AddCartLineInput) (models.CartLine, error) {
	key := models.NewLineKey(input.ProductID, input.Size, input.Color)
	if !key.Valid() {
		return models.CartLine{}, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(key.ProductID)
	if err != nil {
		return models.CartLine{}, err
	}
	if product == nil {
		return models.CartLine{}, ErrProductNotFound
	}
	if key.Size != "" && len(product.Sizes) > 0 && !product.Sizes.Contains(key.Size) {
		return models.CartLine{}, ErrProductOptionInvalid
	}
	if key.Color != "" && len(product.Colors) > 0 && !product.Colors.Contains(key.Color) {
		return models.CartLine{}, ErrProductOptionInvalid
	}
	return models.CartLine{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.Price,
		Quantity:      input.Quantity,
		SelectedSize:  key.Size,
		SelectedColor: key.Color,
		ImageRef:      product.PrimaryImage(),
	}, nil
}

// UpdateQuantity 修改数量，小于 1 时按 1 处理，行不存在时不做修改
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, key models.LineKey, quantity int) (*CartSummary, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines, changed := updateCartLineQuantity(lines, normalizeLineKey(key), quantity)
	if changed {
		if err := s.state.SaveCart(ctx, sessionID, lines); err != nil {
			logger.Warnw("cart_persist_failed", "session_id", sessionID, "line", key.String(), "error", err)
			return nil, err
		}
	}
	return s.summaryLocked(ctx, sessionID)
}

// Remove 删除购物车行，行不存在时不做修改
func (s *CartService) Remove(ctx context.Context, sessionID string, key models.LineKey) (*CartSummary, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines, changed := removeCartLine(lines, normalizeLineKey(key))
	if changed {
		if err := s.state.SaveCart(ctx, sessionID, lines); err != nil {
			logger.Warnw("cart_persist_failed", "session_id", sessionID, "line", key.String(), "error", err)
			return nil, err
		}
	}
	return s.summaryLocked(ctx, sessionID)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	unlock := s.state.Lock(sessionID)
	defer unlock()
	return s.state.SaveCart(ctx, sessionID, nil)
}

// ApplyPromo 应用优惠码，重复应用不叠加，返回 alreadyApplied=true
func (s *CartService) ApplyPromo(ctx context.Context, sessionID, code string) (*CartSummary, bool, error) {
	normalized, ok := s.pricing.MatchPromo(code)
	if !ok {
		return nil, false, ErrPromoCodeInvalid
	}
	unlock := s.state.Lock(sessionID)
	defer unlock()

	current, err := s.state.Promo(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	alreadyApplied := strings.EqualFold(current, normalized)
	if !alreadyApplied {
		if err := s.state.SavePromo(ctx, sessionID, normalized); err != nil {
			return nil, false, err
		}
	}
	summary, err := s.summaryLocked(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	return summary, alreadyApplied, nil
}

// RemovePromo 移除优惠码
func (s *CartService) RemovePromo(ctx context.Context, sessionID string) (*CartSummary, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	if err := s.state.DeletePromo(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.summaryLocked(ctx, sessionID)
}

func (s *CartService) summaryLocked(ctx context.Context, sessionID string) (*CartSummary, error) {
	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	promo, err := s.state.Promo(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(lines, promo), nil
}

func normalizeLineKey(key models.LineKey) models.LineKey {
	return models.NewLineKey(key.ProductID, key.Size, key.Color)
}
