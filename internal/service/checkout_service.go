package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/relay"
)

// FormRelay 表单转发能力
type FormRelay interface {
	Submit(ctx context.Context, submission relay.Submission) error
	Configured() bool
}

// CheckoutPatch 结账草稿增量，空字段表示不修改
type CheckoutPatch struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	ShippingMethod string `json:"shipping_method"`
	PaymentMethod  string `json:"payment_method"`
	CardName       string `json:"card_name"`
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVC            string `json:"cvc"`
	SameAsShipping *bool  `json:"same_as_shipping"`
}

// CheckoutView 结账页视图
type CheckoutView struct {
	Draft *models.CheckoutDraft `json:"draft"`
	Lines []models.CartLine     `json:"lines"`
	Quote PriceBreakdown        `json:"quote"`
}

// CheckoutService 结账状态机：shipping → payment → review → submitted
type CheckoutService struct {
	state         *SessionState
	pricing       PricingPolicy
	relay         FormRelay
	notifications *NotificationService
	orderCfg      config.OrderConfig
	fromName      string
	now           func() time.Time
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(state *SessionState, pricing PricingPolicy, formRelay FormRelay, notifications *NotificationService, orderCfg config.OrderConfig, relayCfg config.RelayConfig) *CheckoutService {
	return &CheckoutService{
		state:         state,
		pricing:       pricing,
		relay:         formRelay,
		notifications: notifications,
		orderCfg:      orderCfg,
		fromName:      relayCfg.OrderFromName,
		now:           time.Now,
	}
}

func newCheckoutDraft(now time.Time) *models.CheckoutDraft {
	return &models.CheckoutDraft{
		Step: constants.CheckoutStepShipping,
		Shipping: models.CheckoutShipping{
			Country:        constants.DefaultCountry,
			ShippingMethod: constants.ShippingMethodStandard,
		},
		Payment: models.CheckoutPayment{
			PaymentMethod:  constants.PaymentMethodCard,
			SameAsShipping: true,
		},
		UpdatedAt: now,
	}
}

// applyCheckoutPatch 合并非空字段；新卡号会作废已校验的卡信息，后四位在 Next 校验通过后才写入
func applyCheckoutPatch(draft *models.CheckoutDraft, patch CheckoutPatch) {
	assign := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	assign(&draft.Shipping.FirstName, patch.FirstName)
	assign(&draft.Shipping.LastName, patch.LastName)
	assign(&draft.Shipping.Email, strings.ToLower(patch.Email))
	assign(&draft.Shipping.Phone, patch.Phone)
	assign(&draft.Shipping.Address, patch.Address)
	assign(&draft.Shipping.City, patch.City)
	assign(&draft.Shipping.State, patch.State)
	assign(&draft.Shipping.Zip, patch.Zip)
	assign(&draft.Shipping.Country, patch.Country)
	assign(&draft.Shipping.ShippingMethod, strings.ToLower(patch.ShippingMethod))
	assign(&draft.Payment.PaymentMethod, strings.ToLower(patch.PaymentMethod))
	assign(&draft.Payment.CardName, patch.CardName)
	assign(&draft.Payment.Expiry, patch.Expiry)
	if normalizeCardNumber(patch.CardNumber) != "" || strings.TrimSpace(patch.CVC) != "" {
		draft.Payment.CardLast4 = ""
		draft.Payment.CardVerified = false
	}
	if patch.SameAsShipping != nil {
		draft.Payment.SameAsShipping = *patch.SameAsShipping
	}
}

func validateShippingStep(draft *models.CheckoutDraft) error {
	return validateStruct(ErrCheckoutValidation, draft.Shipping)
}

func validatePaymentStep(draft *models.CheckoutDraft, patch CheckoutPatch) error {
	methodErr := validateStruct(ErrCheckoutValidation, draft.Payment)
	if draft.Payment.PaymentMethod != constants.PaymentMethodCard {
		return methodErr
	}
	number := normalizeCardNumber(patch.CardNumber)
	cvc := strings.TrimSpace(patch.CVC)
	if number == "" && cvc == "" && draft.Payment.CardVerified {
		// 从 review 退回后再次前进，卡号与 CVC 不再重复提交
		return mergeValidationErrors(ErrCheckoutValidation, methodErr, validateStruct(ErrCheckoutValidation, struct {
			CardName string `json:"card_name" validate:"required"`
			Expiry   string `json:"expiry" validate:"required,card_expiry"`
		}{draft.Payment.CardName, draft.Payment.Expiry}))
	}
	err := mergeValidationErrors(ErrCheckoutValidation, methodErr, validateStruct(ErrCheckoutValidation, cardDetails{
		CardName:   draft.Payment.CardName,
		CardNumber: number,
		Expiry:     draft.Payment.Expiry,
		CVC:        cvc,
	}))
	if err != nil {
		return err
	}
	draft.Payment.CardLast4 = cardLast4(number)
	draft.Payment.CardVerified = true
	return nil
}

// reviewReadyStep review 页修改草稿后，退回到第一个不再满足校验的步骤
func reviewReadyStep(draft *models.CheckoutDraft) string {
	if validateShippingStep(draft) != nil {
		return constants.CheckoutStepShipping
	}
	if validateStruct(ErrCheckoutValidation, draft.Payment) != nil {
		return constants.CheckoutStepPayment
	}
	if draft.Payment.PaymentMethod == constants.PaymentMethodCard && !draft.Payment.CardVerified {
		return constants.CheckoutStepPayment
	}
	return constants.CheckoutStepReview
}

func (s *CheckoutService) buildView(ctx context.Context, sessionID string, draft *models.CheckoutDraft) (*CheckoutView, error) {
	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	promo, err := s.state.Promo(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	method := constants.ShippingMethodStandard
	if draft != nil {
		method = draft.Shipping.ShippingMethod
	}
	return &CheckoutView{
		Draft: draft,
		Lines: lines,
		Quote: s.pricing.Quote(lines, method, promo, true),
	}, nil
}

// Get 当前结账草稿与含税报价
func (s *CheckoutService) Get(ctx context.Context, sessionID string) (*CheckoutView, error) {
	draft, err := s.state.Draft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrCheckoutNotStarted
	}
	return s.buildView(ctx, sessionID, draft)
}

// Begin 开始结账；已有未完成草稿时直接返回
func (s *CheckoutService) Begin(ctx context.Context, sessionID string) (*CheckoutView, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}
	draft, err := s.state.Draft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft != nil && draft.Step != constants.CheckoutStepSubmitted {
		return s.buildView(ctx, sessionID, draft)
	}

	draft = newCheckoutDraft(s.now())
	user, err := s.state.User(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		applyCheckoutPatch(draft, CheckoutPatch{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
		})
		if draft.Shipping.FirstName == "" && draft.Shipping.LastName == "" {
			first, last, _ := strings.Cut(strings.TrimSpace(user.Name), " ")
			draft.Shipping.FirstName, draft.Shipping.LastName = first, strings.TrimSpace(last)
		}
	}
	if err := s.state.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return s.buildView(ctx, sessionID, draft)
}

func (s *CheckoutService) loadActiveDraft(ctx context.Context, sessionID string) (*models.CheckoutDraft, error) {
	draft, err := s.state.Draft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrCheckoutNotStarted
	}
	if draft.Step == constants.CheckoutStepSubmitted {
		return nil, ErrCheckoutStepInvalid
	}
	return draft, nil
}

// SaveDraft 保存表单输入，不改变步骤
func (s *CheckoutService) SaveDraft(ctx context.Context, sessionID string, patch CheckoutPatch) (*CheckoutView, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	draft, err := s.loadActiveDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	applyCheckoutPatch(draft, patch)
	if draft.Step == constants.CheckoutStepReview {
		draft.Step = reviewReadyStep(draft)
	}
	draft.UpdatedAt = s.now()
	if err := s.state.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return s.buildView(ctx, sessionID, draft)
}

// Next 校验当前步骤后前进一步，review 只能通过 Submit 离开
func (s *CheckoutService) Next(ctx context.Context, sessionID string, patch CheckoutPatch) (*CheckoutView, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	draft, err := s.loadActiveDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	applyCheckoutPatch(draft, patch)
	draft.UpdatedAt = s.now()

	var validationErr error
	next := draft.Step
	switch draft.Step {
	case constants.CheckoutStepShipping:
		validationErr = validateShippingStep(draft)
		next = constants.CheckoutStepPayment
	case constants.CheckoutStepPayment:
		validationErr = validatePaymentStep(draft, patch)
		next = constants.CheckoutStepReview
	default:
		return nil, ErrCheckoutStepInvalid
	}
	if validationErr == nil {
		draft.Step = next
	}
	if err := s.state.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	if validationErr != nil {
		return nil, validationErr
	}
	return s.buildView(ctx, sessionID, draft)
}

// Back 回退一步并保留已填写内容，shipping 步骤为空操作
func (s *CheckoutService) Back(ctx context.Context, sessionID string) (*CheckoutView, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	draft, err := s.loadActiveDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch draft.Step {
	case constants.CheckoutStepPayment:
		draft.Step = constants.CheckoutStepShipping
	case constants.CheckoutStepReview:
		draft.Step = constants.CheckoutStepPayment
	default:
		return s.buildView(ctx, sessionID, draft)
	}
	draft.UpdatedAt = s.now()
	if err := s.state.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return s.buildView(ctx, sessionID, draft)
}

// Reset 丢弃结账草稿
func (s *CheckoutService) Reset(ctx context.Context, sessionID string) error {
	unlock := s.state.Lock(sessionID)
	defer unlock()
	return s.state.DeleteDraft(ctx, sessionID)
}

func (s *CheckoutService) generateOrderID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	prefix := s.orderCfg.IDPrefix
	if prefix == "" {
		prefix = "ORD-"
	}
	return fmt.Sprintf("%s%d", prefix, 100000+n.Int64()), nil
}

func (s *CheckoutService) buildSnapshot(draft *models.CheckoutDraft, lines []models.CartLine, quote PriceBreakdown) (*models.OrderSnapshot, error) {
	orderID, err := s.generateOrderID()
	if err != nil {
		return nil, err
	}
	shipping := draft.Shipping
	frozen := make([]models.CartLine, len(lines))
	copy(frozen, lines)
	return &models.OrderSnapshot{
		OrderID:   orderID,
		CreatedAt: s.now(),
		Status:    constants.OrderStatusProcessing,
		Lines:     frozen,
		Subtotal:  quote.Subtotal,
		Discount:  quote.Discount,
		// 总额在此处一次性确定，之后不再重算
		ShippingFee:     quote.ShippingFee,
		TaxAmount:       quote.TaxAmount,
		Total:           quote.Total,
		Currency:        quote.Currency,
		ShippingAddress: strings.Join([]string{shipping.Address, shipping.City, shipping.State, shipping.Zip, shipping.Country}, ", "),
		ShippingMethod:  quote.ShippingMethod,
		PaymentMethod:   draft.Payment.PaymentMethod,
		PromoCode:       quote.PromoCode,
		CustomerName:    shipping.FullName(),
		CustomerContact: models.CustomerContact{Email: shipping.Email, Phone: shipping.Phone},
	}, nil
}

// Submit 提交订单：发送订单通知，成功后写入订单历史并清空购物车
// 通知失败时保持在 review 步骤并记录错误，不自动重试
func (s *CheckoutService) Submit(ctx context.Context, sessionID, locale string) (*models.OrderSnapshot, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	draft, err := s.loadActiveDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != constants.CheckoutStepReview || reviewReadyStep(draft) != constants.CheckoutStepReview {
		return nil, ErrCheckoutStepInvalid
	}
	lines, err := s.state.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}
	promo, err := s.state.Promo(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	quote := s.pricing.Quote(lines, draft.Shipping.ShippingMethod, promo, true)
	order, err := s.buildSnapshot(draft, lines, quote)
	if err != nil {
		return nil, err
	}

	draft.SubmitAttempted = true
	draft.UpdatedAt = s.now()
	if relayErr := s.sendOrderNotification(ctx, order); relayErr != nil {
		draft.LastError = relayErr.Error()
		if err := s.state.SaveDraft(ctx, sessionID, draft); err != nil {
			logger.Warnw("checkout_draft_persist_failed", "session_id", sessionID, "error", err)
		}
		logger.Warnw("order_relay_failed",
			"session_id", sessionID,
			"order_id", order.OrderID,
			"error", relayErr,
		)
		return nil, fmt.Errorf("%w: %v", ErrRelayFailed, relayErr)
	}

	if err := s.recordOrder(ctx, sessionID, order); err != nil {
		return nil, err
	}

	draft.Step = constants.CheckoutStepSubmitted
	draft.LastError = ""
	draft.OrderID = order.OrderID
	if err := s.state.SaveDraft(ctx, sessionID, draft); err != nil {
		logger.Warnw("checkout_draft_persist_failed", "session_id", sessionID, "error", err)
	}

	logger.Infow("order_submitted",
		"session_id", sessionID,
		"order_id", order.OrderID,
		"total", order.Total.String(),
		"items", order.ItemCount(),
	)
	if s.notifications != nil {
		s.notifications.EnqueueOrderConfirmation(ctx, order, locale)
	}
	return order, nil
}

func (s *CheckoutService) sendOrderNotification(ctx context.Context, order *models.OrderSnapshot) error {
	if s.relay == nil || !s.relay.Configured() {
		logger.Warnw("order_relay_skipped", "order_id", order.OrderID, "reason", "relay_not_configured")
		return nil
	}
	return s.relay.Submit(ctx, buildOrderSubmission(order, s.fromName, s.pricing.TaxRate))
}

// recordOrder 写入最近订单、追加到历史头部并清空购物车与优惠码
func (s *CheckoutService) recordOrder(ctx context.Context, sessionID string, order *models.OrderSnapshot) error {
	if err := s.state.SaveLastOrder(ctx, sessionID, order); err != nil {
		return err
	}
	history, _, err := s.state.Orders(ctx, sessionID)
	if err != nil {
		return err
	}
	history = append([]models.OrderSnapshot{*order}, history...)
	if err := s.state.SaveOrders(ctx, sessionID, history); err != nil {
		return err
	}
	if err := s.state.SaveCart(ctx, sessionID, nil); err != nil {
		return err
	}
	return s.state.DeletePromo(ctx, sessionID)
}
