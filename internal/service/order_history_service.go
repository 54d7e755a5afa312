package service

import (
	"context"
	"strings"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"

	"golang.org/x/sync/singleflight"
)

// 物流时间线节点，ordered 始终视为已到达
const trackingStageOrdered = "ordered"

var trackingStages = []string{
	trackingStageOrdered,
	constants.OrderStatusProcessing,
	constants.OrderStatusShipped,
	constants.OrderStatusDelivered,
}

// TrackingStage 时间线节点
type TrackingStage struct {
	Status  string `json:"status"`
	Reached bool   `json:"reached"`
	Current bool   `json:"current"`
}

// OrderTracking 订单跟踪视图
type OrderTracking struct {
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status"`
	TrackingNumber *string         `json:"tracking_number,omitempty"`
	Timeline       []TrackingStage `json:"timeline"`
}

// OrderHistoryService 订单历史（只读，不做任何状态流转）
type OrderHistoryService struct {
	state    *SessionState
	cfg      config.OrderConfig
	currency string
	group    singleflight.Group
}

// NewOrderHistoryService 创建订单历史服务
func NewOrderHistoryService(state *SessionState, cfg config.OrderConfig, currency string) *OrderHistoryService {
	if strings.TrimSpace(currency) == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &OrderHistoryService{state: state, cfg: cfg, currency: currency}
}

func isKnownOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusProcessing, constants.OrderStatusShipped, constants.OrderStatusDelivered:
		return true
	}
	return false
}

// load 读取历史，为空时按配置写入演示订单；同一会话的并发读取合并为一次
func (s *OrderHistoryService) load(ctx context.Context, sessionID string) ([]models.OrderSnapshot, error) {
	// 合并后的读取与首个调用方的取消解耦
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(sessionID, func() (interface{}, error) {
		orders, _, err := s.state.Orders(shared, sessionID)
		if err != nil {
			return nil, err
		}
		if len(orders) > 0 || !s.cfg.SeedDemoOrders {
			return orders, nil
		}
		return s.seed(shared, sessionID)
	})
	if err != nil {
		return nil, err
	}
	loaded := v.([]models.OrderSnapshot)
	orders := make([]models.OrderSnapshot, len(loaded))
	copy(orders, loaded)
	return orders, nil
}

func (s *OrderHistoryService) seed(ctx context.Context, sessionID string) ([]models.OrderSnapshot, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()

	// 加锁后重读，避免覆盖同时完成的结账
	orders, _, err := s.state.Orders(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return orders, nil
	}
	orders = demoOrders(s.currency)
	if err := s.state.SaveOrders(ctx, sessionID, orders); err != nil {
		return nil, err
	}
	logger.Debugw("order_history_seeded", "session_id", sessionID, "count", len(orders))
	return orders, nil
}

// List 订单列表，最新在前；status 为空时不过滤
func (s *OrderHistoryService) List(ctx context.Context, sessionID, status string) ([]models.OrderSnapshot, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != "all" && !isKnownOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}
	orders, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if status == "" || status == "all" {
		return orders, nil
	}
	filtered := make([]models.OrderSnapshot, 0, len(orders))
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// Get 按订单号查询
func (s *OrderHistoryService) Get(ctx context.Context, sessionID, orderID string) (*models.OrderSnapshot, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	orders, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if strings.EqualFold(orders[i].OrderID, orderID) {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// Track 订单跟踪时间线
func (s *OrderHistoryService) Track(ctx context.Context, sessionID, orderID string) (*OrderTracking, error) {
	order, err := s.Get(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderTracking{
		OrderID:        order.OrderID,
		Status:         order.Status,
		TrackingNumber: order.TrackingNumber,
		Timeline:       buildTrackingTimeline(order.Status),
	}, nil
}

func buildTrackingTimeline(status string) []TrackingStage {
	current := 0
	for i, stage := range trackingStages {
		if stage == status {
			current = i
		}
	}
	timeline := make([]TrackingStage, len(trackingStages))
	for i, stage := range trackingStages {
		timeline[i] = TrackingStage{
			Status:  stage,
			Reached: i <= current,
			Current: i == current,
		}
	}
	return timeline
}

// LastOrder 最近一次结账生成的订单
func (s *OrderHistoryService) LastOrder(ctx context.Context, sessionID string) (*models.OrderSnapshot, error) {
	order, err := s.state.LastOrder(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
