package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/repository"
)

// SessionState 会话状态的类型化读写入口
// 每个键保存一份 JSON 文档，解析失败的值记录日志后按不存在处理
type SessionState struct {
	repo  repository.StorageRepository
	locks *sessionLocker
}

// NewSessionState 创建会话状态访问器
func NewSessionState(repo repository.StorageRepository) *SessionState {
	return &SessionState{repo: repo, locks: newSessionLocker()}
}

// Lock 串行化同一会话的读改写
func (s *SessionState) Lock(sessionID string) func() {
	return s.locks.Lock(sessionID)
}

func (s *SessionState) load(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, ErrSessionInvalid
	}
	raw, ok, err := s.repo.Load(ctx, sessionID, key)
	if err != nil {
		return false, err
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warnw("session_state_decode_failed",
			"session_id", sessionID,
			"key", key,
			"error", err,
		)
		return false, nil
	}
	return true, nil
}

func (s *SessionState) save(ctx context.Context, sessionID, key string, value interface{}) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionInvalid
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, sessionID, key, payload)
}

func (s *SessionState) remove(ctx context.Context, sessionID, key string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionInvalid
	}
	return s.repo.Delete(ctx, sessionID, key)
}

// Cart 读取购物车
func (s *SessionState) Cart(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if _, err := s.load(ctx, sessionID, constants.StorageKeyCart, &lines); err != nil {
		return nil, err
	}
	return sanitizeCartLines(lines), nil
}

// SaveCart 整体写回购物车
func (s *SessionState) SaveCart(ctx context.Context, sessionID string, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return s.save(ctx, sessionID, constants.StorageKeyCart, lines)
}

// Wishlist 读取收藏列表
func (s *SessionState) Wishlist(ctx context.Context, sessionID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if _, err := s.load(ctx, sessionID, constants.StorageKeyWishlist, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, nil
}

// SaveWishlist 写回收藏列表
func (s *SessionState) SaveWishlist(ctx context.Context, sessionID string, items []models.WishlistItem) error {
	if items == nil {
		items = []models.WishlistItem{}
	}
	return s.save(ctx, sessionID, constants.StorageKeyWishlist, items)
}

// User 读取当前登录用户，未登录返回 nil
func (s *SessionState) User(ctx context.Context, sessionID string) (*models.UserSession, error) {
	var user models.UserSession
	ok, err := s.load(ctx, sessionID, constants.StorageKeyUser, &user)
	if err != nil || !ok || user.ID == "" {
		return nil, err
	}
	return &user, nil
}

// SaveUser 写入登录用户
func (s *SessionState) SaveUser(ctx context.Context, sessionID string, user *models.UserSession) error {
	return s.save(ctx, sessionID, constants.StorageKeyUser, user)
}

// DeleteUser 退出登录
func (s *SessionState) DeleteUser(ctx context.Context, sessionID string) error {
	return s.remove(ctx, sessionID, constants.StorageKeyUser)
}

// Orders 读取订单历史，返回值 exists 表示键是否存在且可解析
func (s *SessionState) Orders(ctx context.Context, sessionID string) ([]models.OrderSnapshot, bool, error) {
	var orders []models.OrderSnapshot
	ok, err := s.load(ctx, sessionID, constants.StorageKeyOrders, &orders)
	if err != nil {
		return nil, false, err
	}
	if orders == nil {
		orders = []models.OrderSnapshot{}
	}
	return orders, ok, nil
}

// SaveOrders 写回订单历史
func (s *SessionState) SaveOrders(ctx context.Context, sessionID string, orders []models.OrderSnapshot) error {
	if orders == nil {
		orders = []models.OrderSnapshot{}
	}
	return s.save(ctx, sessionID, constants.StorageKeyOrders, orders)
}

// LastOrder 读取最近一笔订单
func (s *SessionState) LastOrder(ctx context.Context, sessionID string) (*models.OrderSnapshot, error) {
	var order models.OrderSnapshot
	ok, err := s.load(ctx, sessionID, constants.StorageKeyLastOrder, &order)
	if err != nil || !ok || order.OrderID == "" {
		return nil, err
	}
	return &order, nil
}

// SaveLastOrder 写入最近一笔订单
func (s *SessionState) SaveLastOrder(ctx context.Context, sessionID string, order *models.OrderSnapshot) error {
	return s.save(ctx, sessionID, constants.StorageKeyLastOrder, order)
}

// Draft 读取结账草稿
func (s *SessionState) Draft(ctx context.Context, sessionID string) (*models.CheckoutDraft, error) {
	var draft models.CheckoutDraft
	ok, err := s.load(ctx, sessionID, constants.StorageKeyCheckout, &draft)
	if err != nil || !ok || draft.Step == "" {
		return nil, err
	}
	return &draft, nil
}

// SaveDraft 写入结账草稿
func (s *SessionState) SaveDraft(ctx context.Context, sessionID string, draft *models.CheckoutDraft) error {
	return s.save(ctx, sessionID, constants.StorageKeyCheckout, draft)
}

// DeleteDraft 删除结账草稿
func (s *SessionState) DeleteDraft(ctx context.Context, sessionID string) error {
	return s.remove(ctx, sessionID, constants.StorageKeyCheckout)
}

// Promo 读取已应用的优惠码
func (s *SessionState) Promo(ctx context.Context, sessionID string) (string, error) {
	var code string
	if _, err := s.load(ctx, sessionID, constants.StorageKeyPromo, &code); err != nil {
		return "", err
	}
	return code, nil
}

// SavePromo 写入优惠码
func (s *SessionState) SavePromo(ctx context.Context, sessionID, code string) error {
	return s.save(ctx, sessionID, constants.StorageKeyPromo, code)
}

// DeletePromo 移除优惠码
func (s *SessionState) DeletePromo(ctx context.Context, sessionID string) error {
	return s.remove(ctx, sessionID, constants.StorageKeyPromo)
}
