package service

import (
	"context"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/repository"
)

// WishlistService 收藏夹
type WishlistService struct {
	state       *SessionState
	productRepo repository.ProductRepository
	cart        *CartService
	now         func() time.Time
}

// NewWishlistService 创建收藏服务
func NewWishlistService(state *SessionState, productRepo repository.ProductRepository, cart *CartService) *WishlistService {
	return &WishlistService{
		state:       state,
		productRepo: productRepo,
		cart:        cart,
		now:         time.Now,
	}
}

func wishlistIndex(items []models.WishlistItem, productID string) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// List 收藏列表
func (s *WishlistService) List(ctx context.Context, sessionID string) ([]models.WishlistItem, error) {
	return s.state.Wishlist(ctx, sessionID)
}

// Contains 是否已收藏
func (s *WishlistService) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	items, err := s.state.Wishlist(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return wishlistIndex(items, strings.TrimSpace(productID)) >= 0, nil
}

// Add 收藏商品，重复收藏不产生新条目
func (s *WishlistService) Add(ctx context.Context, sessionID, productID string) ([]models.WishlistItem, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	unlock := s.state.Lock(sessionID)
	defer unlock()

	items, err := s.state.Wishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if wishlistIndex(items, product.ID) >= 0 {
		return items, nil
	}
	items = append(items, models.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageRef:  product.PrimaryImage(),
		Category:  product.Category,
		AddedAt:   s.now(),
	})
	if err := s.state.SaveWishlist(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove 取消收藏
func (s *WishlistService) Remove(ctx context.Context, sessionID, productID string) ([]models.WishlistItem, error) {
	unlock := s.state.Lock(sessionID)
	defer unlock()
	return s.removeLocked(ctx, sessionID, strings.TrimSpace(productID))
}

func (s *WishlistService) removeLocked(ctx context.Context, sessionID, productID string) ([]models.WishlistItem, error) {
	items, err := s.state.Wishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	idx := wishlistIndex(items, productID)
	if idx < 0 {
		return items, nil
	}
	items = append(items[:idx], items[idx+1:]...)
	if err := s.state.SaveWishlist(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// MoveToCart 以数量 1 加入购物车并移出收藏
func (s *WishlistService) MoveToCart(ctx context.Context, sessionID, productID, size, color string) (*CartSummary, error) {
	productID = strings.TrimSpace(productID)
	unlock := s.state.Lock(sessionID)
	defer unlock()

	items, err := s.state.Wishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if wishlistIndex(items, productID) < 0 {
		return nil, ErrNotFound
	}
	if err := s.cart.addLocked(ctx, sessionID, AddCartLineInput{
		ProductID: productID,
		Quantity:  1,
		Size:      size,
		Color:     color,
	}); err != nil {
		return nil, err
	}
	if _, err := s.removeLocked(ctx, sessionID, productID); err != nil {
		return nil, err
	}
	return s.cart.summaryLocked(ctx, sessionID)
}
