package service

import (
	"context"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/queue"
	"github.com/bgcollection/storefront/internal/repository"
)

// ReviewInput 商品评论输入
type ReviewInput struct {
	Rating  int                  `json:"rating" validate:"gte=1,lte=5"`
	Name    string               `json:"name" validate:"required,max=80"`
	Title   string               `json:"title" validate:"required,max=120"`
	Content string               `json:"content" validate:"required,max=4000"`
	Captcha CaptchaVerifyPayload `json:"captcha" validate:"-"`
}

// ReviewPage 评论分页
type ReviewPage struct {
	Items    []models.ProductReview `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// ReviewService 商品评论
type ReviewService struct {
	reviewRepo    repository.ProductReviewRepository
	productRepo   repository.ProductRepository
	captcha       *CaptchaService
	notifications *NotificationService
}

// NewReviewService 创建评论服务
func NewReviewService(reviewRepo repository.ProductReviewRepository, productRepo repository.ProductRepository, captcha *CaptchaService, notifications *NotificationService) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		productRepo:   productRepo,
		captcha:       captcha,
		notifications: notifications,
	}
}

// Submit 保存评论并异步转发
func (s *ReviewService) Submit(ctx context.Context, productID string, input ReviewInput) (*models.ProductReview, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if err := validateStruct(ErrReviewInvalid, input); err != nil {
		return nil, err
	}
	if err := s.captcha.Verify(constants.CaptchaSceneReview, input.Captcha); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(strings.TrimSpace(productID))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.ProductReview{
		ProductID: product.ID,
		Rating:    input.Rating,
		Name:      input.Name,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	s.notifications.EnqueueReviewRelay(ctx, queue.ReviewRelayPayload{
		ReviewID:    review.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Rating:      review.Rating,
		Name:        review.Name,
		Title:       review.Title,
		Content:     review.Content,
		SubmittedAt: review.CreatedAt,
	})
	return review, nil
}

// ListByProduct 商品评论列表，最新在前
func (s *ReviewService) ListByProduct(productID string, page, pageSize int) (*ReviewPage, error) {
	productID = strings.TrimSpace(productID)
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}
	items, total, err := s.reviewRepo.List(repository.ProductReviewListFilter{
		ProductID: productID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ProductReview{}
	}
	return &ReviewPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
