package repository

import (
	"github.com/bgcollection/storefront/internal/models"

	"gorm.io/gorm"
)

// ProductReviewRepository 商品评论数据访问接口
type ProductReviewRepository interface {
	Create(review *models.ProductReview) error
	List(filter ProductReviewListFilter) ([]models.ProductReview, int64, error)
}

// GormProductReviewRepository GORM 实现
type GormProductReviewRepository struct {
	db *gorm.DB
}

// NewProductReviewRepository 创建评论仓库
func NewProductReviewRepository(db *gorm.DB) *GormProductReviewRepository {
	return &GormProductReviewRepository{db: db}
}

// Create 新增评论
func (r *GormProductReviewRepository) Create(review *models.ProductReview) error {
	return r.db.Create(review).Error
}

// List 按商品查询评论，最新优先
func (r *GormProductReviewRepository) List(filter ProductReviewListFilter) ([]models.ProductReview, int64, error) {
	query := r.db.Model(&models.ProductReview{}).Where("product_id = ?", filter.ProductID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.ProductReview
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
