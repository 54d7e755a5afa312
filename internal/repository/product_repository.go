package repository

import (
	"errors"
	"strings"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	ListByIDs(ids []string) ([]models.Product, error)
	ListRelated(category, excludeID string, limit int) ([]models.Product, error)
	Upsert(product *models.Product) error
	Count() (int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表（搜索、筛选、排序、分页）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLikeCondition(r.db, []string{"name", "description", "category"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if color := strings.TrimSpace(filter.Color); color != "" {
		condition, arg := jsonArrayContainsCondition(r.db, "products.colors", color)
		query = query.Where(condition, arg)
	}
	if size := strings.TrimSpace(filter.Size); size != "" {
		condition, arg := jsonArrayContainsCondition(r.db, "products.sizes", size)
		query = query.Where(condition, arg)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(productSortClause(filter.Sort)).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func productSortClause(sort string) string {
	switch strings.TrimSpace(sort) {
	case constants.ProductSortPriceLow:
		return "price ASC, id ASC"
	case constants.ProductSortPriceHigh:
		return "price DESC, id ASC"
	case constants.ProductSortPopular:
		return "popularity DESC, id ASC"
	case constants.ProductSortRating:
		return "rating DESC, review_count DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 按 ID 列表获取商品，保持入参顺序，跳过不存在的 ID
func (r *GormProductRepository) ListByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var rows []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	products := make([]models.Product, 0, len(rows))
	for _, id := range ids {
		if product, ok := byID[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

// ListRelated 同分类的其他商品
func (r *GormProductRepository) ListRelated(category, excludeID string, limit int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("category = ? AND id <> ?", category, excludeID).Order("popularity DESC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Upsert 按主键写入或覆盖商品
func (r *GormProductRepository) Upsert(product *models.Product) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(product).Error
}

// Count 商品总数
func (r *GormProductRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
