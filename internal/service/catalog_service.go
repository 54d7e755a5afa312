package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/repository"

	"golang.org/x/sync/singleflight"
)

const maxCatalogPageSize = 60

// 首页推荐商品，编号 21 在目录中不存在，查询时自动跳过
var featuredProductIDs = []string{"1", "3", "14", "21"}

// ProductQuery 商品列表查询参数
type ProductQuery struct {
	Q         string
	Category  string
	Color     string
	Size      string
	Price     string
	MinRating float64
	Sort      string
	Page      int
	PageSize  int
}

// ProductPage 商品分页结果
type ProductPage struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ProductDetail 商品详情与相关推荐
type ProductDetail struct {
	Product *models.Product  `json:"product"`
	Related []models.Product `json:"related"`
}

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cfg          config.CatalogConfig
	group        singleflight.Group
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cfg config.CatalogConfig) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
	}
}

func (s *CatalogService) cacheTTL() time.Duration {
	return time.Duration(s.cfg.CacheTTLSeconds) * time.Second
}

// ParsePriceRange 解析 "min-max" 价格区间，"min-" 表示不设上限
func ParsePriceRange(raw string) (*float64, *float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, nil
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil, nil, ErrPriceRangeInvalid
	}
	minRaw, maxRaw := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if minRaw == "" {
		return nil, nil, ErrPriceRangeInvalid
	}
	minValue, err := strconv.ParseFloat(minRaw, 64)
	if err != nil || minValue < 0 {
		return nil, nil, ErrPriceRangeInvalid
	}
	if maxRaw == "" {
		return &minValue, nil, nil
	}
	maxValue, err := strconv.ParseFloat(maxRaw, 64)
	if err != nil || maxValue < minValue {
		return nil, nil, ErrPriceRangeInvalid
	}
	return &minValue, &maxValue, nil
}

func normalizeProductSort(raw string) (string, error) {
	switch strings.TrimSpace(raw) {
	case "", constants.ProductSortNewest:
		return constants.ProductSortNewest, nil
	case constants.ProductSortPriceLow, constants.ProductSortPriceHigh, constants.ProductSortPopular, constants.ProductSortRating:
		return strings.TrimSpace(raw), nil
	default:
		return "", ErrSortInvalid
	}
}

func (s *CatalogService) normalizeQuery(query ProductQuery) (ProductQuery, repository.ProductListFilter, error) {
	minPrice, maxPrice, err := ParsePriceRange(query.Price)
	if err != nil {
		return query, repository.ProductListFilter{}, err
	}
	sort, err := normalizeProductSort(query.Sort)
	if err != nil {
		return query, repository.ProductListFilter{}, err
	}
	query.Sort = sort
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = s.cfg.DefaultPageSize
	}
	if query.PageSize <= 0 {
		query.PageSize = 12
	}
	if query.PageSize > maxCatalogPageSize {
		query.PageSize = maxCatalogPageSize
	}
	if query.MinRating < 0 {
		query.MinRating = 0
	}
	return query, repository.ProductListFilter{
		Page:      query.Page,
		PageSize:  query.PageSize,
		Search:    strings.TrimSpace(query.Q),
		Category:  strings.TrimSpace(query.Category),
		Color:     strings.TrimSpace(query.Color),
		Size:      strings.TrimSpace(query.Size),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		MinRating: query.MinRating,
		Sort:      sort,
	}, nil
}

func productQueryCacheKey(query ProductQuery) string {
	params := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			params.Set(key, value)
		}
	}
	set("q", strings.ToLower(query.Q))
	set("category", query.Category)
	set("color", query.Color)
	set("size", query.Size)
	set("price", query.Price)
	set("sort", query.Sort)
	if query.MinRating > 0 {
		params.Set("rating", strconv.FormatFloat(query.MinRating, 'f', -1, 64))
	}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("page_size", strconv.Itoa(query.PageSize))
	return cache.CatalogKey("list", params)
}

// List 商品列表：搜索、筛选、排序、分页
func (s *CatalogService) List(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	normalized, filter, err := s.normalizeQuery(query)
	if err != nil {
		return nil, err
	}
	key := productQueryCacheKey(normalized)

	var cached ProductPage
	if hit, cacheErr := cache.GetCatalog(ctx, key, &cached); cacheErr != nil {
		logger.Warnw("catalog_cache_get_failed", "key", key, "error", cacheErr)
	} else if hit {
		return &cached, nil
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		products, total, err := s.productRepo.List(filter)
		if err != nil {
			return nil, err
		}
		if products == nil {
			products = []models.Product{}
		}
		page := &ProductPage{
			Items:    products,
			Total:    total,
			Page:     normalized.Page,
			PageSize: normalized.PageSize,
		}
		if cacheErr := cache.SetCatalog(ctx, key, page, s.cacheTTL()); cacheErr != nil {
			logger.Warnw("catalog_cache_set_failed", "key", key, "error", cacheErr)
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	page := *value.(*ProductPage)
	return &page, nil
}

// Resolve 获取商品，不存在返回 ErrProductNotFound
func (s *CatalogService) Resolve(id string) (*models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Get 商品详情与同分类推荐
func (s *CatalogService) Get(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.Resolve(id)
	if err != nil {
		return nil, err
	}
	limit := s.cfg.RelatedLimit
	if limit <= 0 {
		limit = 4
	}
	related, err := s.productRepo.ListRelated(product.Category, product.ID, limit)
	if err != nil {
		logger.Warnw("catalog_related_fetch_failed", "product_id", product.ID, "error", err)
		related = nil
	}
	if related == nil {
		related = []models.Product{}
	}
	return &ProductDetail{Product: product, Related: related}, nil
}

// Featured 首页推荐商品
func (s *CatalogService) Featured(ctx context.Context) ([]models.Product, error) {
	key := cache.CatalogKey("featured", nil)
	var cached []models.Product
	if hit, cacheErr := cache.GetCatalog(ctx, key, &cached); cacheErr == nil && hit {
		return cached, nil
	}
	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		products, err := s.productRepo.ListByIDs(featuredProductIDs)
		if err != nil {
			return nil, err
		}
		if cacheErr := cache.SetCatalog(ctx, key, products, s.cacheTTL()); cacheErr != nil {
			logger.Warnw("catalog_cache_set_failed", "key", key, "error", cacheErr)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	products := value.([]models.Product)
	return append([]models.Product(nil), products...), nil
}

// Categories 分类列表
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	key := cache.CatalogKey("categories", nil)
	var cached []models.Category
	if hit, cacheErr := cache.GetCatalog(ctx, key, &cached); cacheErr == nil && hit {
		return cached, nil
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if cacheErr := cache.SetCatalog(ctx, key, categories, s.cacheTTL()); cacheErr != nil {
		logger.Warnw("catalog_cache_set_failed", "key", key, "error", cacheErr)
	}
	return categories, nil
}
