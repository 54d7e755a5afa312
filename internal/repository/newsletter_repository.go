package repository

import (
	"errors"

	"github.com/bgcollection/storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsletterRepository 邮件订阅数据访问接口
type NewsletterRepository interface {
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	// CreateIfAbsent 返回 true 表示新增，false 表示邮箱已存在
	CreateIfAbsent(subscriber *models.NewsletterSubscriber) (bool, error)
}

// GormNewsletterRepository GORM 实现
type GormNewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository 创建订阅仓库
func NewNewsletterRepository(db *gorm.DB) *GormNewsletterRepository {
	return &GormNewsletterRepository{db: db}
}

// GetByEmail 根据邮箱查询
func (r *GormNewsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	if err := r.db.Where("email = ?", email).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

// CreateIfAbsent 新增订阅，邮箱冲突时不报错
func (r *GormNewsletterRepository) CreateIfAbsent(subscriber *models.NewsletterSubscriber) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(subscriber)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
