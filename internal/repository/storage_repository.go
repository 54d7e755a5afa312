package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStorageKeyInvalid 会话或键为空
var ErrStorageKeyInvalid = errors.New("storage session or key is empty")

// StorageRepository 会话键值存储接口（替代浏览器本地存储）
type StorageRepository interface {
	Load(ctx context.Context, sessionID, key string) ([]byte, bool, error)
	Save(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}

// GormStorageRepository GORM 实现
type GormStorageRepository struct {
	db *gorm.DB
}

// NewStorageRepository 创建数据库存储仓库
func NewStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db: db}
}

// Load 读取会话键值，不存在时返回 false
func (r *GormStorageRepository) Load(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	if !validStorageKey(sessionID, key) {
		return nil, false, ErrStorageKeyInvalid
	}
	var entry models.StorageEntry
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND storage_key = ?", sessionID, key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

// Save 覆盖写入会话键值
func (r *GormStorageRepository) Save(ctx context.Context, sessionID, key string, value []byte) error {
	if !validStorageKey(sessionID, key) {
		return ErrStorageKeyInvalid
	}
	now := time.Now()
	entry := models.StorageEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     string(value),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete 删除会话键值，不存在时视为成功
func (r *GormStorageRepository) Delete(ctx context.Context, sessionID, key string) error {
	if !validStorageKey(sessionID, key) {
		return ErrStorageKeyInvalid
	}
	return r.db.WithContext(ctx).
		Where("session_id = ? AND storage_key = ?", sessionID, key).
		Delete(&models.StorageEntry{}).Error
}

func validStorageKey(sessionID, key string) bool {
	return strings.TrimSpace(sessionID) != "" && strings.TrimSpace(key) != ""
}
