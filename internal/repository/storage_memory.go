package repository

import (
	"context"
	"sync"
)

// MemoryStorageRepository 进程内实现，仅用于测试与单实例调试
type MemoryStorageRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string][]byte
}

// NewMemoryStorageRepository 创建内存存储仓库
func NewMemoryStorageRepository() *MemoryStorageRepository {
	return &MemoryStorageRepository{entries: make(map[string]map[string][]byte)}
}

// Load 读取会话键值
func (r *MemoryStorageRepository) Load(_ context.Context, sessionID, key string) ([]byte, bool, error) {
	if !validStorageKey(sessionID, key) {
		return nil, false, ErrStorageKeyInvalid
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[sessionID][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Save 写入会话键值
func (r *MemoryStorageRepository) Save(_ context.Context, sessionID, key string, value []byte) error {
	if !validStorageKey(sessionID, key) {
		return ErrStorageKeyInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	bucket, ok := r.entries[sessionID]
	if !ok {
		bucket = make(map[string][]byte)
		r.entries[sessionID] = bucket
	}
	bucket[key] = append([]byte(nil), value...)
	return nil
}

// Delete 删除会话键值
func (r *MemoryStorageRepository) Delete(_ context.Context, sessionID, key string) error {
	if !validStorageKey(sessionID, key) {
		return ErrStorageKeyInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if bucket, ok := r.entries[sessionID]; ok {
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(r.entries, sessionID)
		}
	}
	return nil
}
