package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorageRepository Redis 实现，每次写入刷新过期时间
type RedisStorageRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStorageRepository 创建 Redis 存储仓库
func NewRedisStorageRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisStorageRepository {
	return &RedisStorageRepository{
		client: client,
		prefix: strings.TrimSpace(prefix),
		ttl:    ttl,
	}
}

func (r *RedisStorageRepository) buildKey(sessionID, key string) string {
	raw := fmt.Sprintf("storage:%s:%s", sessionID, key)
	if r.prefix == "" {
		return raw
	}
	return r.prefix + ":" + raw
}

// Load 读取会话键值
func (r *RedisStorageRepository) Load(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	if !validStorageKey(sessionID, key) {
		return nil, false, ErrStorageKeyInvalid
	}
	if r.client == nil {
		return nil, false, errors.New("redis client is nil")
	}
	raw, err := r.client.Get(ctx, r.buildKey(sessionID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// Save 写入会话键值
func (r *RedisStorageRepository) Save(ctx context.Context, sessionID, key string, value []byte) error {
	if !validStorageKey(sessionID, key) {
		return ErrStorageKeyInvalid
	}
	if r.client == nil {
		return errors.New("redis client is nil")
	}
	return r.client.Set(ctx, r.buildKey(sessionID, key), value, r.ttl).Err()
}

// Delete 删除会话键值
func (r *RedisStorageRepository) Delete(ctx context.Context, sessionID, key string) error {
	if !validStorageKey(sessionID, key) {
		return ErrStorageKeyInvalid
	}
	if r.client == nil {
		return errors.New("redis client is nil")
	}
	return r.client.Del(ctx, r.buildKey(sessionID, key)).Err()
}
