package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

func revokedTokenKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

// RevokeToken 记录已登出的令牌 ID，保留到令牌自然过期
func RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	tokenID = strings.TrimSpace(tokenID)
	if !Enabled() || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return redisClient.Set(ctx, buildKey(revokedTokenKey(tokenID)), expiresAt.Unix(), ttl).Err()
}

// IsTokenRevoked 判断令牌是否已登出，缓存未启用时始终返回 false
func IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	tokenID = strings.TrimSpace(tokenID)
	if !Enabled() || tokenID == "" {
		return false, nil
	}
	err := redisClient.Get(ctx, buildKey(revokedTokenKey(tokenID))).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
