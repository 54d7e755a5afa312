package cache

import (
	"context"
	"net/url"
	"time"
)

const catalogKeyPrefix = "catalog:"

// CatalogKey 生成商品目录缓存键，参数按键名排序保证稳定
func CatalogKey(kind string, params url.Values) string {
	if len(params) == 0 {
		return catalogKeyPrefix + kind
	}
	return catalogKeyPrefix + kind + ":" + params.Encode()
}

// GetCatalog 读取商品目录缓存
func GetCatalog(ctx context.Context, key string, dest interface{}) (bool, error) {
	return GetJSON(ctx, key, dest)
}

// SetCatalog 写入商品目录缓存
func SetCatalog(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, key, value, ttl)
}

// InvalidateCatalog 清空商品目录缓存（导入商品后调用）
func InvalidateCatalog(ctx context.Context) error {
	_, err := DelByPrefix(ctx, catalogKeyPrefix)
	return err
}
