package cache

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	UseClient(client, "bgtest")
	t.Cleanup(func() {
		UseClient(nil, "")
		_ = client.Close()
	})
	return mr
}

func TestJSONRoundTripAndDisabled(t *testing.T) {
	UseClient(nil, "")
	var dest map[string]int
	hit, err := GetJSON(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit, "disabled cache should always miss")
	require.NoError(t, SetJSON(context.Background(), "k", map[string]int{"a": 1}, time.Minute))

	mr := setupMiniRedis(t)
	ctx := context.Background()
	require.NoError(t, SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.True(t, mr.Exists("bgtest:k"))

	hit, err = GetJSON(ctx, "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, dest["a"])
}

func TestTokenRevocation(t *testing.T) {
	mr := setupMiniRedis(t)
	ctx := context.Background()

	revoked, err := IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, RevokeToken(ctx, "jti-2", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("bgtest:auth:revoked:jti-2"), "expired tokens need no revocation entry")

	mr.FastForward(2 * time.Hour)
	revoked, err = IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation entry should expire with the token")
}

func TestInvalidateCatalog(t *testing.T) {
	mr := setupMiniRedis(t)
	ctx := context.Background()

	key := CatalogKey("list", url.Values{"sort": {"newest"}, "category": {"wall-clocks"}})
	assert.Equal(t, "catalog:list:category=wall-clocks&sort=newest", key)
	require.NoError(t, SetCatalog(ctx, key, []string{"2"}, time.Minute))
	require.NoError(t, SetCatalog(ctx, CatalogKey("featured", nil), []string{"1"}, time.Minute))
	require.NoError(t, SetJSON(ctx, "auth:revoked:x", 1, time.Minute))

	require.NoError(t, InvalidateCatalog(ctx))
	assert.False(t, mr.Exists("bgtest:"+key))
	assert.False(t, mr.Exists("bgtest:catalog:featured"))
	assert.True(t, mr.Exists("bgtest:auth:revoked:x"))
}
