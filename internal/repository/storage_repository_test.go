package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorageRepository(t *testing.T, repo StorageRepository) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := repo.Load(ctx, "s-1", "cart"); err != nil || ok {
		t.Fatalf("missing key should load as absent, ok=%v err=%v", ok, err)
	}
	if err := repo.Save(ctx, "s-1", "cart", []byte(`[{"product_id":"1"}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Save(ctx, "s-1", "cart", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, ok, err := repo.Load(ctx, "s-1", "cart")
	if err != nil || !ok || string(value) != "[]" {
		t.Fatalf("load after overwrite want [] got %q ok=%v err=%v", value, ok, err)
	}
	if _, ok, _ := repo.Load(ctx, "s-2", "cart"); ok {
		t.Fatalf("sessions must not share keys")
	}
	if err := repo.Delete(ctx, "s-1", "cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "s-1", "cart"); err != nil {
		t.Fatalf("deleting an absent key should succeed: %v", err)
	}
	if _, ok, _ := repo.Load(ctx, "s-1", "cart"); ok {
		t.Fatalf("key should be gone after delete")
	}
	if err := repo.Save(ctx, "", "cart", nil); !errors.Is(err, ErrStorageKeyInvalid) {
		t.Fatalf("empty session want ErrStorageKeyInvalid got %v", err)
	}
}

func TestGormStorageRepository(t *testing.T) {
	exerciseStorageRepository(t, NewStorageRepository(openRepositoryTestDB(t)))
}

func TestMemoryStorageRepository(t *testing.T) {
	exerciseStorageRepository(t, NewMemoryStorageRepository())
}

func TestRedisStorageRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewRedisStorageRepository(client, "bg", time.Hour)
	exerciseStorageRepository(t, repo)

	require.NoError(t, repo.Save(context.Background(), "s-9", "wishlist", []byte(`[]`)))
	assert.True(t, mr.Exists("bg:storage:s-9:wishlist"))
	assert.Equal(t, time.Hour, mr.TTL("bg:storage:s-9:wishlist"))
}
