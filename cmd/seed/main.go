package main

import (
	"context"
	"flag"

	"github.com/bgcollection/storefront/internal/cache"
	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/repository"
)

func main() {
	var skipCategories bool
	flag.BoolVar(&skipCategories, "skip-categories", false, "只写入商品，不覆盖分类")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)

	if !skipCategories {
		for i := range seedCategories {
			category := seedCategories[i]
			if err := categoryRepo.Upsert(&category); err != nil {
				stdLog.Printf("Failed to upsert category %s: %v", category.Slug, err)
				continue
			}
			stdLog.Printf("Upserted category: %s", category.Slug)
		}
	}

	created := 0
	for i := range seedProducts {
		product := seedProducts[i]
		if err := productRepo.Upsert(&product); err != nil {
			stdLog.Printf("Failed to upsert product %s: %v", product.ID, err)
			continue
		}
		created++
	}
	stdLog.Printf("Upserted %d/%d products", created, len(seedProducts))

	// 清理目录缓存，避免旧列表继续命中
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Printf("Redis init failed, catalog cache not invalidated: %v", err)
		return
	}
	if err := cache.InvalidateCatalog(context.Background()); err != nil {
		stdLog.Printf("Failed to invalidate catalog cache: %v", err)
	}
}
