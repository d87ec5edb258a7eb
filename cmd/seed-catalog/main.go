package main

import (
	"context"
	"flag"
	"log"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/cart"
	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/logger"
	"github.com/example/gostorefront/internal/repository/mysql"
	"github.com/example/gostorefront/internal/seed"
)

// 一次性工具：重建目录数据。--force 会先清掉现有分类/商品/购物车行。
func main() {
	force := flag.Bool("force", false, "清空现有目录数据后重新灌入")
	flag.Parse()

	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if err := logger.Init(true); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}

	db := mysql.Init(&cfg.MySQL)
	ctx := context.Background()

	if *force {
		if err := db.Where("1 = 1").Delete(&cart.CartItem{}).Error; err != nil {
			log.Fatalf("clear cart items failed: %v", err)
		}
		if err := db.Where("1 = 1").Delete(&product.Product{}).Error; err != nil {
			log.Fatalf("clear products failed: %v", err)
		}
		if err := db.Where("1 = 1").Delete(&category.Category{}).Error; err != nil {
			log.Fatalf("clear categories failed: %v", err)
		}
		log.Println("existing catalog cleared")
	}

	categoryRepo := mysql.NewCategoryRepository(db)
	productRepo := mysql.NewProductRepository(db)
	if err := seed.Ensure(ctx, &cfg.Seed, categoryRepo, productRepo); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	n, _ := productRepo.Count(ctx)
	log.Printf("done, %d products in catalog", n)
}
