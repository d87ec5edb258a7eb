package seed

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/product"
)

// Fixture 初始目录数据
type Fixture struct {
	Categories []CategoryFixture `mapstructure:"categories"`
	Products   []ProductFixture  `mapstructure:"products"`
}

type CategoryFixture struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	BannerURL   string `mapstructure:"banner_url"`
}

type ProductFixture struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Price       int64  `mapstructure:"price"` // 分
	ImageURL    string `mapstructure:"image_url"`
	CategoryID  int64  `mapstructure:"category_id"`
	Stock       int64  `mapstructure:"stock"`
}

// defaultFixture 内置样例数据
func defaultFixture() *Fixture {
	return &Fixture{
		Categories: []CategoryFixture{
			{Name: "Electronics", Description: "Latest gadgets and electronics", BannerURL: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=500"},
			{Name: "Books", Description: "Books across all genres", BannerURL: "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=500"},
			{Name: "Fashion", Description: "Trendy clothing and accessories", BannerURL: "https://images.unsplash.com/photo-1445205170230-053b83016050?w=500"},
		},
		Products: []ProductFixture{
			{Name: "Wireless Headphones", Price: 9999, CategoryID: 1, ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", Description: "High-quality wireless headphones with noise cancellation", Stock: 100},
			{Name: "Smart Watch", Price: 19999, CategoryID: 1, ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500", Description: "Feature-rich smartwatch with fitness tracking", Stock: 100},
			{Name: "Best Seller Book", Price: 1999, CategoryID: 2, ImageURL: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=500", Description: "International bestseller, must read", Stock: 100},
			{Name: "Designer T-Shirt", Price: 2999, CategoryID: 3, ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500", Description: "Comfortable cotton t-shirt with modern design", Stock: 100},
			{Name: "Laptop Pro", Price: 129999, CategoryID: 1, ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500", Description: "Powerful laptop for professionals", Stock: 100},
			{Name: "Classic Novel", Price: 1599, CategoryID: 2, ImageURL: "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=500", Description: "Timeless classic literature", Stock: 100},
		},
	}
}

// loadFixture 读取 YAML 数据文件，失败或未配置时退回内置数据
func loadFixture(cfg *config.SeedConfig) *Fixture {
	if cfg == nil || cfg.FixtureFile == "" {
		return defaultFixture()
	}
	v := viper.New()
	v.SetConfigFile(cfg.FixtureFile)
	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("read fixture file failed, using built-in data",
			zap.String("file", cfg.FixtureFile), zap.Error(err))
		return defaultFixture()
	}
	var f Fixture
	if err := v.Unmarshal(&f); err != nil || len(f.Products) == 0 {
		zap.L().Warn("bad fixture file, using built-in data", zap.Error(err))
		return defaultFixture()
	}
	return &f
}

// Ensure 启动时的幂等初始化：商品表非空就什么都不做。
// 明确放在启动阶段执行，避免第一个目录请求意外走上慢路径
func Ensure(ctx context.Context, cfg *config.SeedConfig, categoryRepo category.Repository, productRepo product.Repository) error {
	n, err := productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	f := loadFixture(cfg)
	for _, c := range f.Categories {
		if err := categoryRepo.Create(ctx, &category.Category{
			Name:        c.Name,
			Description: c.Description,
			BannerURL:   c.BannerURL,
		}); err != nil {
			return err
		}
	}
	for _, p := range f.Products {
		if err := productRepo.Create(ctx, &product.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			CategoryID:  p.CategoryID,
			Stock:       p.Stock,
		}); err != nil {
			return err
		}
	}
	zap.L().Info("catalog seeded",
		zap.Int("categories", len(f.Categories)),
		zap.Int("products", len(f.Products)))
	return nil
}
