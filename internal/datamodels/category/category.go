package category

import (
	"context"
	"time"
)

// Category 商品分类，静态参照数据
type Category struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:64;not null"`
	Description string `gorm:"size:255"`
	BannerURL   string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository 分类仓储接口
type Repository interface {
	ListAll(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, c *Category) error
}
