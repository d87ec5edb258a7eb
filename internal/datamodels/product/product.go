package product

import (
	"context"
	"time"
)

// 排序方式
const (
	SortName      = "name"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Product 商品模型
type Product struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:128;not null"`
	Description string    `gorm:"size:512"`
	Price       int64     `gorm:"not null"` // 分
	ImageURL    string    `gorm:"size:255"`
	CategoryID  int64     `gorm:"index;not null"`
	Stock       int64     `gorm:"not null"` // 仅展示用，下单不扣减
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter 商品列表查询条件
type Filter struct {
	CategoryID int64  // 0 表示不限分类
	Search     string // 名称模糊匹配，大小写不敏感
	Sort       string // name / price_asc / price_desc
}

// Repository 商品仓储接口
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, f Filter) ([]*Product, error)
	ListFeatured(ctx context.Context, limit int) ([]*Product, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}
