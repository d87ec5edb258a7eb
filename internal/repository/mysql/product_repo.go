package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/example/gostorefront/internal/datamodels/product"
)

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	query := r.db.WithContext(ctx).Model(&product.Product{})
	if f.CategoryID > 0 {
		query = query.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		// 名称模糊匹配，大小写不敏感
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	switch f.Sort {
	case product.SortPriceAsc:
		query = query.Order("price ASC").Order("name ASC")
	case product.SortPriceDesc:
		query = query.Order("price DESC").Order("name ASC")
	default:
		query = query.Order("name ASC")
	}

	var list []*product.Product
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) ListFeatured(ctx context.Context, limit int) ([]*product.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	var list []*product.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&product.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *productRepo) Create(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&product.Product{}, id).Error
}
