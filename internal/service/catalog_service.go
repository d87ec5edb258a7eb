package service

import (
	"context"

	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/product"
)

// CatalogService 商品目录：分类列表、筛选/排序/搜索、详情。
// 对购物流程而言只读
type CatalogService struct {
	categoryRepo category.Repository
	productRepo  product.Repository
}

func NewCatalogService(categoryRepo category.Repository, productRepo product.Repository) *CatalogService {
	return &CatalogService{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*category.Category, error) {
	return s.categoryRepo.ListAll(ctx)
}

// ListProducts 返回全部匹配结果，不分页
func (s *CatalogService) ListProducts(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	return s.productRepo.List(ctx, f)
}

// Featured 首页展示的前几个商品
func (s *CatalogService) Featured(ctx context.Context, limit int) ([]*product.Product, error) {
	return s.productRepo.ListFeatured(ctx, limit)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}
