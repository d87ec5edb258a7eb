package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/gostorefront/internal/datamodels/cart"
	"github.com/example/gostorefront/internal/datamodels/product"
)

// ErrQuantityInvalid 加购数量必须 >= 1
var ErrQuantityInvalid = errors.New("quantity must be at least 1")

// CartView 购物车展示行：行信息加上商品详情
type CartView struct {
	Line    cart.Line
	Product *product.Product
}

// Subtotal 行小计（分）
func (v CartView) Subtotal() int64 {
	if v.Product == nil {
		return 0
	}
	return v.Product.Price * v.Line.Quantity
}

// CartService 统一的购物车操作，游客与登录用户通过各自的 cart.Store 接入。
// 已知限制：游客购物车在登录后不会合并进持久化购物车，
// 会话里的旧车随会话过期一起消失
type CartService struct {
	productRepo product.Repository
}

func NewCartService(productRepo product.Repository) *CartService {
	return &CartService{productRepo: productRepo}
}

// Add 加购，合并语义由 Store 保证：同一商品只会有一行
func (s *CartService) Add(ctx context.Context, store cart.Store, productID, quantity int64) error {
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	return store.Add(ctx, productID, quantity)
}

// Remove 删除一行；行不存在是空操作
func (s *CartService) Remove(ctx context.Context, store cart.Store, lineID int64) error {
	return store.Remove(ctx, lineID)
}

// View 逐行关联商品信息。查不到的商品（已删除）静默跳过，
// 宁可少显示也不报错
func (s *CartService) View(ctx context.Context, store cart.Store) ([]CartView, error) {
	lines, err := store.Lines(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]CartView, 0, len(lines))
	for _, l := range lines {
		p, err := s.productRepo.GetByID(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, CartView{Line: l, Product: p})
	}
	return views, nil
}

// Total 购物车合计（分），仅用于展示；结算金额由结算事务重新计算
func (s *CartService) Total(views []CartView) int64 {
	var total int64
	for _, v := range views {
		total += v.Subtotal()
	}
	return total
}
