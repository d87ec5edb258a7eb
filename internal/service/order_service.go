package service

import (
	"context"

	"github.com/example/gostorefront/internal/datamodels/order"
)

// OrderService 订单查询，管理端使用；订单的创建只发生在结算事务里
type OrderService struct {
	repo order.Repository
}

// NewOrderService 创建订单服务
func NewOrderService(repo order.Repository) *OrderService {
	return &OrderService{repo: repo}
}

// ListRecent 查询最新的订单记录
func (s *OrderService) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	return s.repo.ListRecent(ctx, limit)
}

// ListByUser 查询用户的历史订单
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetWithItems 订单与订单行
func (s *OrderService) GetWithItems(ctx context.Context, id int64) (*order.Order, []*order.OrderItem, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, items, nil
}
