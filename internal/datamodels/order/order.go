package order

import (
	"context"
	"time"
)

// Order 订单模型，结算成功后只增不改
type Order struct {
	ID          int64 `gorm:"primaryKey"`
	UserID      int64 `gorm:"index;not null"`
	TotalAmount int64 `gorm:"not null"` // 分
	CreatedAt   time.Time
}

// OrderItem 订单行，Price 为下单时刻的快照价，之后商品调价不影响历史订单
type OrderItem struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"index;not null"`
	ProductID int64 `gorm:"index;not null"`
	Quantity  int64 `gorm:"not null"`
	Price     int64 `gorm:"not null"` // 分，下单时快照
}

// Repository 订单仓储接口
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*Order, error)
	ListRecent(ctx context.Context, limit int) ([]*Order, error)
	ListItems(ctx context.Context, orderID int64) ([]*OrderItem, error)
}
