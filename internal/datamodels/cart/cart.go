package cart

import (
	"context"
	"time"
)

// CartItem 登录用户的购物车行，(user, product) 唯一，重复加购走数量合并
type CartItem struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID int64 `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Line 购物车行的统一视图。游客购物车没有独立行 ID，ID 即 ProductID
type Line struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// Store 购物车存储的统一契约，登录（MySQL）与游客（会话/Redis）各有一套实现。
// Remove 的标识沿用两种表示各自的习惯：登录购物车传行 ID，游客购物车传商品 ID；
// 行不存在时 Remove 是空操作，不报错。
type Store interface {
	// Add 加购：已有该商品的行则数量累加，否则新建一行，绝不产生重复行
	Add(ctx context.Context, productID, quantity int64) error
	Remove(ctx context.Context, lineID int64) error
	Lines(ctx context.Context) ([]Line, error)
}

// Repository 登录用户购物车的仓储接口
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*CartItem, error)
	// Upsert 按 (user, product) 合并数量
	Upsert(ctx context.Context, userID, productID, quantity int64) error
	// Delete 按行 ID 删除，行不属于该用户或不存在时不报错
	Delete(ctx context.Context, userID, itemID int64) error
}
