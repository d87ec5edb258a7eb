package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/gostorefront/internal/datamodels/cart"
)

type cartRepo struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储（登录用户）
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepo{db: db}
}

func (r *cartRepo) ListByUser(ctx context.Context, userID int64) ([]*cart.CartItem, error) {
	var list []*cart.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Upsert (user, product) 冲突时数量累加，由唯一索引保证不会出现重复行
func (r *cartRepo) Upsert(ctx context.Context, userID, productID, quantity int64) error {
	item := cart.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).
		Create(&item).Error
}

func (r *cartRepo) Delete(ctx context.Context, userID, itemID int64) error {
	// 行不存在时 RowsAffected 为 0，按约定不视为错误
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&cart.CartItem{}).Error
}
