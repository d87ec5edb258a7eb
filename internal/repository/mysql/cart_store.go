package mysql

import (
	"context"

	"github.com/example/gostorefront/internal/datamodels/cart"
)

// userCartStore 把某个用户的持久化购物车适配成统一的 cart.Store
type userCartStore struct {
	repo   cart.Repository
	userID int64
}

// NewUserCartStore 绑定到指定用户的购物车存储
func NewUserCartStore(repo cart.Repository, userID int64) cart.Store {
	return &userCartStore{repo: repo, userID: userID}
}

func (s *userCartStore) Add(ctx context.Context, productID, quantity int64) error {
	return s.repo.Upsert(ctx, s.userID, productID, quantity)
}

// Remove 登录购物车按行 ID 删除
func (s *userCartStore) Remove(ctx context.Context, lineID int64) error {
	return s.repo.Delete(ctx, s.userID, lineID)
}

func (s *userCartStore) Lines(ctx context.Context) ([]cart.Line, error) {
	items, err := s.repo.ListByUser(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	lines := make([]cart.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, cart.Line{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}
