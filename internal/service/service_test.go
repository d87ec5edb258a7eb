package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/gostorefront/internal/datamodels/cart"
	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/order"
	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/datamodels/user"
)

// newTestDB 每个测试一个独立的内存库。
// 用具名的共享内存库，保证连接池里的每个连接看到同一份数据
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&product.Product{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price int64, categoryID int64) *product.Product {
	t.Helper()
	p := &product.Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		Stock:      100,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createUser(t *testing.T, db *gorm.DB, email string) *user.User {
	t.Helper()
	u := &user.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func cartItemCount(t *testing.T, db *gorm.DB, userID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&cart.CartItem{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

var testCtx = context.Background()
