package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/gostorefront/internal/datamodels/order"
	"github.com/example/gostorefront/internal/repository/mysql"
)

func TestCheckout_EmptyCart(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "empty@example.com")
	svc := NewCheckoutService(db, nil)

	_, err := svc.Checkout(testCtx, u.ID)
	require.ErrorIs(t, err, ErrCartEmpty)

	var n int64
	require.NoError(t, db.Model(&order.Order{}).Count(&n).Error)
	require.Zero(t, n, "empty-cart checkout must not create an order")
}

func TestCheckout_DrainsCartAndSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "buyer@example.com")
	p1 := createProduct(t, db, "P1", 1000, 1) // $10.00

	cartRepo := mysql.NewCartRepository(db)
	// 同一商品加购两次：2 + 3，应合并成数量 5 的一行
	require.NoError(t, cartRepo.Upsert(testCtx, u.ID, p1.ID, 2))
	require.NoError(t, cartRepo.Upsert(testCtx, u.ID, p1.ID, 3))
	require.EqualValues(t, 1, cartItemCount(t, db, u.ID))

	svc := NewCheckoutService(db, nil)
	o, err := svc.Checkout(testCtx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 5000, o.TotalAmount) // $50.00

	var items []order.OrderItem
	require.NoError(t, db.Where("order_id = ?", o.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, p1.ID, items[0].ProductID)
	require.EqualValues(t, 5, items[0].Quantity)
	require.EqualValues(t, 1000, items[0].Price)

	// 订单行金额合计必须与订单总额一致
	var sum int64
	for _, it := range items {
		sum += it.Price * it.Quantity
	}
	require.Equal(t, o.TotalAmount, sum)

	// 购物车已清空
	require.Zero(t, cartItemCount(t, db, u.ID))
}

func TestCheckout_PriceChangeDoesNotTouchHistory(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "history@example.com")
	p := createProduct(t, db, "Watch", 19999, 1)

	cartRepo := mysql.NewCartRepository(db)
	require.NoError(t, cartRepo.Upsert(testCtx, u.ID, p.ID, 1))

	svc := NewCheckoutService(db, nil)
	o, err := svc.Checkout(testCtx, u.ID)
	require.NoError(t, err)

	// 下单后调价
	require.NoError(t, db.Model(p).Update("price", 29999).Error)

	var reloaded order.Order
	require.NoError(t, db.First(&reloaded, o.ID).Error)
	require.EqualValues(t, 19999, reloaded.TotalAmount)

	var items []order.OrderItem
	require.NoError(t, db.Where("order_id = ?", o.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.EqualValues(t, 19999, items[0].Price, "snapshot price must not follow product price")
}

func TestCheckout_SecondSubmitSeesEmptyCart(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "double@example.com")
	p := createProduct(t, db, "Book", 1999, 2)

	cartRepo := mysql.NewCartRepository(db)
	require.NoError(t, cartRepo.Upsert(testCtx, u.ID, p.ID, 1))

	svc := NewCheckoutService(db, nil)
	_, err := svc.Checkout(testCtx, u.ID)
	require.NoError(t, err)

	// 重复提交：购物车已被掏空，必须失败且不再产生订单
	_, err = svc.Checkout(testCtx, u.ID)
	require.ErrorIs(t, err, ErrCartEmpty)

	var n int64
	require.NoError(t, db.Model(&order.Order{}).Where("user_id = ?", u.ID).Count(&n).Error)
	require.EqualValues(t, 1, n)
}
