package service

import (
	"context"
	"encoding/json"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/gostorefront/internal/datamodels/cart"
	"github.com/example/gostorefront/internal/datamodels/order"
	"github.com/example/gostorefront/internal/datamodels/product"
)

// ErrCartEmpty 空购物车不能结算；并发重复结算时后到的一方也会收到它
var ErrCartEmpty = errors.New("cart is empty")

const orderEventsQueue = "order_events"

// OrderPlacedMessage 结算成功后写入 MQ 的事件
type OrderPlacedMessage struct {
	OrderID     int64 `json:"order_id"`
	UserID      int64 `json:"user_id"`
	TotalAmount int64 `json:"total_amount"`
}

// CheckoutService 把用户的持久化购物车一次性转成订单。
// 订单、订单行、购物车清空在同一个事务里提交
type CheckoutService struct {
	db     *gorm.DB
	mqConn *amqp.Connection
}

func NewCheckoutService(db *gorm.DB, mqConn *amqp.Connection) *CheckoutService {
	return &CheckoutService{db: db, mqConn: mqConn}
}

// Checkout 结算流程：
//  1. 读出用户全部购物车行，空车直接失败，什么都不写
//  2. 以当前商品价为快照价，合计出订单金额
//  3. 创建订单与订单行，删除消费掉的购物车行
//  4. 删除行数必须与读出的行数一致，否则说明购物车已被并发结算
//     掏空，整个事务回滚
func (s *CheckoutService) Checkout(ctx context.Context, userID int64) (*order.Order, error) {
	GetMonitor().RecordCheckoutRequest()

	var created *order.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []cart.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		// 以此刻的商品价为准，合计订单金额
		prices := make(map[int64]int64, len(items))
		var total int64
		for _, it := range items {
			var p product.Product
			if err := tx.First(&p, it.ProductID).Error; err != nil {
				return err
			}
			prices[it.ProductID] = p.Price
			total += p.Price * it.Quantity
		}

		o := &order.Order{
			UserID:      userID,
			TotalAmount: total,
		}
		if err := tx.Create(o).Error; err != nil {
			return err
		}

		for _, it := range items {
			oi := &order.OrderItem{
				OrderID:   o.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     prices[it.ProductID], // 快照价，此后不再回读商品表
			}
			if err := tx.Create(oi).Error; err != nil {
				return err
			}
		}

		res := tx.Where("user_id = ?", userID).Delete(&cart.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		// 并发重复结算守卫：输掉行锁竞争的一方删不到行，回滚
		if res.RowsAffected != int64(len(items)) {
			return ErrCartEmpty
		}

		created = o
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCartEmpty) {
			GetMonitor().RecordDBError()
		}
		return nil, err
	}

	GetMonitor().RecordCheckoutSuccess()
	s.publishOrderPlaced(ctx, created)
	return created, nil
}

// publishOrderPlaced 事务提交后尽力而为地发事件，失败只记日志，
// 不影响已落库的订单
func (s *CheckoutService) publishOrderPlaced(ctx context.Context, o *order.Order) {
	if s.mqConn == nil {
		return
	}
	ch, err := s.mqConn.Channel()
	if err != nil {
		GetMonitor().RecordMQError()
		zap.L().Warn("open mq channel failed", zap.Error(err))
		return
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(orderEventsQueue, true, false, false, false, nil); err != nil {
		GetMonitor().RecordMQError()
		zap.L().Warn("declare order_events failed", zap.Error(err))
		return
	}

	body, err := json.Marshal(&OrderPlacedMessage{
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
	})
	if err != nil {
		return
	}

	err = ch.PublishWithContext(
		ctx,
		"",
		orderEventsQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		GetMonitor().RecordMQError()
		zap.L().Warn("publish order event failed", zap.Int64("order_id", o.ID), zap.Error(err))
	}
}
