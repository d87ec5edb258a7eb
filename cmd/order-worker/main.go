package main

import (
	"encoding/json"
	"fmt"
	"log"

	radix "github.com/mediocregopher/radix/v3"
	"go.uber.org/zap"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/infra/mq"
	"github.com/example/gostorefront/internal/infra/redis"
	"github.com/example/gostorefront/internal/logger"
	"github.com/example/gostorefront/internal/service"
)

const (
	orderEventsQueue  = "order_events"
	redisOrderDoneKey = "order:done:%d" // orderID
	doneExpireSeconds = 86400
)

func main() {
	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if err := logger.Init(false); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}

	mqConn := mq.Init(&cfg.RabbitMQ)
	redisClient := redis.Init(&cfg.Redis)

	ch, err := mqConn.Channel()
	if err != nil {
		zap.L().Fatal("failed to open channel", zap.Error(err))
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(orderEventsQueue, true, false, false, false, nil); err != nil {
		zap.L().Fatal("failed to declare queue", zap.Error(err))
	}

	// 手动确认模式（auto-ack=false）
	msgs, err := ch.Consume(orderEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		zap.L().Fatal("failed to consume", zap.Error(err))
	}

	zap.L().Info("order worker started, waiting for messages...")

	for d := range msgs {
		var m service.OrderPlacedMessage
		if err := json.Unmarshal(d.Body, &m); err != nil {
			zap.L().Warn("invalid message", zap.Error(err))
			// 消息格式错误，拒绝并丢弃
			_ = d.Nack(false, false)
			service.GetMonitor().RecordWorkerFailed()
			continue
		}

		// 幂等：已处理过的订单直接确认
		doneKey := fmt.Sprintf(redisOrderDoneKey, m.OrderID)
		var seen int
		if err := redisClient.Do(radix.Cmd(&seen, "EXISTS", doneKey)); err == nil && seen == 1 {
			_ = d.Ack(false)
			continue
		}

		// 订单确认的后续动作（通知等）挂在这里；目前只记录
		zap.L().Info("order confirmed",
			zap.Int64("order_id", m.OrderID),
			zap.Int64("user_id", m.UserID),
			zap.Int64("total_amount", m.TotalAmount))

		if err := redisClient.Do(radix.FlatCmd(nil, "SETEX", doneKey, doneExpireSeconds, 1)); err != nil {
			zap.L().Warn("mark order done failed", zap.Int64("order_id", m.OrderID), zap.Error(err))
			service.GetMonitor().RecordRedisError()
		}

		_ = d.Ack(false)
		service.GetMonitor().RecordWorkerProcessed()
	}
}
