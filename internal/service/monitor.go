package service

import (
	"sync"
	"time"
)

// Monitor 监控服务，统计错误和业务量
type Monitor struct {
	mu sync.RWMutex

	// 错误统计
	RedisErrors int64
	MQErrors    int64
	DBErrors    int64

	// 业务统计
	CheckoutRequests int64
	CheckoutSuccess  int64
	CartAdds         int64
	CartRemoves      int64
	WorkerProcessed  int64
	WorkerFailed     int64

	// 时间统计
	LastMQError      time.Time
	LastDBError      time.Time
	LastCheckoutTime time.Time
	LastWorkerTime   time.Time
}

var globalMonitor = &Monitor{}

// GetMonitor 获取全局监控实例
func GetMonitor() *Monitor {
	return globalMonitor
}

// RecordRedisError 记录 Redis 错误
func (m *Monitor) RecordRedisError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RedisErrors++
}

// RecordMQError 记录 MQ 错误
func (m *Monitor) RecordMQError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MQErrors++
	m.LastMQError = time.Now()
}

// RecordDBError 记录数据库错误
func (m *Monitor) RecordDBError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DBErrors++
	m.LastDBError = time.Now()
}

// RecordCheckoutRequest 记录结算请求
func (m *Monitor) RecordCheckoutRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckoutRequests++
	m.LastCheckoutTime = time.Now()
}

// RecordCheckoutSuccess 记录结算成功
func (m *Monitor) RecordCheckoutSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckoutSuccess++
}

// RecordCartAdd 记录加购
func (m *Monitor) RecordCartAdd() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CartAdds++
}

// RecordCartRemove 记录移除购物车行
func (m *Monitor) RecordCartRemove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CartRemoves++
}

// RecordWorkerProcessed 记录 Worker 处理成功
func (m *Monitor) RecordWorkerProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WorkerProcessed++
	m.LastWorkerTime = time.Now()
}

// RecordWorkerFailed 记录 Worker 处理失败
func (m *Monitor) RecordWorkerFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WorkerFailed++
}

// GetStats 获取统计信息，供管理端展示
func (m *Monitor) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	successRate := float64(0)
	if m.CheckoutRequests > 0 {
		successRate = float64(m.CheckoutSuccess) / float64(m.CheckoutRequests) * 100
	}

	return map[string]interface{}{
		"errors": map[string]interface{}{
			"redis": m.RedisErrors,
			"mq":    m.MQErrors,
			"db":    m.DBErrors,
		},
		"traffic": map[string]interface{}{
			"checkout_requests":     m.CheckoutRequests,
			"checkout_success":      m.CheckoutSuccess,
			"checkout_success_rate": successRate,
			"cart_adds":             m.CartAdds,
			"cart_removes":          m.CartRemoves,
			"worker_processed":      m.WorkerProcessed,
			"worker_failed":         m.WorkerFailed,
		},
		"last_events": map[string]interface{}{
			"mq_error":      m.LastMQError,
			"db_error":      m.LastDBError,
			"last_checkout": m.LastCheckoutTime,
			"last_worker":   m.LastWorkerTime,
		},
	}
}

// Reset 重置统计（测试用）
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RedisErrors = 0
	m.MQErrors = 0
	m.DBErrors = 0
	m.CheckoutRequests = 0
	m.CheckoutSuccess = 0
	m.CartAdds = 0
	m.CartRemoves = 0
	m.WorkerProcessed = 0
	m.WorkerFailed = 0
}
