package rediscart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	radix "github.com/mediocregopher/radix/v3"

	"github.com/example/gostorefront/internal/datamodels/cart"
)

const guestCartKey = "cart:sess:%s" // sessionID

// guestCartStore 游客购物车：整车按 JSON 存在 Redis，键随会话走，
// 会话过期购物车跟着消失。登录后不会合并进持久化购物车（沿用原有行为）。
type guestCartStore struct {
	redis     radix.Client
	sessionID string
	ttl       time.Duration
}

// NewGuestCartStore 绑定到某个会话的游客购物车
func NewGuestCartStore(redis radix.Client, sessionID string, ttl time.Duration) cart.Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &guestCartStore{redis: redis, sessionID: sessionID, ttl: ttl}
}

func (s *guestCartStore) key() string {
	return fmt.Sprintf(guestCartKey, s.sessionID)
}

func (s *guestCartStore) load() ([]cart.Line, error) {
	var raw string
	if err := s.redis.Do(radix.Cmd(&raw, "GET", s.key())); err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var lines []cart.Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// 数据损坏按空车处理，下一次写入会覆盖
		return nil, nil
	}
	return lines, nil
}

func (s *guestCartStore) save(lines []cart.Line) error {
	body, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.redis.Do(radix.FlatCmd(nil, "SETEX", s.key(), int64(s.ttl/time.Second), body))
}

// Add 已有该商品则数量累加。游客路径不校验商品是否存在（原有行为），
// 失效商品在展示时被静默跳过
func (s *guestCartStore) Add(ctx context.Context, productID, quantity int64) error {
	lines, err := s.load()
	if err != nil {
		return err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, cart.Line{ID: productID, ProductID: productID, Quantity: quantity})
	}
	return s.save(lines)
}

// Remove 游客购物车以商品 ID 作为行标识
func (s *guestCartStore) Remove(ctx context.Context, lineID int64) error {
	lines, err := s.load()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != lineID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lines) {
		// 行不存在，空操作
		return nil
	}
	if len(kept) == 0 {
		return s.redis.Do(radix.Cmd(nil, "DEL", s.key()))
	}
	return s.save(kept)
}

func (s *guestCartStore) Lines(ctx context.Context) ([]cart.Line, error) {
	return s.load()
}
