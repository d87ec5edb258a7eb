package rediscart

import (
	"context"
	"strings"
	"testing"

	radix "github.com/mediocregopher/radix/v3"
	"github.com/stretchr/testify/require"
)

// stubRedis 内存版 redis，只实现游客购物车用到的命令
func stubRedis() radix.Conn {
	data := map[string]string{}
	return radix.Stub("tcp", "127.0.0.1:6379", func(args []string) interface{} {
		switch strings.ToUpper(args[0]) {
		case "GET":
			if v, ok := data[args[1]]; ok {
				return v
			}
			return nil
		case "SETEX":
			data[args[1]] = args[3]
			return "OK"
		case "DEL":
			if _, ok := data[args[1]]; ok {
				delete(data, args[1])
				return 1
			}
			return 0
		default:
			return nil
		}
	})
}

func TestGuestCart_AddMergesSameProduct(t *testing.T) {
	store := NewGuestCartStore(stubRedis(), "sess-1", 0)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 7, 2))
	require.NoError(t, store.Add(ctx, 7, 3))

	lines, err := store.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1, "same product must merge into one line")
	require.EqualValues(t, 7, lines[0].ProductID)
	require.EqualValues(t, 5, lines[0].Quantity)
}

func TestGuestCart_KeepsInsertionOrder(t *testing.T) {
	store := NewGuestCartStore(stubRedis(), "sess-2", 0)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 3, 1))
	require.NoError(t, store.Add(ctx, 1, 1))
	require.NoError(t, store.Add(ctx, 2, 1))

	lines, err := store.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.EqualValues(t, 3, lines[0].ProductID)
	require.EqualValues(t, 1, lines[1].ProductID)
	require.EqualValues(t, 2, lines[2].ProductID)
}

func TestGuestCart_RemoveByProductID(t *testing.T) {
	store := NewGuestCartStore(stubRedis(), "sess-3", 0)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 7, 2))
	require.NoError(t, store.Add(ctx, 8, 1))

	// 游客购物车的行标识就是商品 ID
	require.NoError(t, store.Remove(ctx, 7))
	lines, err := store.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.EqualValues(t, 8, lines[0].ProductID)

	// 不存在的行：空操作
	require.NoError(t, store.Remove(ctx, 424242))
	lines, err = store.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestGuestCart_RemoveLastLineClearsKey(t *testing.T) {
	store := NewGuestCartStore(stubRedis(), "sess-4", 0)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 7, 1))
	require.NoError(t, store.Remove(ctx, 7))

	lines, err := store.Lines(ctx)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestGuestCart_SessionsAreIsolated(t *testing.T) {
	conn := stubRedis()
	a := NewGuestCartStore(conn, "sess-a", 0)
	b := NewGuestCartStore(conn, "sess-b", 0)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx, 1, 1))

	lines, err := b.Lines(ctx)
	require.NoError(t, err)
	require.Empty(t, lines, "another session must not see the cart")
}
