package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T, prefix string) (*miniredis.Miniredis, *KV) {
	mr := miniredis.RunT(t)
	kv := NewKV(NewClient(Options{Addr: mr.Addr()}), prefix)
	t.Cleanup(func() { _ = kv.Close() })
	return mr, kv
}

func TestKV_SaveLoad_WithPrefix(t *testing.T) {
	mr, kv := setupTestRedis(t, "petcare:")
	ctx := context.Background()

	require.NoError(t, kv.Ping(ctx))
	require.NoError(t, kv.Save(ctx, "pets", `[{"id":"p1"}]`))

	raw, err := mr.Get("petcare:pets")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, raw)
	assert.Zero(t, mr.TTL("petcare:pets"))

	v, found, err := kv.Load(ctx, "pets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"p1"}]`, v)
}

func TestKV_Load_Miss(t *testing.T) {
	_, kv := setupTestRedis(t, "")

	_, found, err := kv.Load(context.Background(), "food_logs")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKV_Load_ServerDown(t *testing.T) {
	mr, kv := setupTestRedis(t, "")
	mr.Close()

	_, _, err := kv.Load(context.Background(), "pets")
	assert.Error(t, err)
}
