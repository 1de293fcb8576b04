package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewPayload struct {
	State string `json:"state"`
	Taps  int    `json:"taps"`
}

func newMiniredisClient(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestViewStateStore_SaveLoadDelete(t *testing.T) {
	newMiniredisClient(t)
	store := NewViewStateStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", viewPayload{State: "withdraw", Taps: 3}))

	var got viewPayload
	require.NoError(t, store.Load(ctx, "user-1", &got))
	assert.Equal(t, "withdraw", got.State)
	assert.Equal(t, 3, got.Taps)

	require.NoError(t, store.Delete(ctx, "user-1"))
	err := store.Load(ctx, "user-1", &got)
	assert.ErrorIs(t, err, ErrViewStateNotFound)
}

func TestViewStateStore_LoadMissing(t *testing.T) {
	newMiniredisClient(t)
	store := NewViewStateStore(time.Minute)

	var got viewPayload
	err := store.Load(context.Background(), "nobody", &got)
	assert.ErrorIs(t, err, ErrViewStateNotFound)
}

func TestViewStateStore_TTLExpires(t *testing.T) {
	mr := newMiniredisClient(t)
	store := NewViewStateStore(time.Second)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-2", viewPayload{State: "dashboard"}))
	mr.FastForward(2 * time.Second)

	var got viewPayload
	err := store.Load(ctx, "user-2", &got)
	assert.ErrorIs(t, err, ErrViewStateNotFound)
}
