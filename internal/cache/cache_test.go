package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = Close() })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *item) func() error {
		return func() error {
			calls++
			*dest = item{ID: 1, Name: "first"}
			return nil
		}
	}

	var first item
	require.NoError(t, Aside(ctx, PostKey(1), &first, PostTTL, fetch(&first)))
	assert.Equal(t, "first", first.Name)
	assert.True(t, mr.Exists("post:1"))
	assert.Equal(t, PostTTL, mr.TTL("post:1"))

	var second item
	require.NoError(t, Aside(ctx, PostKey(1), &second, PostTTL, fetch(&second)))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestAside_FetchErrorIsNotCached(t *testing.T) {
	mr := useMiniredis(t)

	var dest item
	err := Aside(context.Background(), UserKey(5), &dest, UserTTL, func() error {
		return errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
	assert.False(t, mr.Exists("user:5"))
}

func TestAside_CorruptEntryFallsThrough(t *testing.T) {
	mr := useMiniredis(t)
	require.NoError(t, mr.Set("post:9", "{not json"))

	var dest item
	require.NoError(t, Aside(context.Background(), PostKey(9), &dest, time.Minute, func() error {
		dest = item{ID: 9, Name: "fresh"}
		return nil
	}))
	assert.Equal(t, "fresh", dest.Name)
}

func TestInvalidate(t *testing.T) {
	mr := useMiniredis(t)
	require.NoError(t, mr.Set("post:1", "x"))
	require.NoError(t, mr.Set("user:2", "y"))

	Invalidate(context.Background(), PostKey(1), UserKey(2))
	assert.False(t, mr.Exists("post:1"))
	assert.False(t, mr.Exists("user:2"))
}

func TestDisabledCacheIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "post:1", &item{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "post:1", item{}, time.Minute))
	Invalidate(ctx, "post:1")

	calls := 0
	require.NoError(t, Aside(ctx, "post:1", &item{}, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
}

func TestInitRedis_EmptyAddrDisables(t *testing.T) {
	assert.Nil(t, InitRedis(""))
	assert.Nil(t, GetClient())
}

func TestInitRedis_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	c := InitRedis("redis://" + mr.Addr())
	t.Cleanup(func() { _ = Close() })
	require.NotNil(t, c)
	assert.Same(t, c, GetClient())
}
