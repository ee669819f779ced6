package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCheckRateLimit_Bypass(t *testing.T) {
	for _, env := range []string{"test", "development", "stress"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("APP_ENV", env)
			allowed, _, err := CheckRateLimit(context.Background(), nil, "posts.create", "ip:1", 1, time.Minute)
			assert.NoError(t, err)
			assert.True(t, allowed)
		})
	}
}

func TestCheckRateLimit_NilRedis(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	allowed, _, err := CheckRateLimit(context.Background(), nil, "posts.create", "ip:1", 1, time.Minute)
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestCheckRateLimit_CountsWithinWindow(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr, rdb := newMiniredisClient(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := CheckRateLimit(ctx, rdb, "posts.create", "ip:1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, count, err := CheckRateLimit(ctx, rdb, "posts.create", "ip:1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, time.Minute, mr.TTL("rl:posts.create:ip:1"))

	mr.FastForward(time.Minute + time.Second)
	allowed, _, err = CheckRateLimit(ctx, rdb, "posts.create", "ip:1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	t.Run("Bypass in test mode", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		app := fiber.New()
		app.Post("/posts/create", RateLimit(nil, 1, time.Minute, "posts.create"), ok)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/create", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("FailOpen with nil redis in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		app := fiber.New()
		app.Post("/posts/create", RateLimit(nil, 1, time.Minute, "posts.create"), ok)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/create", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("FailClosed with nil redis in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		app := fiber.New()
		app.Post("/users/create", RateLimitWithPolicy(nil, 1, time.Minute, FailClosed, "users.create"), ok)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/users/create", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Rejects over the limit", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, rdb := newMiniredisClient(t)
		app := fiber.New()
		app.Post("/posts/create", RateLimit(rdb, 1, time.Minute, "posts.create"), ok)

		first, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/create", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, first.StatusCode)
		assert.Equal(t, "0", first.Header.Get("X-RateLimit-Remaining"))

		second, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/create", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
		assert.Equal(t, "60", second.Header.Get("Retry-After"))
	})
}
