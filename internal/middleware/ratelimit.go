package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen lets the request through when Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed answers 503 when Redis is unavailable.
	FailClosed
)

var errNoRedis = errors.New("redis client is nil")

// rateLimitBypassed reports whether APP_ENV disables throttling.
func rateLimitBypassed() bool {
	switch os.Getenv("APP_ENV") {
	case "", "test", "development", "stress":
		return true
	}
	return false
}

// CheckRateLimit counts one hit for id against resource and reports whether
// the caller is still within limit for the current window.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, int64, error) {
	if rateLimitBypassed() {
		return true, 0, nil
	}
	if rdb == nil {
		return false, 0, errNoRedis
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, count, err
		}
	}
	return count <= int64(limit), count, nil
}

// RateLimit limits requests per client IP to limit per window, failing open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, resource string) fiber.Handler {
	return RateLimitWithPolicy(rdb, limit, window, FailOpen, resource)
}

// RateLimitWithPolicy is RateLimit with an explicit failure policy.
func RateLimitWithPolicy(rdb *redis.Client, limit int, window time.Duration, policy FailPolicy, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if resource == "" {
			resource = c.Path()
		}

		allowed, count, err := CheckRateLimit(c.UserContext(), rdb, resource, "ip:"+c.IP(), limit, window)
		if err != nil {
			if policy == FailClosed {
				Logger.WarnContext(c.UserContext(), "rate limit store unavailable, rejecting request",
					slog.String("resource", resource),
					slog.String("error", err.Error()),
				)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "rate limit unavailable",
				})
			}
			return c.Next()
		}

		if count > 0 {
			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		}

		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
