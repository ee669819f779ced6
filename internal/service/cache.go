package service

import (
	"context"
	"time"

	"postboard/internal/cache"
	"postboard/internal/featureflags"
)

// readThrough serves dest from the cache when the post_cache flag is on for
// subject, and calls fetch directly otherwise.
func readThrough(ctx context.Context, flags *featureflags.Manager, subject uint, key string, dest any, ttl time.Duration, fetch func() error) error {
	if !flags.Enabled(featureflags.PostCache, subject) {
		return fetch()
	}
	return cache.Aside(ctx, key, dest, ttl, fetch)
}
