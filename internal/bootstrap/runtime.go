// Package bootstrap opens the process-wide dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"postboard/internal/cache"
	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/events"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Runtime is everything the server needs besides its configuration.
type Runtime struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher events.Publisher
}

// InitRuntime connects to the database and applies the schema, then connects
// Redis (nil when unavailable) and the configured event publisher.
func InitRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	rdb := cache.InitRedis(cfg.RedisURL)

	publisher, err := events.NewPublisher(cfg.EventsBackend, rdb, cfg.NATSURL)
	if err != nil {
		_ = database.Close(db)
		_ = cache.Close()
		return nil, fmt.Errorf("events: %w", err)
	}

	return &Runtime{DB: db, Redis: rdb, Publisher: publisher}, nil
}
