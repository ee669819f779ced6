// Package events publishes post lifecycle events to Redis pub/sub or NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"postboard/internal/middleware"
	"postboard/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Type names a post lifecycle transition.
type Type string

const (
	PostCreated Type = "post.created"
	PostUpdated Type = "post.updated"
	PostDeleted Type = "post.deleted"
)

// Event is the payload published after a post change commits.
type Event struct {
	EventID    string    `json:"eventId"`
	Type       Type      `json:"type"`
	PostID     uint      `json:"postId"`
	UserID     uint      `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEvent stamps a fresh id and the current UTC time.
func NewEvent(typ Type, postID, userID uint) Event {
	return Event{
		EventID:    uuid.NewString(),
		Type:       typ,
		PostID:     postID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) encode() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", e.Type, err)
	}
	return data, nil
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// Emit publishes event and logs failures; delivery is best effort and never
// reported to the caller.
func Emit(ctx context.Context, p Publisher, backend string, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		observability.EventsPublished.WithLabelValues(backend, "error").Inc()
		middleware.Logger.WarnContext(ctx, "failed to publish post event",
			slog.String("type", string(event.Type)),
			slog.Uint64("post_id", uint64(event.PostID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.EventsPublished.WithLabelValues(backend, "ok").Inc()
}

// Backends accepted by EVENTS_BACKEND.
const (
	BackendNone  = "none"
	BackendRedis = "redis"
	BackendNats  = "nats"
)

// NewPublisher selects the publisher for backend. The redis backend reuses
// rdb and degrades to NopPublisher when Redis is not available.
func NewPublisher(backend string, rdb *redis.Client, natsURL string) (Publisher, error) {
	switch backend {
	case BackendRedis:
		if rdb == nil {
			middleware.Logger.Warn("events backend is redis but Redis is unavailable, events disabled")
			return NopPublisher{}, nil
		}
		return NewRedisPublisher(rdb), nil
	case BackendNats:
		return ConnectNats(natsURL)
	case BackendNone, "":
		return NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unsupported events backend %q", backend)
	}
}
