package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent(PostCreated, 4, 2)
	_, err := uuid.Parse(e.EventID)
	assert.NoError(t, err)
	assert.Equal(t, PostCreated, e.Type)
	assert.Equal(t, uint(4), e.PostID)
	assert.Equal(t, time.UTC, e.OccurredAt.Location())
}

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := rdb.Subscribe(ctx, RedisChannel)
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	event := NewEvent(PostDeleted, 9, 3)
	require.NoError(t, NewRedisPublisher(rdb).Publish(ctx, event))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, event.EventID, got.EventID)
	assert.Equal(t, PostDeleted, got.Type)
	assert.Equal(t, uint(9), got.PostID)
}

func TestRedisPublisher_NilClient(t *testing.T) {
	assert.Error(t, NewRedisPublisher(nil).Publish(context.Background(), NewEvent(PostCreated, 1, 1)))
}

func TestNewMsg_InjectsTraceContext(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	event := NewEvent(PostUpdated, 5, 1)
	msg, err := newMsg(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, "posts.post.updated", msg.Subject)
	assert.Equal(t, event.EventID, msg.Header.Get("Nats-Msg-Id"))
	assert.Contains(t, msg.Header.Get("Traceparent"), span.SpanContext().TraceID().String())
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("broker down")
}
func (f *failingPublisher) Close() error { return nil }

func TestEmit_SwallowsErrors(t *testing.T) {
	p := &failingPublisher{}
	Emit(context.Background(), p, "test", NewEvent(PostCreated, 1, 1))
	assert.Equal(t, 1, p.calls)

	Emit(context.Background(), nil, "test", NewEvent(PostCreated, 1, 1))
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}

func TestNewPublisher(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	p, err := NewPublisher(BackendNone, nil, "")
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)

	p, err = NewPublisher(BackendRedis, rdb, "")
	require.NoError(t, err)
	assert.IsType(t, &RedisPublisher{}, p)

	p, err = NewPublisher(BackendRedis, nil, "")
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)

	_, err = NewPublisher(BackendNats, nil, "nats://127.0.0.1:1")
	assert.Error(t, err)

	_, err = NewPublisher("kafka", nil, "")
	assert.Error(t, err)
}
