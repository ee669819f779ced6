package events

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// NatsPublisher publishes each event on subject "posts.<type>", e.g. posts.post.created.
type NatsPublisher struct {
	nc *nats.Conn
}

// ConnectNats dials url with reconnects enabled.
func ConnectNats(url string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("postboard-api"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NatsPublisher{nc: nc}, nil
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

// Subject returns the NATS subject for an event type.
func Subject(t Type) string {
	return "posts." + string(t)
}

// newMsg builds the message and injects the trace context into its headers.
func newMsg(ctx context.Context, event Event) (*nats.Msg, error) {
	data, err := event.encode()
	if err != nil {
		return nil, err
	}
	msg := &nats.Msg{
		Subject: Subject(event.Type),
		Data:    data,
		Header:  nats.Header{},
	}
	msg.Header.Set("Nats-Msg-Id", event.EventID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))
	return msg, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := newMsg(ctx, event)
	if err != nil {
		return err
	}
	return p.nc.PublishMsg(msg)
}

// Close flushes buffered messages and closes the connection.
func (p *NatsPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}
