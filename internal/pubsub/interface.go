package pubsub

import "context"

// PubSubClient publishes msgpack encoded events to a single topic.
type PubSubClient interface {
	SendMessage(ctx context.Context, event EventType, data any) error
	Close() error
}
