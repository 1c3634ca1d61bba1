package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

type nopClient struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

// EventMetricsSnapshot carries the gauge values of one refresh cycle.
const EventMetricsSnapshot EventType = "metrics-snapshot"

// Message attribute keys.
const (
	AttrEvent       = "event"
	AttrContentType = "content-type"

	contentTypeMsgpack = "application/msgpack"
)
