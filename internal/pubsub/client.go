package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
)

// New creates a client publishing to topicID in projectID.
func New(ctx context.Context, projectID, topicID string, opts ...option.ClientOption) (PubSubClient, error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return &client{
		client: pubSubC,
		topic:  pubSubC.Topic(topicID),
	}, nil
}

// NewNop returns a client that drops every message. It is used when no topic is configured.
func NewNop() PubSubClient {
	return nopClient{}
}

func (c *client) SendMessage(ctx context.Context, event EventType, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data: msgpackData,
		Attributes: map[string]string{
			AttrEvent:       string(event),
			AttrContentType: contentTypeMsgpack,
		},
	}
	result := c.topic.Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", c.topic.ID(), "event", event)
		return err
	}
	log.Info("SendMessage", "serverID", serverID, "event", event)
	return nil
}

func (c *client) Close() error {
	c.topic.Stop()
	return c.client.Close()
}

func (nopClient) SendMessage(ctx context.Context, event EventType, data any) error {
	log.Debug("Pub/Sub not configured, dropping message", "event", event)
	return nil
}

func (nopClient) Close() error {
	return nil
}
