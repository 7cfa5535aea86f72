package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishDelayThreshold bounds how long a message waits for its batch.
const publishDelayThreshold = 10 * time.Millisecond

// googlePubSubPublisher publishes events to a Google Cloud Pub/Sub topic with ordering enabled.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create Pub/Sub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger.With(slog.String("topic", topic)),
	}, nil
}

// Publish blocks until the server acknowledged the message.
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.Event) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		if msg.orderingKey != "" {
			// A failed ordered publish pauses its key until resumed.
			p.publisher.ResumePublish(msg.orderingKey)
		}

		return errors.Wrapf(err, "publish event %s", event.ID)
	}

	p.logger.DebugContext(ctx, "Event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
