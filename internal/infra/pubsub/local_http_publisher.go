package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/storefront-fulfillment"
	localMaxAttempts    = 3
	localRetryBaseDelay = 100 * time.Millisecond
)

// localHTTPPublisher posts events to the worker in the Pub/Sub push format so development runs
// without a Pub/Sub emulator. Like a push subscription it redelivers on 5xx answers.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	retryDelay time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// PushMessage is the envelope Pub/Sub push subscriptions deliver.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: localRetryBaseDelay,
		now:        time.Now,
		logger:     logger.With(slog.String("endpoint", endpoint)),
	}
}

// Publish delivers the event, retrying with a doubling delay while the worker asks for redelivery.
func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.Event) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = event.ID
	push.Message.PublishTime = p.now().UTC().Format(time.RFC3339Nano)
	push.Message.OrderingKey = msg.orderingKey

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	delay := p.retryDelay
	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, body, event.RequestID)
		if err == nil && status < http.StatusInternalServerError {
			if status >= http.StatusMultipleChoices {
				return errors.Errorf("worker rejected event %s with status %d", event.ID, status)
			}
			p.logger.DebugContext(ctx, "Event delivered",
				slog.String("event_id", event.ID),
				slog.String("event_type", string(event.Type)),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if err == nil {
			err = errors.Errorf("worker returned status %d for event %s", status, event.ID)
		}
		if attempt == localMaxAttempts {
			return err
		}

		p.logger.WarnContext(ctx, "Redelivering event",
			slog.String("event_id", event.ID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
