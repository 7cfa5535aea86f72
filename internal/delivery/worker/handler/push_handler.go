package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for order fulfillment
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verifyToken    func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
	logger         *slog.Logger
	fulfillmentUC  usecase.FulfillmentUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	FulfillmentUC usecase.FulfillmentUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verifyToken:    idtoken.Validate,
		logger:         params.Logger,
		fulfillmentUC:  params.FulfillmentUC,
	}
}

// HandlePush acknowledges a push delivery with 200, or answers 503 so Pub/Sub redelivers it.
// Malformed envelopes get 400 and unauthenticated ones 401.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push PubSubMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Worker] Failed to bind push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(&push)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode event",
			slog.String("message_id", push.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := eventRequestID(ctx, &push, event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	logger.Info("[Worker] Processing event", slog.String("message_id", push.Message.MessageID))

	err = h.processEvent(ctx, event)
	switch {
	case err == nil:
		logger.Info("[Worker] Event processed")

		return c.NoContent(http.StatusOK)
	case isRetryableError(err):
		logger.Error("[Worker] Event failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		logger.Error("[Worker] Event failed, dropping", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

func decodeEvent(push *PubSubMessage) (*service.Event, error) {
	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	event := new(service.Event)
	if err := json.Unmarshal(data, event); err != nil {
		return nil, errors.Wrap(err, "message data is not an event")
	}

	return event, nil
}

// eventRequestID prefers the message attribute, then the event body, then the push request's
// own X-Request-Id.
func eventRequestID(ctx context.Context, push *PubSubMessage, event *service.Event) string {
	for _, id := range []string{
		push.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// processEvent dispatches an event to the fulfillment use case
func (h *PushHandler) processEvent(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case service.EventOrderPlaced:
		if event.OrderPlaced == nil {
			return errors.New("order placed event without payload")
		}
		if err := h.fulfillmentUC.ConfirmOrder(ctx, event.OrderPlaced); err != nil {
			return newRetryableError(err)
		}

		return nil

	case service.EventPortingUpdate:
		if event.PortingUpdate == nil {
			return errors.New("porting update event without payload")
		}
		status, err := h.fulfillmentUC.AdvancePorting(ctx, event.PortingUpdate)
		if err != nil {
			// A transfer that no longer exists will not appear on redelivery
			if errors.Is(err, domainerrors.ErrPortingNotFound) {
				return err
			}

			return newRetryableError(err)
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Number transfer advanced",
			slog.String("porting_id", status.ID),
			slog.String("current_step", status.CurrentStep()),
			slog.Bool("done", status.Done()),
		)

		return nil

	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Ignoring unknown event type")

		return nil
	}
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated push requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience defaults to the URL of this endpoint
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.verifyToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
