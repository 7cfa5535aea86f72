package pubsub

import (
	"encoding/json"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// message is the transport-neutral form of an event on the wire.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serializes the event and derives the attributes subscriptions filter on.
// Updates of one number transfer share an ordering key so they arrive in publish order.
func encodeEvent(event *service.Event) (message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return message{}, errors.Wrapf(err, "encode event %s", event.ID)
	}

	msg := message{
		data: data,
		attributes: map[string]string{
			"event_id":   event.ID,
			"event_type": string(event.Type),
		},
	}
	if event.RequestID != "" {
		msg.attributes["request_id"] = event.RequestID
	}
	if event.OrderPlaced != nil {
		msg.attributes["order_id"] = event.OrderPlaced.OrderID
	}
	if event.PortingUpdate != nil {
		msg.attributes["porting_id"] = event.PortingUpdate.PortingID
		msg.orderingKey = event.PortingUpdate.PortingID
	}

	return msg, nil
}
