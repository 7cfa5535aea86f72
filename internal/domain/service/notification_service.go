package service

import "context"

// NotificationService delivers push notifications to a shopper's device.
type NotificationService interface {
	// SendSingleNotification pushes title and body to one device token. data travels as the
	// message payload for the app to route on.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
