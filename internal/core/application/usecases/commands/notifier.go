package commands

import (
	"context"

	"foodibot/internal/core/domain/services"
)

// Notifier fans a rendered notification out to the delivery channels.
// Implemented by services.NotificationDispatcher; abstracted here so
// handlers can be tested without real providers.
type Notifier interface {
	Dispatch(ctx context.Context, notification services.Notification) services.Outcome
}
