package whatsapp

import (
	"context"
	"log/slog"
)

// localLogLimit caps how much of the message the local provider logs.
const localLogLimit = 50

// LocalClient is the terminal chat provider: it records the message in
// the log and reports success. With it at the end of the chain, the chat
// channel can always deliver somewhere during development and testing.
type LocalClient struct {
	logger *slog.Logger
}

// NewLocalClient creates a log-only chat provider.
func NewLocalClient(logger *slog.Logger) *LocalClient {
	return &LocalClient{logger: logger.With("component", "whatsapp_local")}
}

// Name identifies the provider in dispatch outcomes and logs.
func (c *LocalClient) Name() string {
	return "local"
}

// IsConfigured always reports true; the local provider needs no credentials.
func (c *LocalClient) IsConfigured() bool {
	return true
}

// Send logs a preview of the message and succeeds.
func (c *LocalClient) Send(ctx context.Context, phone, message string) error {
	preview := message
	if runes := []rune(message); len(runes) > localLogLimit {
		preview = string(runes[:localLogLimit]) + "..."
	}

	c.logger.InfoContext(ctx, "WhatsApp message logged locally", "phone", phone, "preview", preview)
	return nil
}
