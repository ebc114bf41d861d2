package ports

import "context"

// SMSProvider sends a plain-text message to a phone number over SMS.
type SMSProvider interface {
	// IsConfigured reports whether the provider has the credentials it
	// needs. Unconfigured providers are skipped, never attempted.
	IsConfigured() bool

	// Send delivers the message to the given phone number.
	Send(ctx context.Context, phone, message string) error
}

// ChatProvider sends a plain-text message to a phone number over a chat
// network. Providers are tried in a fixed order; the first success wins.
type ChatProvider interface {
	// Name identifies the provider in dispatch outcomes and logs.
	Name() string

	// IsConfigured reports whether the provider has the credentials it
	// needs. Unconfigured providers are skipped, never attempted.
	IsConfigured() bool

	// Send delivers the message to the given phone number.
	Send(ctx context.Context, phone, message string) error
}

// EmailProvider sends an email with both plain-text and HTML bodies.
type EmailProvider interface {
	// IsConfigured reports whether the provider has the credentials it
	// needs. Unconfigured providers are skipped, never attempted.
	IsConfigured() bool

	// Send delivers the email to the given address.
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}
