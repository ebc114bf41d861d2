package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/ports"
	"foodibot/internal/pkg/errs"
)

// Channel keys in dispatch outcomes.
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// ErrAllChatProvidersFailed is returned in a channel result when every
// configured chat provider was attempted and none delivered the message.
var ErrAllChatProvidersFailed = errors.New("all chat providers failed")

// Notification carries the rendered texts and targets of one fan-out.
// A channel is attempted only when its target field is non-empty.
type Notification struct {
	Phone string
	Email string

	SMSText      string
	ChatText     string
	EmailSubject string
	EmailText    string
	EmailHTML    string
}

// ChannelResult records how one channel fared during a dispatch.
type ChannelResult struct {
	// Success is true when the channel delivered the message.
	Success bool

	// Provider names the provider that delivered, for channels with a
	// fallback chain. Empty on failure and on single-provider channels.
	Provider string

	// Err holds the delivery failure, nil on success.
	Err error
}

// Outcome maps channel keys to their results. Channels that had no
// target to send to are absent from the map.
type Outcome map[string]ChannelResult

// NotificationDispatcher fans a notification out to the SMS, chat and
// email channels.
//
// Delivery policy:
//   - Channels run concurrently and independently; one channel failing
//     never prevents another from being attempted.
//   - The chat channel tries its providers sequentially in registration
//     order and stops at the first success.
//   - Providers without credentials are skipped, never attempted.
//
// Dispatch never returns an error: partial delivery is an expected
// production state and is reported per channel in the Outcome.
type NotificationDispatcher struct {
	sms                ports.SMSProvider
	chatChain          []ports.ChatProvider
	email              ports.EmailProvider
	defaultCountryCode string
	logger             *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher over the given
// providers. The chat chain order is the fallback order. The default
// country code is applied when normalizing bare local phone numbers.
func NewNotificationDispatcher(
	sms ports.SMSProvider,
	chatChain []ports.ChatProvider,
	email ports.EmailProvider,
	defaultCountryCode string,
	logger *slog.Logger,
) (*NotificationDispatcher, error) {
	if sms == nil {
		return nil, errs.NewValueIsRequiredError("sms")
	}
	if len(chatChain) == 0 {
		return nil, errs.NewValueIsRequiredError("chatChain")
	}
	if email == nil {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if defaultCountryCode == "" {
		return nil, errs.NewValueIsRequiredError("defaultCountryCode")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &NotificationDispatcher{
		sms:                sms,
		chatChain:          chatChain,
		email:              email,
		defaultCountryCode: defaultCountryCode,
		logger:             logger.With("component", "notification_dispatcher"),
	}, nil
}

// Dispatch sends the notification over every channel that has a target,
// returning the per-channel results once all channels have finished.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, notification Notification) Outcome {
	var (
		wg                                 sync.WaitGroup
		smsResult, chatResult, emailResult *ChannelResult
	)

	if notification.Phone != "" {
		phone := kernel.NormalizePhone(notification.Phone, d.defaultCountryCode)

		wg.Add(2)
		go func() {
			defer wg.Done()
			result := d.sendSMS(ctx, phone, notification.SMSText)
			smsResult = &result
		}()
		go func() {
			defer wg.Done()
			result := d.sendChat(ctx, phone, notification.ChatText)
			chatResult = &result
		}()
	}

	if notification.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := d.sendEmail(ctx, notification)
			emailResult = &result
		}()
	}

	wg.Wait()

	outcome := make(Outcome)
	if smsResult != nil {
		outcome[ChannelSMS] = *smsResult
	}
	if chatResult != nil {
		outcome[ChannelWhatsApp] = *chatResult
	}
	if emailResult != nil {
		outcome[ChannelEmail] = *emailResult
	}
	return outcome
}

func (d *NotificationDispatcher) sendSMS(ctx context.Context, phone, message string) ChannelResult {
	if !d.sms.IsConfigured() {
		err := errors.New("sms provider not configured")
		d.logger.WarnContext(ctx, "SMS channel skipped", "error", err)
		return ChannelResult{Err: err}
	}

	if err := d.sms.Send(ctx, phone, message); err != nil {
		d.logger.ErrorContext(ctx, "SMS sending failed", "phone", phone, "error", err)
		return ChannelResult{Err: err}
	}

	d.logger.InfoContext(ctx, "SMS sent", "phone", phone)
	return ChannelResult{Success: true}
}

// sendChat walks the fallback chain in order. Each configured provider
// gets one attempt; the first success ends the walk.
func (d *NotificationDispatcher) sendChat(ctx context.Context, phone, message string) ChannelResult {
	var lastErr error

	for _, provider := range d.chatChain {
		if !provider.IsConfigured() {
			continue
		}

		if err := provider.Send(ctx, phone, message); err != nil {
			d.logger.WarnContext(ctx, "Chat provider failed, trying next",
				"provider", provider.Name(), "error", err)
			lastErr = err
			continue
		}

		d.logger.InfoContext(ctx, "Chat message sent", "provider", provider.Name(), "phone", phone)
		return ChannelResult{Success: true, Provider: provider.Name()}
	}

	err := ErrAllChatProvidersFailed
	if lastErr != nil {
		err = errors.Join(ErrAllChatProvidersFailed, lastErr)
	}
	d.logger.ErrorContext(ctx, "Chat channel exhausted", "phone", phone, "error", err)
	return ChannelResult{Err: err}
}

func (d *NotificationDispatcher) sendEmail(ctx context.Context, notification Notification) ChannelResult {
	if !d.email.IsConfigured() {
		err := errors.New("email provider not configured")
		d.logger.WarnContext(ctx, "Email channel skipped", "error", err)
		return ChannelResult{Err: err}
	}

	err := d.email.Send(ctx,
		notification.Email, notification.EmailSubject,
		notification.EmailText, notification.EmailHTML)
	if err != nil {
		d.logger.ErrorContext(ctx, "Email sending failed", "to", notification.Email, "error", err)
		return ChannelResult{Err: err}
	}

	d.logger.InfoContext(ctx, "Email sent", "to", notification.Email)
	return ChannelResult{Success: true}
}
