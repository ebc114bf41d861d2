package commands

import (
	"context"
	"errors"

	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/core/domain/services"
)

// notificationsETA is the tighter estimate quoted on an explicit
// notification request.
const notificationsETA = "30 minutes"

// ErrNoContactInformation is returned when a notification request arrives
// for a session that has shared neither a phone number nor an email.
var ErrNoContactInformation = errors.New("no contact information collected for session")

// SendNotificationsResult reports the committed order and the per-channel
// fan-out outcome.
type SendNotificationsResult struct {
	Order   order.CommittedOrder
	Outcome services.Outcome
}

// SendNotificationsCommandHandler confirms the session's current cart as an
// order and dispatches the confirmation.
//
// Unlike order completion, this command requires at least one known contact
// channel and dispatches immediately instead of waiting for the contact
// record to be complete. Like completion, it freezes catalog prices at
// commit time and leaves the cart in place.
type SendNotificationsCommandHandler struct {
	uowFactory CheckoutUoWFactory
	notifier   Notifier
	messages   services.MessageBuilder
}

// NewSendNotificationsCommandHandler creates a handler for notification requests.
// Requires a CheckoutUoWFactory for transactional persistence and a
// Notifier for the fan-out.
func NewSendNotificationsCommandHandler(uowFactory CheckoutUoWFactory, notifier Notifier) SendNotificationsCommandHandler {
	return SendNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		messages:   services.NewMessageBuilder(),
	}
}

// Handle processes the send-notifications command.
// Returns ErrNoContactInformation when the session has no contact record,
// and errs.ErrObjectNotFound when the session has no cart.
func (h *SendNotificationsCommandHandler) Handle(ctx context.Context, cmd SendNotificationsCommand) (SendNotificationsResult, error) {
	if err := cmd.Validate(); err != nil {
		return SendNotificationsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SendNotificationsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionContact, err := uow.ContactRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return SendNotificationsResult{}, err
	}
	if sessionContact.IsEmpty() {
		return SendNotificationsResult{}, ErrNoContactInformation
	}

	sessionCart, err := uow.CartRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return SendNotificationsResult{}, err
	}

	prices, err := currentPrices(ctx, uow.CatalogReader(), sessionCart.Items())
	if err != nil {
		return SendNotificationsResult{}, err
	}

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextOrderID(ctx)
	if err != nil {
		return SendNotificationsResult{}, err
	}

	committed, err := order.NewCommittedOrder(
		orderID, cmd.SessionID(), sessionCart.Items(), prices, notificationsETA)
	if err != nil {
		return SendNotificationsResult{}, err
	}

	if err = orderRepo.AddHistory(ctx, committed); err != nil {
		return SendNotificationsResult{}, err
	}
	if err = orderRepo.AddTracking(ctx, committed); err != nil {
		return SendNotificationsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SendNotificationsResult{}, err
	}

	outcome := h.notifier.Dispatch(ctx, services.Notification{
		Phone:        sessionContact.Phone(),
		Email:        sessionContact.Email(),
		SMSText:      h.messages.OrderConfirmationSMS(committed),
		ChatText:     h.messages.OrderConfirmationChat(committed),
		EmailSubject: h.messages.OrderConfirmationEmailSubject(committed),
		EmailText:    h.messages.OrderConfirmationEmailText(committed),
		EmailHTML:    h.messages.OrderConfirmationEmailHTML(committed),
	})

	return SendNotificationsResult{
		Order:   committed,
		Outcome: outcome,
	}, nil
}
