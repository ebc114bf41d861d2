package commands

import (
	"context"

	"foodibot/internal/core/domain/model/contact"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/core/domain/services"
	"foodibot/internal/core/ports"
)

// defaultDeliveryETA is quoted to the customer at order completion.
const defaultDeliveryETA = "30-45 minutes"

// CompleteOrderResult reports the committed order, the contact details
// known for the session and, when both contact channels were known, the
// notification fan-out outcome.
type CompleteOrderResult struct {
	Order   order.CommittedOrder
	Contact contact.Contact

	// Outcome is nil when notifications were not dispatched because
	// contact details are still incomplete.
	Outcome services.Outcome
}

// CompleteOrderCommandHandler handles the business logic for order completion.
//
// Items are priced against the catalog at completion time: the committed
// order freezes the prices in effect now, so later catalog price changes
// never affect it. The cart is intentionally left in place after
// completion; it is removed by the cleanup job when it goes stale.
//
// Confirmation notifications are dispatched only when both phone and email
// are already known. A failed dispatch never fails the completion: the
// order is committed before any provider is contacted.
type CompleteOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	notifier   Notifier
	messages   services.MessageBuilder
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires a CheckoutUoWFactory for transactional persistence and a
// Notifier for the confirmation fan-out.
func NewCompleteOrderCommandHandler(uowFactory CheckoutUoWFactory, notifier Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		messages:   services.NewMessageBuilder(),
	}
}

// Handle processes the order completion command.
// Returns errs.ErrObjectNotFound when the session has no cart, or when a
// cart item has vanished from the catalog since it was added.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionCart, err := uow.CartRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return CompleteOrderResult{}, err
	}

	prices, err := currentPrices(ctx, uow.CatalogReader(), sessionCart.Items())
	if err != nil {
		return CompleteOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextOrderID(ctx)
	if err != nil {
		return CompleteOrderResult{}, err
	}

	committed, err := order.NewCommittedOrder(
		orderID, cmd.SessionID(), sessionCart.Items(), prices, defaultDeliveryETA)
	if err != nil {
		return CompleteOrderResult{}, err
	}

	if err = orderRepo.AddHistory(ctx, committed); err != nil {
		return CompleteOrderResult{}, err
	}
	if err = orderRepo.AddTracking(ctx, committed); err != nil {
		return CompleteOrderResult{}, err
	}

	sessionContact, err := uow.ContactRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return CompleteOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteOrderResult{}, err
	}

	result := CompleteOrderResult{
		Order:   committed,
		Contact: sessionContact,
	}

	// The fan-out runs only after the order is durably committed.
	if sessionContact.IsComplete() {
		result.Outcome = h.notifier.Dispatch(ctx, h.confirmationFor(committed, sessionContact))
	}

	return result, nil
}

func (h *CompleteOrderCommandHandler) confirmationFor(
	committed order.CommittedOrder, sessionContact contact.Contact,
) services.Notification {
	return services.Notification{
		Phone:        sessionContact.Phone(),
		Email:        sessionContact.Email(),
		SMSText:      h.messages.OrderConfirmationSMS(committed),
		ChatText:     h.messages.OrderConfirmationChat(committed),
		EmailSubject: h.messages.OrderConfirmationEmailSubject(committed),
		EmailText:    h.messages.OrderConfirmationEmailText(committed),
		EmailHTML:    h.messages.OrderConfirmationEmailHTML(committed),
	}
}

// currentPrices resolves the unit price of every cart item against the
// catalog as it stands right now.
func currentPrices(
	ctx context.Context, catalog ports.CatalogReader, items map[string]int,
) (map[string]float64, error) {
	prices := make(map[string]float64, len(items))
	for name := range items {
		itemName, err := kernel.NewItemName(name)
		if err != nil {
			return nil, err
		}
		row, err := catalog.FindItem(ctx, itemName)
		if err != nil {
			return nil, err
		}
		prices[name] = row.Price
	}
	return prices, nil
}
