package commands

import (
	"context"

	"foodibot/internal/core/domain/model/contact"
)

// CollectContactResult reports the contact state after a collection step.
type CollectContactResult struct {
	// Contact is the session's contact record after the update.
	Contact contact.Contact
}

// CollectPhoneCommandHandler stores a session's phone number and reports
// whether the contact record is now complete.
type CollectPhoneCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewCollectPhoneCommandHandler creates a handler for phone collection.
// Requires a ContactUoWFactory for transactional persistence.
func NewCollectPhoneCommandHandler(uowFactory ContactUoWFactory) CollectPhoneCommandHandler {
	return CollectPhoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the collect-phone command. Any previously stored phone
// number is overwritten; a stored email is preserved.
func (h *CollectPhoneCommandHandler) Handle(ctx context.Context, cmd CollectPhoneCommand) (CollectContactResult, error) {
	if err := cmd.Validate(); err != nil {
		return CollectContactResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CollectContactResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	contactRepo := uow.ContactRepository()
	if err := contactRepo.SetPhone(ctx, cmd.SessionID(), cmd.Phone().String()); err != nil {
		return CollectContactResult{}, err
	}

	sessionContact, err := contactRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return CollectContactResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CollectContactResult{}, err
	}

	return CollectContactResult{Contact: sessionContact}, nil
}
