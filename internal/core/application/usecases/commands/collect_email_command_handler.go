package commands

import (
	"context"
)

// CollectEmailCommandHandler stores a session's email address and reports
// whether the contact record is now complete.
type CollectEmailCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewCollectEmailCommandHandler creates a handler for email collection.
// Requires a ContactUoWFactory for transactional persistence.
func NewCollectEmailCommandHandler(uowFactory ContactUoWFactory) CollectEmailCommandHandler {
	return CollectEmailCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the collect-email command. Any previously stored email
// is overwritten; a stored phone number is preserved.
func (h *CollectEmailCommandHandler) Handle(ctx context.Context, cmd CollectEmailCommand) (CollectContactResult, error) {
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
	if err := contactRepo.SetEmail(ctx, cmd.SessionID(), cmd.Email()); err != nil {
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
