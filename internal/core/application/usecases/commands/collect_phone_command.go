package commands

import (
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

var ErrCollectPhoneCommandIsNotConstructed = errors.New(
	"CollectPhoneCommand must be created via NewCollectPhoneCommand constructor",
)

// CollectPhoneCommand represents a request to store a session's phone
// number for notifications. The number is stored as given; normalization
// to international form happens at dispatch time.
type CollectPhoneCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	phone     kernel.Phone

	guard guard.ConstructorGuard
}

// NewCollectPhoneCommand creates a command to store a phone number.
func NewCollectPhoneCommand(sessionID kernel.SessionID, phone string) (CollectPhoneCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CollectPhoneCommand{}, err
	}

	phoneValue, err := kernel.NewPhone(phone)
	if err != nil {
		return CollectPhoneCommand{}, err
	}

	return CollectPhoneCommand{
		sessionID: sessionID,
		phone:     phoneValue,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectPhoneCommand) Validate() error {
	return c.guard.Validate(ErrCollectPhoneCommandIsNotConstructed)
}

// SessionID returns the conversation session the contact belongs to.
func (c CollectPhoneCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Phone returns the phone number to store.
func (c CollectPhoneCommand) Phone() kernel.Phone {
	return c.phone
}
