package commands

import (
	"errors"

	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrOrderIDMustBePositive = errors.New("order id must be greater than 0")
)

// UpdateOrderStatusCommand represents a kitchen-side request to advance an
// order's tracking status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set an order's status.
// The status must be one of the known tracking states.
func NewUpdateOrderStatusCommand(orderID int64, status order.Status) (UpdateOrderStatusCommand, error) {
	if orderID <= 0 {
		return UpdateOrderStatusCommand{}, ErrOrderIDMustBePositive
	}
	if err := status.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the tracking status to assign.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
