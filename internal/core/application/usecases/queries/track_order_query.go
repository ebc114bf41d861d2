package queries

import (
	"errors"

	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// TrackOrderQuery retrieves the live tracking status of a committed order.
type TrackOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for an order's tracking status.
func NewTrackOrderQuery(orderID int64) (TrackOrderQuery, error) {
	if orderID <= 0 {
		return TrackOrderQuery{}, ErrOrderIDIsInvalid
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the order to track.
func (q TrackOrderQuery) OrderID() int64 {
	return q.orderID
}

// TrackOrderQueryResponse is the tracking read model.
type TrackOrderQueryResponse struct {
	OrderID int64
	Status  order.Status
}
