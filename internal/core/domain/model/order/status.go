package order

import (
	"fmt"
	"strings"

	"foodibot/internal/pkg/errs"
)

// Status represents the tracking state of a committed order as it moves
// from kitchen to doorstep. Unlike cart state, tracking status is advanced
// by kitchen staff through the admin API, not by the conversation.
type Status string

const (
	// StatusConfirmed is the initial status assigned at order completion.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the kitchen has started on the order.
	StatusPreparing Status = "preparing"

	// StatusReady indicates the order is packed and awaiting pickup.
	StatusReady Status = "ready"

	// StatusOutForDelivery indicates the order is on its way.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered is the final tracking status.
	StatusDelivered Status = "delivered"
)

// getValidStatuses returns the set of statuses the admin API may assign.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusConfirmed:      {},
		StatusPreparing:      {},
		StatusReady:          {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
	}
}

// getStatusLabels returns the display marker for each known status.
// Message formatting must never fail on an unknown status, so lookups
// through DisplayLabel fall back to a generic marker.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		StatusConfirmed:      "✅",
		StatusPreparing:      "🧑‍🍳",
		StatusReady:          "🎉",
		StatusOutForDelivery: "🚚",
		StatusDelivered:      "📦",
	}
}

// Validate checks that the status is one of the known tracking states.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid order status", string(s)),
		)
	}
	return nil
}

// String returns the raw status value as stored and transmitted.
func (s Status) String() string {
	return string(s)
}

// DisplayLabel returns the emoji marker for the status, or a generic
// marker for statuses this core does not know about. It never fails.
func (s Status) DisplayLabel() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "📋"
}

// Display returns a human-readable form of the status, e.g.
// "out_for_delivery" becomes "Out For Delivery". Safe on any value.
func (s Status) Display() string {
	words := strings.FieldsFunc(string(s), func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
