// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the food ordering system.
// It implements workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - MessageBuilder: renders customer-facing notification texts for every
//     channel from a committed order
//   - NotificationDispatcher: fans a notification out to the SMS, chat and
//     email channels, running channels concurrently and chat providers as
//     an ordered fallback chain
//
// Domain services coordinate between aggregates and outbound providers,
// keeping the message formats and delivery policy out of the application
// handlers.
package services
