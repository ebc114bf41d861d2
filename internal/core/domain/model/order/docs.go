// Package order contains the CommittedOrder value produced when a cart is
// completed, and the tracking Status vocabulary used by order tracking and
// customer notifications.
package order
