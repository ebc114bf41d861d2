// Package cart contains the Cart aggregate: the mutable, session-scoped
// mapping of item to quantity that accumulates across conversation turns
// until the order is completed.
package cart
