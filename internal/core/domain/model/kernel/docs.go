// Package kernel provides shared value objects used across the ordering
// domain: session identifiers, sanitized food item names, and phone numbers
// with country-code normalization.
//
// All value objects in this package are immutable and validated at
// construction. The zero value of each type is invalid and fails Validate,
// which prevents unconstructed values from leaking into aggregates.
package kernel
