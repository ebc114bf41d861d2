// Package guard provides a construction marker for value objects,
// entities, and commands. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, so validation can reject improperly built instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. This ensures validation always fails with
// a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	type Cart struct {
//	    items map[string]int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCart() *Cart {
//	    return &Cart{items: map[string]int{}, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c *Cart) Validate() error {
//	    return c.guard.Validate(ErrCartIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of guarded types.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
