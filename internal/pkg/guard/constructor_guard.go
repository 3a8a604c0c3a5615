// Package guard implements the constructor guard pattern used by commands and
// value objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided and the guarded object was not created via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed one in a struct and set it via NewConstructorGuard inside the struct's
// constructor; Validate then fails for any instance created by direct struct
// initialization.
//
// Example:
//
//	type CancelOrderCommand struct {
//	    orderID kernel.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCancelOrderCommand(orderID kernel.ID) (CancelOrderCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return CancelOrderCommand{}, err
//	    }
//	    return CancelOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value objects it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
