// Package guard implements the constructor-guard pattern used by domain
// objects and commands to detect zero-value instances that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does
// not supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embed one as a private field and set it
// with NewConstructorGuard inside the constructor; Validate then fails for
// any instance that was created by direct struct literal.
//
// Example:
//
//	type CreateClientCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateClientCommand(name string) (CreateClientCommand, error) {
//	    if name == "" {
//	        return CreateClientCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return CreateClientCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateClientCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values
// it returns validationError, or ErrDefaultConstructorGuard when
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
