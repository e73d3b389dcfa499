// Package guard provides a constructor guard for application-layer objects
// such as commands and queries. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so handlers can reject objects that were
// not created through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// properly constructed and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The zero value of ConstructorGuard fails validation; only guards obtained
// from NewConstructorGuard pass.
//
// Example usage:
//
//	type CreateProductCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateProductCommand(name string) (CreateProductCommand, error) {
//	    if name == "" {
//	        return CreateProductCommand{}, errors.New("name is required")
//	    }
//	    return CreateProductCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateProductCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it in every constructor whose objects embed a guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// For zero-value holders it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
