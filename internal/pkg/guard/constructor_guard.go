// Package guard marks domain value objects and entities as properly
// constructed. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: only values produced by a constructor carry a
// constructed guard and pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value fails validation, which prevents
// bypassing constructor invariants by direct struct initialization.
//
// Example:
//
//	type Coordinate struct {
//	    lat, lon int32
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCoordinate(lat, lon int32) (Coordinate, error) {
//	    // range checks ...
//	    return Coordinate{lat: lat, lon: lon, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was constructed through its
// constructor, validationError otherwise. A nil validationError falls back
// to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
