package product

import "errors"

// Predefined errors for the product package.
var (
	// ErrCapacityExceeded indicates an append on a BoundedCollection that is
	// already at capacity.
	ErrCapacityExceeded = errors.New("product collection capacity exceeded")
)
