package reasoner

import "errors"

// Predefined errors for the reasoner package.
var (
	// ErrModelTooLarge indicates a model above the analyzer's feature limit;
	// exhaustive enumeration would be intractable.
	ErrModelTooLarge = errors.New("model too large for exhaustive analysis")
)
