package fmio

import "errors"

// Predefined errors for the fmio package.
var (
	// ErrUnknownElement indicates a model document with an element that is
	// not a relation or constraint kind.
	ErrUnknownElement = errors.New("unknown element in model document")

	// ErrInvalidCorpus indicates a product corpus that is internally
	// inconsistent or references features absent from the model.
	ErrInvalidCorpus = errors.New("invalid product corpus")
)
