package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacteristics indicates characteristics that fail
	// validation before any generation attempt is made.
	ErrInvalidCharacteristics = errors.New("invalid generation characteristics")

	// ErrStructural indicates a random draw that cannot be completed, such
	// as a constraint budget with no remaining valid feature pairs. It is
	// retryable: the Driver resamples with a perturbed seed.
	ErrStructural = errors.New("model structure infeasible for this draw")

	// ErrBuilderContract indicates a primitive stream that violates the
	// builder contract: a first primitive other than AddRoot, a parent
	// matching no current product, an undersized group, or a group child
	// already present in a matching product. It is a programming error and
	// is never retried.
	ErrBuilderContract = errors.New("construction primitive violates builder contract")
)

// GenerationError is returned by Driver.Generate once the attempt budget is
// exhausted without a feasible model.
type GenerationError struct {
	// Attempts is the number of full construction attempts made.
	Attempts int
	// LastErr is the failure that ended the final attempt.
	LastErr error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *GenerationError) Unwrap() error {
	return e.LastErr
}
