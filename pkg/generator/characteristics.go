package generator

import "fmt"

// DefaultMaxAttempts bounds the retry loop when Characteristics.MaxAttempts
// is left zero.
const DefaultMaxAttempts = 1000

// Weights is the relative probability of each relation kind when growing the
// feature tree. Weights are relative, not percentages; at least one must be
// positive.
type Weights struct {
	Mandatory   int `yaml:"mandatory"`
	Optional    int `yaml:"optional"`
	Alternative int `yaml:"alternative"`
	Or          int `yaml:"or"`
}

func (w Weights) total() int {
	return w.Mandatory + w.Optional + w.Alternative + w.Or
}

// Characteristics configures one generation run. The Driver clones it before
// every attempt, so a failed attempt cannot leak state into the next.
type Characteristics struct {
	// Features is the total number of features in the model, root included.
	Features int `yaml:"features"`

	// Weights steers the relation-kind distribution of the tree.
	Weights Weights `yaml:"weights"`

	// MaxGroupSize caps the child count of alternative and or groups.
	// Groups always have at least two children.
	MaxGroupSize int `yaml:"max_group_size"`

	// Constraints is the number of cross-tree constraints to place after the
	// tree is complete.
	Constraints int `yaml:"constraints"`

	// MaxProducts is the hard capacity of the product collection. An attempt
	// whose product set would grow past it is abandoned and retried.
	MaxProducts int `yaml:"max_products"`

	// Seed makes generation reproducible. Retries perturb it
	// deterministically, so the whole run is a pure function of this value.
	Seed int64 `yaml:"seed"`

	// MaxAttempts bounds the retry loop. Zero means DefaultMaxAttempts.
	MaxAttempts int `yaml:"max_attempts,omitempty"`
}

// Clone returns an independent copy. Characteristics holds only value fields,
// so a plain copy is a deep one.
func (c Characteristics) Clone() Characteristics {
	return c
}

// Validate reports whether the characteristics describe a runnable
// generation. All failures wrap ErrInvalidCharacteristics.
func (c Characteristics) Validate() error {
	if c.Features < 1 {
		return fmt.Errorf("%w: features must be at least 1, got %d", ErrInvalidCharacteristics, c.Features)
	}
	if c.Weights.Mandatory < 0 || c.Weights.Optional < 0 || c.Weights.Alternative < 0 || c.Weights.Or < 0 {
		return fmt.Errorf("%w: relation weights must not be negative", ErrInvalidCharacteristics)
	}
	if c.Features > 1 && c.Weights.total() <= 0 {
		return fmt.Errorf("%w: at least one relation weight must be positive", ErrInvalidCharacteristics)
	}
	if (c.Weights.Alternative > 0 || c.Weights.Or > 0) && c.MaxGroupSize < 2 {
		return fmt.Errorf("%w: max group size must be at least 2 when group weights are set, got %d", ErrInvalidCharacteristics, c.MaxGroupSize)
	}
	if c.Constraints < 0 {
		return fmt.Errorf("%w: constraints must not be negative, got %d", ErrInvalidCharacteristics, c.Constraints)
	}
	if c.MaxProducts < 1 {
		return fmt.Errorf("%w: max products must be at least 1, got %d", ErrInvalidCharacteristics, c.MaxProducts)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts must not be negative, got %d", ErrInvalidCharacteristics, c.MaxAttempts)
	}
	return nil
}

// DefaultCharacteristics returns a small, feasible configuration: a dozen
// features over an even relation mix, a couple of constraints, and room for
// five thousand products.
func DefaultCharacteristics() Characteristics {
	return Characteristics{
		Features:     12,
		Weights:      Weights{Mandatory: 25, Optional: 25, Alternative: 25, Or: 25},
		MaxGroupSize: 4,
		Constraints:  2,
		MaxProducts:  5000,
		Seed:         1,
	}
}
