package generator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/product"
)

// Result is a successful generation outcome.
type Result struct {
	// Model is the constructed feature model.
	Model *featuremodel.FeatureModel

	// Products holds every valid configuration of Model, in insertion order.
	Products *product.BoundedCollection

	// Count is the exact product count; it always equals Products.Len().
	Count int64

	// Attempts is the number of construction runs made, the successful one
	// included.
	Attempts int

	// Seed is the seed of the successful attempt. Feeding it back through
	// Characteristics.Seed reproduces Model in one attempt.
	Seed int64
}

// Driver runs whole generation attempts: it wires a ModelBuilder's primitive
// stream into a Tracker and retries infeasible random draws under a fresh
// seed. Not safe for concurrent use.
type Driver struct {
	builder ModelBuilder
	tracker *Tracker
	logger  *slog.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger sets the logger for per-attempt diagnostics, emitted at debug
// level. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDriver creates a Driver over builder and subscribes to its primitive
// stream. The builder must not be shared with another driver.
func NewDriver(builder ModelBuilder, opts ...DriverOption) *Driver {
	d := &Driver{builder: builder, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	builder.Subscribe(func(p Primitive) error {
		if d.tracker == nil {
			// Builds made outside Generate are not tracked.
			return nil
		}
		return d.tracker.Apply(p)
	})
	return d
}

// Generate constructs one feature model matching ch, together with its exact
// product set. Attempts whose product set overflows ch.MaxProducts, or whose
// random draw hits a structural dead end, are retried with a perturbed seed;
// once the attempt budget is exhausted a *GenerationError is returned.
// Builder-contract violations abort immediately and are never retried.
//
// The context is checked between attempts only; a single attempt always runs
// to completion or failure.
func (d *Driver) Generate(ctx context.Context, ch Characteristics) (*Result, error) {
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	maxAttempts := ch.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	d.tracker = NewTracker(ch.MaxProducts)
	defer func() { d.tracker = nil }()

	// The perturbation stream must be decorrelated from the builder, which
	// seeds its own source with the same value.
	perturb := rand.New(rand.NewSource(deriveSeed(ch.Seed)))

	seed := ch.Seed
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attemptCh := ch.Clone()
		attemptCh.Seed = seed

		model, err := d.attempt(attemptCh)
		if err == nil {
			d.logger.Debug("model generated",
				slog.Int("features", model.FeatureCount()),
				slog.Int64("products", d.tracker.Count()),
				slog.Int("attempts", attempt),
				slog.Int64("seed", seed))
			return &Result{
				Model:    model,
				Products: d.tracker.Products(),
				Count:    d.tracker.Count(),
				Attempts: attempt,
				Seed:     seed,
			}, nil
		}
		if !errors.Is(err, product.ErrCapacityExceeded) && !errors.Is(err, ErrStructural) {
			return nil, err
		}

		lastErr = err
		d.logger.Debug("generation attempt failed",
			slog.Int("attempt", attempt),
			slog.Int64("seed", seed),
			slog.String("error", err.Error()))
		seed += perturb.Int63()
	}
	return nil, &GenerationError{Attempts: maxAttempts, LastErr: lastErr}
}

// attempt runs one full construction pass against a fresh tracker.
func (d *Driver) attempt(ch Characteristics) (*featuremodel.FeatureModel, error) {
	d.tracker.Reset()
	if err := d.builder.Reset(ch); err != nil {
		return nil, err
	}
	return d.builder.Build(ch)
}

// deriveSeed applies the SplitMix64 finalizer (Vigna's constants) so the
// perturbation stream shares no structure with the builder stream seeded
// from the same value.
func deriveSeed(seed int64) int64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
