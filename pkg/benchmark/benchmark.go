package benchmark

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Roldans/FaMA/pkg/featuremodel"
)

// Operation is the timed unit: one analysis pass over one model.
// Implementations should be deterministic so repetitions measure the same
// work.
type Operation func(ctx context.Context, m *featuremodel.FeatureModel) error

// Config controls benchmark execution.
type Config struct {
	// Warmup is the number of untimed runs per model before measurement.
	Warmup int
	// Reps is the number of timed repetitions per model.
	Reps int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Warmup: 1,
		Reps:   5,
	}
}

func (c Config) normalized() Config {
	if c.Warmup < 0 {
		c.Warmup = 0
	}
	if c.Reps < 1 {
		c.Reps = DefaultConfig().Reps
	}
	return c
}

// Statistics contains aggregated latency data for one record.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// Record contains the measurements for a single model.
type Record struct {
	RunID    uuid.UUID // unique per measurement run
	Model    uuid.UUID // identity of the measured model
	Root     string    // root feature name, as a human-readable label
	Features int
	Reps     int
	Errors   int // failed repetitions, excluded from Stats
	Stats    Statistics
}

// Runner executes operations over model corpora.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the progress logger, ignoring nil loggers for safety.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Runner. Non-positive Reps and negative Warmup values fall
// back to the defaults.
func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		cfg: cfg.normalized(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run measures op against every model in the corpus, in order. It stops
// early and returns the context error when ctx is cancelled; operation
// failures do not abort the run, they are counted per record instead.
func (r *Runner) Run(ctx context.Context, models []*featuremodel.FeatureModel, op Operation) ([]Record, error) {
	records := make([]Record, 0, len(models))
	for _, m := range models {
		rec, err := r.runModel(ctx, m, op)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Runner) runModel(ctx context.Context, m *featuremodel.FeatureModel, op Operation) (Record, error) {
	for i := 0; i < r.cfg.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		_ = op(ctx, m)
	}

	latencies := make([]time.Duration, 0, r.cfg.Reps)
	var failed int
	for i := 0; i < r.cfg.Reps; i++ {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		start := time.Now()
		if err := op(ctx, m); err != nil {
			failed++
			continue
		}
		latencies = append(latencies, time.Since(start))
	}

	rec := Record{
		RunID:    uuid.New(),
		Model:    m.ID(),
		Root:     m.Root().Name,
		Features: m.FeatureCount(),
		Reps:     r.cfg.Reps,
		Errors:   failed,
		Stats:    computeStatistics(latencies),
	}
	r.log.DebugContext(ctx, "benchmark run complete",
		slog.String("run_id", rec.RunID.String()),
		slog.String("root", rec.Root),
		slog.Int("features", rec.Features),
		slog.Duration("mean", rec.Stats.Mean),
		slog.Int("errors", rec.Errors))
	return rec, nil
}

// computeStatistics aggregates latencies into percentile statistics.
// An empty sample yields the zero value.
func computeStatistics(latencies []time.Duration) Statistics {
	if len(latencies) == 0 {
		return Statistics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var sum time.Duration
	for _, lat := range sorted {
		sum += lat
	}
	mean := sum / time.Duration(len(sorted))

	var variance float64
	for _, lat := range sorted {
		diff := float64(lat - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		P50:    sorted[len(sorted)*50/100],
		P95:    sorted[len(sorted)*95/100],
		P99:    sorted[len(sorted)*99/100],
	}
}
