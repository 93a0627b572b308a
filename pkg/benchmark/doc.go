// Package benchmark times analysis operations over corpora of feature
// models.
//
// A Runner executes an Operation against each model in a corpus, discarding
// a configurable number of warmup runs before timing the measured
// repetitions. Per-model latencies are aggregated into Statistics
// (mean, standard deviation and the 50th/95th/99th percentiles) and returned
// as Records tagged with a unique run identifier.
//
// Records export to CSV for downstream analysis:
//
//	runner := benchmark.New(benchmark.DefaultConfig())
//	records, err := runner.Run(ctx, models, func(ctx context.Context, m *featuremodel.FeatureModel) error {
//	    _, err := reasoner.NumberOfProducts(m)
//	    return err
//	})
//	if err != nil {
//	    return err
//	}
//	return benchmark.WriteCSV(f, records)
//
// Failed repetitions are counted per record and excluded from the latency
// statistics.
package benchmark
