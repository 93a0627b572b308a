package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	fama "github.com/Roldans/FaMA"
	"github.com/Roldans/FaMA/pkg/benchmark"
	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/generator"
	"github.com/Roldans/FaMA/pkg/logger"
	"github.com/Roldans/FaMA/pkg/reasoner"
)

var (
	benchModels      int
	benchFeatures    int
	benchSeed        int64
	benchMaxProducts int
	benchWarmup      int
	benchReps        int
	benchQuestion    string
	benchOut         string

	benchmarkCmd = &cobra.Command{
		Use:   "benchmark",
		Short: "Time reasoner questions over a generated corpus",
		Long: `Benchmark generates a corpus of models (consecutive seeds starting at
--seed), times the selected reasoner question over each model with warmup,
and writes per-model latency statistics as CSV.

Questions:
  products     enumerate all products
  count        count products
  variability  variability ratio`,
		Args: cobra.NoArgs,
		RunE: runBenchmark,
	}
)

func init() {
	benchmarkCmd.Flags().IntVar(&benchModels, "models", 10, "number of models in the corpus")
	benchmarkCmd.Flags().IntVar(&benchFeatures, "features", 16, "features per model")
	benchmarkCmd.Flags().Int64Var(&benchSeed, "seed", 1, "seed of the first model")
	benchmarkCmd.Flags().IntVar(&benchMaxProducts, "max-products", generator.DefaultCharacteristics().MaxProducts,
		"hard ceiling on each model's product count")
	benchmarkCmd.Flags().IntVar(&benchWarmup, "warmup", 1, "untimed runs per model")
	benchmarkCmd.Flags().IntVar(&benchReps, "reps", 5, "timed repetitions per model")
	benchmarkCmd.Flags().StringVar(&benchQuestion, "question", "count", "reasoner question: products, count or variability")
	benchmarkCmd.Flags().StringVarP(&benchOut, "out", "o", "benchmark.csv", "CSV output path")

	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	op, err := questionOperation(benchQuestion)
	if err != nil {
		return err
	}

	ch := generator.DefaultCharacteristics()
	ch.Features = benchFeatures
	ch.MaxProducts = benchMaxProducts

	models := make([]*featuremodel.FeatureModel, 0, benchModels)
	for i := 0; i < benchModels; i++ {
		chi := ch
		chi.Seed = benchSeed + int64(i)
		res, err := fama.Generate(cmd.Context(), chi)
		if err != nil {
			return fmt.Errorf("generate corpus model %d: %w", i+1, err)
		}
		models = append(models, res.Model)
	}
	slog.Info("corpus generated",
		slog.Int("models", len(models)),
		logger.Features(benchFeatures))

	runner := benchmark.New(benchmark.Config{Warmup: benchWarmup, Reps: benchReps})
	records, err := runner.Run(cmd.Context(), models, op)
	if err != nil {
		return err
	}

	f, err := os.Create(benchOut)
	if err != nil {
		return err
	}
	if err := benchmark.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("benchmark complete",
		slog.Int("records", len(records)),
		slog.String("output", benchOut))
	return nil
}

func questionOperation(question string) (benchmark.Operation, error) {
	an := reasoner.New()
	switch question {
	case "products":
		return func(ctx context.Context, m *featuremodel.FeatureModel) error {
			_, err := an.Products(m)
			return err
		}, nil
	case "count":
		return func(ctx context.Context, m *featuremodel.FeatureModel) error {
			_, err := an.NumberOfProducts(m)
			return err
		}, nil
	case "variability":
		return func(ctx context.Context, m *featuremodel.FeatureModel) error {
			_, err := an.Variability(m)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown question %q: must be products, count or variability", question)
	}
}
