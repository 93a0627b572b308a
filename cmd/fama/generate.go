package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	fama "github.com/Roldans/FaMA"
	"github.com/Roldans/FaMA/pkg/fmio"
	"github.com/Roldans/FaMA/pkg/generator"
	"github.com/Roldans/FaMA/pkg/logger"
	"github.com/Roldans/FaMA/pkg/namegen"
)

var (
	genProfile     string
	genFeatures    int
	genMandatory   int
	genOptional    int
	genAlternative int
	genOr          int
	genGroupSize   int
	genConstraints int
	genMaxProducts int
	genSeed        int64
	genAttempts    int
	genNames       string
	genOutDir      string

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate one feature model and its product set",
		Long: `Generate builds a random feature model matching the requested
characteristics and writes two artifacts to the output directory:

  model.xml      the feature tree with its cross-tree constraints
  products.yaml  every product of the model, by feature name

Characteristics come from an optional YAML profile (--profile), with any
explicitly set flags overriding profile values.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
)

func init() {
	d := generator.DefaultCharacteristics()

	generateCmd.Flags().StringVar(&genProfile, "profile", "", "YAML characteristics profile to start from")
	generateCmd.Flags().IntVar(&genFeatures, "features", d.Features, "number of features in the tree")
	generateCmd.Flags().IntVar(&genMandatory, "weight-mandatory", d.Weights.Mandatory, "draw weight for mandatory children")
	generateCmd.Flags().IntVar(&genOptional, "weight-optional", d.Weights.Optional, "draw weight for optional children")
	generateCmd.Flags().IntVar(&genAlternative, "weight-alternative", d.Weights.Alternative, "draw weight for alternative groups")
	generateCmd.Flags().IntVar(&genOr, "weight-or", d.Weights.Or, "draw weight for or groups")
	generateCmd.Flags().IntVar(&genGroupSize, "max-group-size", d.MaxGroupSize, "maximum children per group")
	generateCmd.Flags().IntVar(&genConstraints, "constraints", d.Constraints, "number of cross-tree constraints")
	generateCmd.Flags().IntVar(&genMaxProducts, "max-products", d.MaxProducts, "hard ceiling on the product count")
	generateCmd.Flags().Int64Var(&genSeed, "seed", d.Seed, "generation seed")
	generateCmd.Flags().IntVar(&genAttempts, "attempts", generator.DefaultMaxAttempts, "maximum generation attempts")
	generateCmd.Flags().StringVar(&genNames, "names", "serial", "feature naming scheme: serial or dictionary")
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", ".", "output directory")

	rootCmd.AddCommand(generateCmd)
}

// generateCharacteristics merges the optional profile with explicitly set
// flags, flags winning.
func generateCharacteristics(cmd *cobra.Command) (generator.Characteristics, error) {
	ch := generator.DefaultCharacteristics()
	if genProfile != "" {
		f, err := os.Open(genProfile)
		if err != nil {
			return ch, err
		}
		defer f.Close()
		if ch, err = fmio.ReadCharacteristics(f); err != nil {
			return ch, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("features") {
		ch.Features = genFeatures
	}
	if flags.Changed("weight-mandatory") {
		ch.Weights.Mandatory = genMandatory
	}
	if flags.Changed("weight-optional") {
		ch.Weights.Optional = genOptional
	}
	if flags.Changed("weight-alternative") {
		ch.Weights.Alternative = genAlternative
	}
	if flags.Changed("weight-or") {
		ch.Weights.Or = genOr
	}
	if flags.Changed("max-group-size") {
		ch.MaxGroupSize = genGroupSize
	}
	if flags.Changed("constraints") {
		ch.Constraints = genConstraints
	}
	if flags.Changed("max-products") {
		ch.MaxProducts = genMaxProducts
	}
	if flags.Changed("seed") {
		ch.Seed = genSeed
	}
	if flags.Changed("attempts") {
		ch.MaxAttempts = genAttempts
	}
	return ch, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ch, err := generateCharacteristics(cmd)
	if err != nil {
		return err
	}

	var opts []fama.Option
	switch genNames {
	case "serial":
	case "dictionary":
		opts = append(opts, fama.WithNameScheme(namegen.NewDictionary(ch.Seed)))
	default:
		return fmt.Errorf("unknown naming scheme %q: must be serial or dictionary", genNames)
	}

	start := time.Now()
	res, err := fama.Generate(cmd.Context(), ch, opts...)
	if err != nil {
		return err
	}
	slog.Info("model generated",
		logger.Seed(res.Seed),
		logger.Attempts(res.Attempts),
		logger.Features(res.Model.FeatureCount()),
		logger.Products(res.Count),
		logger.Duration(time.Since(start)))

	if err := os.MkdirAll(genOutDir, 0o755); err != nil {
		return err
	}
	modelPath := filepath.Join(genOutDir, "model.xml")
	if err := writeArtifact(modelPath, func(f *os.File) error {
		return fmio.WriteModel(f, res.Model)
	}); err != nil {
		return err
	}
	productsPath := filepath.Join(genOutDir, "products.yaml")
	if err := writeArtifact(productsPath, func(f *os.File) error {
		return fmio.WriteProducts(f, res.Products)
	}); err != nil {
		return err
	}

	slog.Info("artifacts written",
		slog.String("model", modelPath),
		slog.String("products", productsPath))
	return nil
}

func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
