// Package fama generates random feature models together with their complete
// product sets, maintained incrementally while the model grows.
//
// Instead of enumerating products after construction, the generator applies
// one metamorphic update rule per construction step, so the product set and
// its count stay exact at every point. That makes generated models usable as
// ground truth when benchmarking feature model analysis tools.
//
// Key Features:
//
//   - Seeded, reproducible random model construction
//   - Exact product sets maintained step by step, never re-enumerated
//   - Hard product-count ceiling with bounded retry on infeasible draws
//   - XML and YAML persistence for models, profiles and corpora
//   - Brute-force reasoner for cross-checking counts on small models
//
// Basic Usage:
//
//	ch := generator.DefaultCharacteristics()
//	ch.Features = 20
//	ch.Seed = 42
//
//	res, err := fama.Generate(context.Background(), ch)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Model)
//	fmt.Println("products:", res.Count)
//
// Advanced Usage with Options:
//
//	res, err := fama.Generate(ctx, ch,
//		fama.WithNameScheme(namegen.NewDictionary(ch.Seed)),
//		fama.WithLogger(logger),
//	)
//
// The packages under pkg/ compose freely without the facade: pkg/generator
// holds the tracker, random builder and retry driver; pkg/featuremodel and
// pkg/product the core structures; pkg/reasoner the analysis questions; and
// pkg/fmio the serialization layer.
package fama
