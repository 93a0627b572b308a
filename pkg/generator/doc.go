// Package generator builds random feature models while maintaining the exact
// set of their valid configurations ("products") incrementally, one closed-form
// update per construction step, instead of re-solving the model after every
// change.
//
// # Architecture
//
// Model construction is expressed as a closed set of tagged events
// (Primitive): AddRoot, AddMandatory, AddOptional, AddAlternativeGroup,
// AddOrGroup, AddExcludes, AddRequires. A ModelBuilder emits each primitive
// synchronously, in model order, to subscribed hooks while it constructs the
// feature tree. The package contains three cooperating pieces:
//
//   - Tracker subscribes to the primitive stream and applies one combinatorial
//     update rule per event, keeping a bounded product collection and an exact
//     running count consistent with the partial model at every step. Cost is
//     proportional to the current number of products, never to a full
//     re-enumeration.
//   - RandomBuilder implements ModelBuilder: it grows a random feature tree to
//     a target size from a seeded source, drawing relation kinds from
//     configured weights, then places cross-tree constraints.
//   - Driver ties the two together and retries: characteristics whose random
//     draw turns out to be infeasible (the product set overflows MaxProducts,
//     or no valid constraint pair can be found) are resampled with a perturbed
//     seed up to MaxAttempts times.
//
// The update rules are metamorphic relations over the product set: a
// mandatory child joins every product of its parent in place; an optional
// child forks each such product; an alternative group of k children splits
// each product k ways; an or group of k children expands each product into
// all 2^k-1 nonempty child subsets; excludes and requires constraints only
// remove products.
//
// # Capacity as a feasibility oracle
//
// The product collection has a hard capacity (Characteristics.MaxProducts).
// An update that would cross it fails the whole attempt, and the Driver
// restarts generation with a new seed rather than validating feasibility up
// front. Retrying is a bounded loop with a typed outcome: success yields a
// Result, exhaustion yields a *GenerationError.
//
// # Usage
//
//	builder := generator.NewRandomBuilder()
//	driver := generator.NewDriver(builder)
//
//	res, err := driver.Generate(ctx, generator.Characteristics{
//		Features:    12,
//		Weights:     generator.Weights{Mandatory: 25, Optional: 35, Alternative: 20, Or: 20},
//		MaxGroupSize: 4,
//		Constraints: 2,
//		MaxProducts: 5000,
//		Seed:        42,
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Count, res.Attempts)
//
// Generation is deterministic: the same characteristics always produce the
// same model, the same products, and the same attempt count.
//
// All state in this package is single-goroutine; neither Tracker nor
// RandomBuilder nor Driver is safe for concurrent use.
package generator
