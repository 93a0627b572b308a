// Package reasoner answers analysis questions about small feature models by
// bounded exhaustive enumeration.
//
// An Analyzer walks every feature subset that includes the root, keeps the
// ones satisfying the model's tree relations and cross-tree constraints, and
// derives its answers from that enumeration:
//
//   - Products: every valid configuration, as product values.
//   - NumberOfProducts: the exact count.
//   - Valid: whether at least one configuration exists.
//   - Variability: the count relative to 2^n - 1, the classic ratio of
//     realized to conceivable configurations.
//
// Enumeration cost is 2^(n-1) subset checks for an n-feature model, so the
// Analyzer refuses models above a configurable feature limit
// (DefaultFeatureLimit) with ErrModelTooLarge. This is deliberate: the
// package is ground truth for tests and small-model inspection, not a
// satisfiability solver.
//
// # Usage
//
//	count, err := reasoner.NumberOfProducts(model)
//
//	analyzer := reasoner.New(reasoner.WithFeatureLimit(16))
//	products, err := analyzer.Products(model)
package reasoner
