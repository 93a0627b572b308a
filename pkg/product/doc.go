// Package product provides the product representation used across the
// toolkit: a Product is the set of features forming one valid configuration
// of a feature model, and a BoundedCollection is an insertion-ordered list of
// products with a hard capacity.
//
// Products are plain sets with cheap structural copy (Clone); branching
// choices during product tracking clone a product rather than sharing state
// between alternatives. The BoundedCollection capacity is a memory ceiling,
// not a cache: appending beyond it fails with ErrCapacityExceeded and nothing
// is ever evicted.
//
// # Concurrency
//
// Neither Product nor BoundedCollection is safe for concurrent use. Product
// tracking is strictly single-threaded; see the generator package.
package product
