package product

import (
	"fmt"
)

// BoundedCollection is an insertion-ordered sequence of products with a fixed
// capacity set at construction. The capacity is a hard memory ceiling for
// product tracking: appends beyond it fail and nothing is evicted.
type BoundedCollection struct {
	capacity int
	items    []Product
}

// NewBoundedCollection creates an empty collection with the given capacity.
// The capacity must be positive, otherwise it panics.
func NewBoundedCollection(capacity int) *BoundedCollection {
	if capacity <= 0 {
		panic("product: bounded collection capacity must be positive")
	}
	return &BoundedCollection{capacity: capacity}
}

// Append adds p at the end of the collection. It returns ErrCapacityExceeded
// when the collection is already full, leaving the collection unchanged.
func (c *BoundedCollection) Append(p Product) error {
	if len(c.items) >= c.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, c.capacity)
	}
	c.items = append(c.items, p)
	return nil
}

// Len returns the number of products currently held.
func (c *BoundedCollection) Len() int {
	return len(c.items)
}

// Cap returns the fixed capacity.
func (c *BoundedCollection) Cap() int {
	return c.capacity
}

// At returns the product at index i in insertion order. It panics when i is
// out of range, like slice indexing.
func (c *BoundedCollection) At(i int) Product {
	return c.items[i]
}

// All returns the products in insertion order. The slice is a copy; the
// products themselves are shared references.
func (c *BoundedCollection) All() []Product {
	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

// RemoveIf deletes every product for which pred returns true, preserving the
// insertion order of survivors, and returns the number removed.
func (c *BoundedCollection) RemoveIf(pred func(Product) bool) int {
	kept := c.items[:0]
	removed := 0
	for _, p := range c.items {
		if pred(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	// Release trailing references so removed products can be collected.
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = nil
	}
	c.items = kept
	return removed
}
