package combin

import (
	"fmt"
	"math"
)

// Generator enumerates all k-element subsets of the index set {0..n-1} in
// lexicographic order. The zero value is not usable; construct with New.
type Generator struct {
	n       int
	k       int
	current []int
	started bool
	done    bool
}

// New creates a Generator over subsets of size k drawn from {0..n-1}.
// It panics if n or k is negative or k exceeds n; callers own argument
// validity, mirroring the contract of slice indexing.
func New(n, k int) *Generator {
	if n < 0 || k < 0 || k > n {
		panic(fmt.Sprintf("combin: invalid combination C(%d,%d)", n, k))
	}
	return &Generator{n: n, k: k, current: make([]int, k)}
}

// Next returns the next index subset in lexicographic order and true, or nil
// and false once all C(n,k) subsets have been produced. The returned slice is
// a fresh copy; callers may retain or mutate it freely.
func (g *Generator) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}

	if !g.started {
		// First subset is {0,1,...,k-1}; for k == 0 it is the empty set.
		for i := range g.current {
			g.current[i] = i
		}
		g.started = true
		if g.k == 0 {
			g.done = true
			return []int{}, true
		}
		return g.snapshot(), true
	}

	// Lexicographic successor: bump the rightmost index that still has
	// headroom, then restack everything to its right.
	i := g.k - 1
	for i >= 0 && g.current[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true
		return nil, false
	}
	g.current[i]++
	for j := i + 1; j < g.k; j++ {
		g.current[j] = g.current[j-1] + 1
	}
	return g.snapshot(), true
}

// Reset rewinds the Generator so the full sequence can be enumerated again.
func (g *Generator) Reset() {
	g.started = false
	g.done = false
}

// N returns the size of the index set being drawn from.
func (g *Generator) N() int { return g.n }

// K returns the subset size this Generator produces.
func (g *Generator) K() int { return g.k }

func (g *Generator) snapshot() []int {
	out := make([]int, g.k)
	copy(out, g.current)
	return out
}

// Count returns the binomial coefficient C(n,k), the number of subsets a
// Generator with the same arguments produces. Results that would overflow
// int64 saturate at math.MaxInt64. Count returns 0 when k < 0, n < 0, or
// k > n.
func Count(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k // C(n,k) == C(n,n-k); smaller k keeps intermediates low
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		// Multiply before dividing to stay exact: the running product of a
		// prefix is always divisible by i.
		next := result * int64(n-k+i)
		if next/int64(n-k+i) != result {
			return math.MaxInt64
		}
		result = next / int64(i)
	}
	return result
}
