// Package combin provides deterministic enumeration of k-element index
// subsets, the combinatorial primitive behind or-group product expansion.
//
// A Generator walks all C(n,k) subsets of {0..n-1} in lexicographic order,
// producing each subset as a strictly increasing index slice. Enumeration is
// lazy: the next subset is computed on demand, so arbitrarily large
// combination spaces cost O(k) memory.
//
// # Usage
//
//	gen := combin.New(4, 2)
//	for indices, ok := gen.Next(); ok; indices, ok = gen.Next() {
//		fmt.Println(indices) // [0 1], [0 2], [0 3], [1 2], [1 3], [2 3]
//	}
//
// A Generator is restartable via Reset and single-use between resets. It is
// not safe for concurrent use; create one per goroutine instead.
package combin
