package combin_test

import (
	"testing"

	"github.com/Roldans/FaMA/pkg/combin"
)

func BenchmarkGenerator(b *testing.B) {
	b.Run("C(10,5)", func(b *testing.B) {
		g := combin.New(10, 5)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.Reset()
			for _, ok := g.Next(); ok; _, ok = g.Next() {
			}
		}
	})

	b.Run("C(20,3)", func(b *testing.B) {
		g := combin.New(20, 3)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.Reset()
			for _, ok := g.Next(); ok; _, ok = g.Next() {
			}
		}
	})
}

func BenchmarkCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		combin.Count(52, 26)
	}
}
