package iddfs_test

import (
	"testing"

	"github.com/katalvlaran/vacuumworld/iddfs"
)

// BenchmarkSearch_Instance1 measures a full iterative-deepening run on the
// first built-in instance (about 2M expansions over limits 0..9).
func BenchmarkSearch_Instance1(b *testing.B) {
	w := instance1(b)
	start := w.Start()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = iddfs.Search(w, start, 10)
	}
}

// BenchmarkDepthLimited_8 measures one exhaustive depth-limited pass
// (5^0 + … + 5^8 expansions, no solution).
func BenchmarkDepthLimited_8(b *testing.B) {
	w := instance2(b)
	start := w.Start()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = iddfs.DepthLimited(w, start, 8)
	}
}
