// SPDX-License-Identifier: MIT

package measure_test

import (
	"fmt"
	"testing"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

// BenchmarkWuPalmer_BinaryTree compares two deep leaves of a complete binary
// tree of depth D (~2^D−1 concepts below the root).
func BenchmarkWuPalmer_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1

	t, _ := hierarchy.NewTree("root")
	_ = t.AddChild("1", "")
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		_ = t.AddChild(fmt.Sprintf("%d", 2*i), p)
		_ = t.AddChild(fmt.Sprintf("%d", 2*i+1), p)
	}
	wup, err := measure.NewWuPalmer(t)
	if err != nil {
		b.Fatal(err)
	}
	left, right := fmt.Sprintf("%d", nodeCount/2+1), fmt.Sprintf("%d", nodeCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wup.Compare(left, right)
	}
}

// BenchmarkPathLength_Chain measures cold single-source runs on a chain of N
// concepts; each iteration builds a fresh measure so the cache stays empty.
func BenchmarkPathLength_Chain(b *testing.B) {
	const N = 2000
	g, _ := hierarchy.NewGraph("chain")
	for i := 0; i < N; i++ {
		_ = g.AddConcept(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	last := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pl, _ := measure.NewPathLength(g)
		_, _ = pl.Compare("v0", last)
	}
}
