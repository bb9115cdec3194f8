package prim_kruskal_test

import (
	"testing"

	"github.com/escaperoom/netstab/prim_kruskal"
)

func BenchmarkKruskal(b *testing.B) {
	edges := buildMediumGraph(500, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := prim_kruskal.Kruskal(500, edges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrim(b *testing.B) {
	edges := buildMediumGraph(500, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := prim_kruskal.Prim(500, edges, 0); err != nil {
			b.Fatal(err)
		}
	}
}
