package girvan_test

import (
	"testing"

	"github.com/katalvlaran/cloven/builder"
	"github.com/katalvlaran/cloven/girvan"
)

func BenchmarkEdgeBetweenness_Sparse(b *testing.B) {
	g, err := builder.RandomSparse(200, 0.05, 3)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = girvan.EdgeBetweenness(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPartitioner_FirstStep(b *testing.B) {
	g, err := builder.Caveman(8, 6)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := girvan.New(g)
		if err != nil {
			b.Fatal(err)
		}
		if !p.Next() {
			b.Fatal("expected at least one step")
		}
	}
}

func BenchmarkPartitions_FullSequence(b *testing.B) {
	g, err := builder.Caveman(4, 5)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = girvan.Partitions(g); err != nil {
			b.Fatal(err)
		}
	}
}
