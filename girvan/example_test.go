// Package girvan_test provides runnable examples for the Girvan–Newman
// partition sequence.
package girvan_test

import (
	"fmt"

	"github.com/katalvlaran/cloven/core"
	"github.com/katalvlaran/cloven/girvan"
)

// ExamplePartitioner splits a barbell graph — two triangles joined by a
// single bridge — with one removal step. The bridge carries every
// cross-triangle shortest path and falls first.
func ExamplePartitioner() {
	// 1) Build the barbell:
	//
	//	A───B   Y───Z
	//	 ╲ ╱     ╲ ╱
	//	  C───────X
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("C", "X", 0)
	g.AddEdge("X", "Y", 0)
	g.AddEdge("X", "Z", 0)
	g.AddEdge("Y", "Z", 0)

	// 2) Walk the sequence in the scanner idiom; the first partition is
	//    already the two-community split.
	p, err := girvan.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if p.Next() {
		fmt.Println(p.Partition())
	}
	// Output: [[A B C] [X Y Z]]
}

// ExampleEdgeBetweenness scores the edges of a path: the middle edge
// carries every crossing pair and dominates.
func ExampleEdgeBetweenness() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "D", 0)

	eb, _ := girvan.EdgeBetweenness(g)
	fmt.Println(eb[girvan.NewEdgeKey("A", "B")])
	fmt.Println(eb[girvan.NewEdgeKey("B", "C")])
	fmt.Println(eb[girvan.NewEdgeKey("C", "D")])
	// Output:
	// 3
	// 4
	// 3
}
