// Package core_test provides runnable examples for the Graph primitives.
// Each example is runnable via “go test -run Example”, showing both code
// and expected output.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/cloven/core"
)

// ExampleGraph_ConnectedComponents builds two islands and an isolated
// vertex, then enumerates the components deterministically.
func ExampleGraph_ConnectedComponents() {
	// 1) Create an unweighted, undirected graph.
	g := core.NewGraph()
	// 2) First island: A—B—C.
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	// 3) Second island: X—Y.
	g.AddEdge("X", "Y", 0)
	// 4) An isolated vertex Z.
	g.AddVertex("Z")

	// 5) Components come back sorted: nodes within each, components by
	//    their smallest member.
	for _, comp := range g.ConnectedComponents() {
		fmt.Println(comp)
	}
	// Output:
	// [A B C]
	// [X Y]
	// [Z]
}

// ExampleGraph_Clone shows that algorithms can mutate a clone while the
// original graph stays intact.
func ExampleGraph_Clone() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)

	working := g.Clone()
	working.RemoveEdgeBetween("A", "B")

	fmt.Println("original:", g.HasEdge("A", "B"))
	fmt.Println("clone:   ", working.HasEdge("A", "B"))
	// Output:
	// original: true
	// clone:    false
}
