package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/core"
	"github.com/katalvlaran/optimods/shortestpath"
)

// ExampleSolve routes across a small network and prints the node
// sequence the unit of flow travels.
func ExampleSolve() {
	g := core.NewGraph()
	_ = g.AddEdge("depot", "hub", core.WithCost(3))
	_ = g.AddEdge("hub", "store", core.WithCost(2))
	_ = g.AddEdge("depot", "store", core.WithCost(9))

	res, err := shortestpath.Solve(canon.GraphOf(g), "depot", "store")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Println(res.Cost)
	// Output:
	// [depot hub store]
	// 5
}
