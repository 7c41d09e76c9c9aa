package allocation_test

import (
	"fmt"

	"github.com/katalvlaran/optimods/allocation"
	"github.com/katalvlaran/optimods/table"
)

// ExampleSolve packs a 9kg bag from a small gear catalog.
func ExampleSolve() {
	gear := table.New()
	_ = gear.AddStrings("item", []string{"tent", "stove", "lamp"})
	_ = gear.AddNumbers("value", []float64{10, 6, 4})
	_ = gear.AddNumbers("weight", []float64{5, 4, 3})

	res, err := allocation.Solve(gear,
		allocation.Schema{Item: "item", Value: "value", Weight: "weight"}, 9)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("packed:", res.Items)
	fmt.Println("value:", res.Value)
	// Output:
	// packed: [tent stove]
	// value: 16
}
