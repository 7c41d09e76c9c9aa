package assignment_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/assignment"
)

// ExampleSolve assigns two workers to two tasks at minimum total cost.
func ExampleSolve() {
	cost := mat.NewDense(2, 2, []float64{
		1, 4,
		4, 1,
	})

	res, err := assignment.Solve(cost, []string{"ann", "bob"}, []string{"paint", "wire"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range res.Pairs {
		fmt.Printf("%s does %s\n", p[0], p[1])
	}
	fmt.Println("total cost:", res.Cost)
	// Output:
	// ann does paint
	// bob does wire
	// total cost: 2
}
