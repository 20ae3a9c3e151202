package explore_test

import (
	"fmt"

	"github.com/katalvlaran/pressure/explore"
	"github.com/katalvlaran/pressure/internal/fixture"
)

// ExampleSolve runs both variants on the worked ten-valve network.
func ExampleSolve() {
	g := fixture.ExampleGraph()

	solo, err := explore.Solve(g, 30, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	duo, err := explore.Solve(g, 26, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(solo.Best)
	fmt.Println(duo.Best)
	// Output:
	// 1651
	// 1707
}
