package keypoint_test

import (
	"fmt"

	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/keypoint"
)

// ExampleSelect picks the two strongest peaks that are more than one pixel apart.
func ExampleSelect() {
	resp, _ := grid.FromRows([][]float64{
		{0, 0, 0, 0, 0},
		{0, 9, 8, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 6, 0},
	})
	kps, _ := keypoint.Select(resp, 5, 1)
	for _, k := range kps {
		fmt.Printf("(%d,%d) %.0f\n", k.X, k.Y, k.Score)
	}
	// Output:
	// (1,1) 9
	// (3,3) 6
}
