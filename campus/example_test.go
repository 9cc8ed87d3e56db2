package campus_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
)

// ExampleGraph_Nearest snaps a map click to the closest building.
func ExampleGraph_Nearest() {
	g, err := campus.NewGraph([]campus.Node{
		{ID: "lib", Category: campus.CategoryBuilding, X: 20, Y: 30, Name: "Library"},
		{ID: "j1", Category: campus.CategoryJunction, X: 24, Y: 30},
		{ID: "gym", Category: campus.CategoryBuilding, X: 60, Y: 35, Name: "Gym"},
	}, []campus.Edge{
		{From: "lib", To: "j1", Length: 4, Walkable: true},
		{From: "j1", To: "gym", Length: 36, Walkable: true},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	closest, _ := g.Nearest(25, 31)
	building, _ := g.Nearest(25, 31, campus.CategoryBuilding)
	fmt.Println(closest, building)
	// Output: j1 lib
}
