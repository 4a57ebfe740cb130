package stst_test

import (
	"fmt"

	"github.com/gridwire/maze/maze"
	"github.com/gridwire/maze/stst"
)

func ExampleSTST() {
	g := maze.New(3, 1)
	cs, err := stst.STST(g, maze.Points{{X: 0, Y: 0}, {X: 2, Y: 0}})
	if err != nil {
		panic(err)
	}
	g.Apply(cs)
	fmt.Println(g)
	// Output:
	// x━x
}
