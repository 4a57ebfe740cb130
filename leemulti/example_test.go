package leemulti_test

import (
	"fmt"

	"github.com/gridwire/maze/leemulti"
	"github.com/gridwire/maze/maze"
)

func ExampleLeeMulti() {
	g := maze.New(3, 1)
	cs, err := leemulti.LeeMulti(g, maze.Points{{X: 0, Y: 0}, {X: 2, Y: 0}})
	if err != nil {
		panic(err)
	}
	g.Apply(cs)
	fmt.Println(g)
	// Output:
	// x━x
}
