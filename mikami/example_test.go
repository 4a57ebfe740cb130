package mikami_test

import (
	"fmt"

	"github.com/gridwire/maze/maze"
	"github.com/gridwire/maze/mikami"
)

func ExampleMikamiTabuchi() {
	g := maze.New(4, 1)
	cs, err := mikami.MikamiTabuchi(g, 0, 0, 3, 0)
	if err != nil {
		panic(err)
	}
	g.Apply(cs)
	fmt.Println(g)
	// Output:
	// x━━x
}
