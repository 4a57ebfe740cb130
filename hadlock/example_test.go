package hadlock_test

import (
	"fmt"

	"github.com/gridwire/maze/hadlock"
	"github.com/gridwire/maze/maze"
)

func ExampleHadlock() {
	g := maze.New(4, 1)
	cs, err := hadlock.Hadlock(g, 0, 0, 3, 0)
	if err != nil {
		panic(err)
	}
	g.Apply(cs)
	fmt.Println(g)
	// Output:
	// x━━x
}
