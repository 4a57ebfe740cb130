package leemulti_test

import (
	"testing"

	"github.com/gridwire/maze/leemulti"
	"github.com/gridwire/maze/maze"
)

func BenchmarkLeeMulti(b *testing.B) {
	pts := maze.Points{{X: 0, Y: 0}, {X: 63, Y: 0}, {X: 0, Y: 63}, {X: 63, Y: 63}}
	for i := 0; i < b.N; i++ {
		g := maze.New(64, 64)
		if _, err := leemulti.LeeMulti(g, pts); err != nil {
			b.Fatal(err)
		}
	}
}
