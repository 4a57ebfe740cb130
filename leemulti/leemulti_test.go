package leemulti_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/leemulti"
	"github.com/gridwire/maze/maze"
)

func TestLeeMulti_ZeroTerminals(t *testing.T) {
	g := maze.New(3, 3)
	cs, err := leemulti.LeeMulti(g, nil)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestLeeMulti_OneTerminal(t *testing.T) {
	g := maze.New(3, 3)
	cs, err := leemulti.LeeMulti(g, maze.Points{{X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, maze.ChangeSet{{X: 1, Y: 1, State: cellstate.Blocked}}, cs)
}

func TestLeeMulti_TerminalNotEmpty(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(0, 0, 0, 0)
	_, err := leemulti.LeeMulti(g, maze.Points{{X: 0, Y: 0}, {X: 2, Y: 2}})
	require.ErrorIs(t, err, leemulti.ErrTerminalNotEmpty)
}

func TestLeeMulti_ConnectsThreeTerminals(t *testing.T) {
	g := maze.New(5, 5)
	pts := maze.Points{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}}

	ok, err := leemulti.LeeMultiMut(g, pts)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, g.Verify())
	for _, p := range pts {
		assert.Equal(t, cellstate.Blocked, g.Get(p.X, p.Y))
	}
}

func TestLeeMulti_NoRoute(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(1, 0, 1, 2)
	_, err := leemulti.LeeMulti(g, maze.Points{{X: 0, Y: 1}, {X: 2, Y: 1}})
	require.ErrorIs(t, err, leemulti.ErrNoRoute)
}

func TestLeeMultiMut_LeavesGridOnFailure(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(1, 0, 1, 2)
	before := g.Clone()

	ok, err := leemulti.LeeMultiMut(g, maze.Points{{X: 0, Y: 1}, {X: 2, Y: 1}})
	require.Error(t, err)
	require.False(t, ok)
	assert.Equal(t, before.String(), g.String())
}
