package mikami_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/maze"
	"github.com/gridwire/maze/mikami"
)

func TestMikamiTabuchi_SameCell(t *testing.T) {
	g := maze.New(3, 3)
	cs, err := mikami.MikamiTabuchi(g, 1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, maze.ChangeSet{{X: 1, Y: 1, State: cellstate.Blocked}}, cs)
}

func TestMikamiTabuchi_EndpointNotEmpty(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(0, 0, 0, 0)
	_, err := mikami.MikamiTabuchi(g, 0, 0, 2, 2)
	require.ErrorIs(t, err, mikami.ErrEndpointNotEmpty)
}

func TestMikamiTabuchi_StraightLine(t *testing.T) {
	g := maze.New(4, 1)
	cs, err := mikami.MikamiTabuchi(g, 0, 0, 3, 0)
	require.NoError(t, err)

	out := g.ApplyPure(cs)
	assert.True(t, out.Verify())
	assert.Equal(t, cellstate.Blocked, out.Get(0, 0))
	assert.Equal(t, cellstate.Blocked, out.Get(3, 0))
}

func TestMikamiTabuchi_FindsRouteAroundObstacle(t *testing.T) {
	g := maze.New(5, 5)
	g.Fill(2, 0, 2, 3)

	ok, err := mikami.MikamiTabuchiMut(g, 0, 0, 4, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, g.Verify())
}

func TestMikamiTabuchi_NoRoute(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(1, 0, 1, 2)
	_, err := mikami.MikamiTabuchi(g, 0, 1, 2, 1)
	require.ErrorIs(t, err, mikami.ErrNoRoute)
}

func TestMikamiTabuchiMut_LeavesGridOnFailure(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(1, 0, 1, 2)
	before := g.Clone()

	ok, err := mikami.MikamiTabuchiMut(g, 0, 1, 2, 1)
	require.Error(t, err)
	require.False(t, ok)
	assert.Equal(t, before.String(), g.String())
}
