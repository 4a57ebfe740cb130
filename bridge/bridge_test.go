package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwire/maze/bridge"
	"github.com/gridwire/maze/cellstate"
	"github.com/gridwire/maze/lee"
	"github.com/gridwire/maze/maze"
	"github.com/gridwire/maze/stst"
)

func TestRoute_UnknownEngine(t *testing.T) {
	g := maze.New(3, 3)
	_, err := bridge.Route(g, bridge.Request{Engine: "no-such-engine"})
	require.ErrorIs(t, err, bridge.ErrUnknownEngine)
}

func TestRoute_Lee(t *testing.T) {
	g := maze.New(4, 1)
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.Lee, X1: 0, Y1: 0, X2: 3, Y2: 0})
	require.NoError(t, err)

	out := g.ApplyPure(cs)
	assert.True(t, out.Verify())
	assert.Equal(t, cellstate.Blocked, out.Get(0, 0))
	assert.Equal(t, cellstate.LR, out.Get(1, 0))
	assert.Equal(t, cellstate.Blocked, out.Get(3, 0))
}

func TestRoute_LeeMinCrossing(t *testing.T) {
	g := maze.New(4, 1)
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.LeeMinCrossing, X1: 0, Y1: 0, X2: 3, Y2: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, cs)
}

func TestRoute_LeeMinEdgeEffect(t *testing.T) {
	g := maze.New(4, 1)
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.LeeMinEdgeEffect, X1: 0, Y1: 0, X2: 3, Y2: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, cs)
}

func TestRoute_Hadlock(t *testing.T) {
	g := maze.New(4, 1)
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.Hadlock, X1: 0, Y1: 0, X2: 3, Y2: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, cs)
}

func TestRoute_MikamiTabuchi(t *testing.T) {
	g := maze.New(4, 1)
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.MikamiTabuchi, X1: 0, Y1: 0, X2: 3, Y2: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, cs)
}

func TestRoute_LeeMulti(t *testing.T) {
	g := maze.New(3, 1)
	pts := maze.Points{{X: 0, Y: 0}, {X: 2, Y: 0}}
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.LeeMulti, Points: pts})
	require.NoError(t, err)
	assert.NotEmpty(t, cs)
}

func TestRoute_STST(t *testing.T) {
	g := maze.New(3, 1)
	pts := maze.Points{{X: 0, Y: 0}, {X: 2, Y: 0}}
	cs, err := bridge.Route(g, bridge.Request{Engine: bridge.STST, Points: pts})
	require.NoError(t, err)
	assert.NotEmpty(t, cs)
}

func TestRoute_PropagatesEngineError(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(0, 0, 0, 0)
	_, err := bridge.Route(g, bridge.Request{Engine: bridge.Lee, X1: 0, Y1: 0, X2: 2, Y2: 2})
	require.ErrorIs(t, err, lee.ErrEndpointNotEmpty)
}

func TestRoute_PropagatesSTSTInfeasible(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(0, 0, 2, 2)
	g.Clean(0, 0, 0, 0)
	g.Clean(2, 2, 2, 2)
	g.Clean(0, 2, 0, 2)
	pts := maze.Points{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	_, err := bridge.Route(g, bridge.Request{Engine: bridge.STST, Points: pts})
	require.ErrorIs(t, err, stst.ErrNoFeasibleTrunk)
}

func TestRouteMut_AppliesOnSuccess(t *testing.T) {
	g := maze.New(4, 1)
	ok, err := bridge.RouteMut(g, bridge.Request{Engine: bridge.Lee, X1: 0, Y1: 0, X2: 3, Y2: 0})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cellstate.Blocked, g.Get(0, 0))
	assert.True(t, g.Verify())
}

func TestRouteMut_LeavesGridOnFailure(t *testing.T) {
	g := maze.New(3, 3)
	g.Fill(0, 0, 0, 0)
	before := g.Clone()

	ok, err := bridge.RouteMut(g, bridge.Request{Engine: bridge.Lee, X1: 0, Y1: 0, X2: 2, Y2: 2})
	require.Error(t, err)
	require.False(t, ok)
	assert.Equal(t, before.String(), g.String())
}

func TestChangeSetToTuples(t *testing.T) {
	cs := maze.ChangeSet{
		{X: 0, Y: 0, State: cellstate.Blocked},
		{X: 1, Y: 0, State: cellstate.LR},
	}
	assert.Equal(t, [][3]any{{0, 0, int(cellstate.Blocked)}, {1, 0, int(cellstate.LR)}}, bridge.ChangeSetToTuples(cs))
}

func TestPointsToTuples(t *testing.T) {
	pts := maze.Points{{X: 0, Y: 0}, {X: 2, Y: 1}}
	assert.Equal(t, [][2]int{{0, 0}, {2, 1}}, bridge.PointsToTuples(pts))
}

func TestRender(t *testing.T) {
	g := maze.New(3, 1)
	g.Apply(maze.ChangeSet{{X: 0, Y: 0, State: cellstate.Blocked}})
	assert.Equal(t, g.String(), bridge.Render(g))
}

func TestRoute_HadlockMatchesLeeOnEmptyGrid(t *testing.T) {
	g := maze.New(10, 10)
	leeCS, err := bridge.Route(g, bridge.Request{Engine: bridge.Lee, X1: 1, Y1: 1, X2: 8, Y2: 6})
	require.NoError(t, err)
	hadlockCS, err := bridge.Route(g, bridge.Request{Engine: bridge.Hadlock, X1: 1, Y1: 1, X2: 8, Y2: 6})
	require.NoError(t, err)
	assert.Equal(t, len(leeCS), len(hadlockCS))
}
