package cellstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwire/maze/cellstate"
)

func TestDirection_Opposite(t *testing.T) {
	cases := map[cellstate.Direction]cellstate.Direction{
		cellstate.L: cellstate.R,
		cellstate.R: cellstate.L,
		cellstate.U: cellstate.D,
		cellstate.D: cellstate.U,
	}
	for d, want := range cases {
		assert.Equal(t, want, d.Opposite(), "opposite of %s", d)
	}
}

func TestDirection_Offset(t *testing.T) {
	dx, dy := cellstate.L.Offset()
	assert.Equal(t, -1, dx)
	assert.Equal(t, 0, dy)

	dx, dy = cellstate.R.Offset()
	assert.Equal(t, 1, dx)
	assert.Equal(t, 0, dy)

	dx, dy = cellstate.U.Offset()
	assert.Equal(t, 0, dx)
	assert.Equal(t, 1, dy)

	dx, dy = cellstate.D.Offset()
	assert.Equal(t, 0, dx)
	assert.Equal(t, -1, dy)
}

func TestCanCross(t *testing.T) {
	require.True(t, cellstate.CanCross(cellstate.L, cellstate.Empty))
	require.True(t, cellstate.CanCross(cellstate.R, cellstate.Empty))
	require.True(t, cellstate.CanCross(cellstate.L, cellstate.UD))
	require.True(t, cellstate.CanCross(cellstate.R, cellstate.UD))
	require.True(t, cellstate.CanCross(cellstate.U, cellstate.LR))
	require.True(t, cellstate.CanCross(cellstate.D, cellstate.LR))

	require.False(t, cellstate.CanCross(cellstate.L, cellstate.LR))
	require.False(t, cellstate.CanCross(cellstate.U, cellstate.UD))
	require.False(t, cellstate.CanCross(cellstate.L, cellstate.Blocked))
	require.False(t, cellstate.CanCross(cellstate.L, cellstate.Cross))
	require.False(t, cellstate.CanCross(cellstate.L, cellstate.LU))
}

func TestWillCross(t *testing.T) {
	require.True(t, cellstate.WillCross(cellstate.L, cellstate.UD))
	require.False(t, cellstate.WillCross(cellstate.L, cellstate.Empty))
	require.False(t, cellstate.WillCross(cellstate.U, cellstate.UD))
}

func TestMerge_Straight(t *testing.T) {
	// Traveling rightward through an Empty cell: enters from L, exits to R.
	got := cellstate.Merge(cellstate.Empty, cellstate.R, cellstate.R)
	assert.Equal(t, cellstate.LR, got)

	got = cellstate.Merge(cellstate.Empty, cellstate.U, cellstate.U)
	assert.Equal(t, cellstate.UD, got)
}

func TestMerge_Elbow(t *testing.T) {
	// Arrived moving R (so enters from L), turns to exit U.
	got := cellstate.Merge(cellstate.Empty, cellstate.U, cellstate.R)
	assert.Equal(t, cellstate.LU, got)

	// Arrived moving U (enters from D), turns to exit R.
	got = cellstate.Merge(cellstate.Empty, cellstate.R, cellstate.U)
	assert.Equal(t, cellstate.RD, got)
}

func TestMerge_Crossing(t *testing.T) {
	// Existing horizontal straight receives a vertical traversal -> Cross.
	got := cellstate.Merge(cellstate.LR, cellstate.U, cellstate.U)
	assert.Equal(t, cellstate.Cross, got)
}

func TestMerge_TJunction(t *testing.T) {
	// Existing LR straight, path arrives moving rightward (entering
	// through L, already part of LR) and turns to exit U: merges in bit
	// U on top of LR (L|R) -> L|R|U = LUR.
	got := cellstate.Merge(cellstate.LR, cellstate.U, cellstate.R)
	assert.Equal(t, cellstate.LUR, got)
}

func TestMerge_BlockedAbsorbing(t *testing.T) {
	got := cellstate.Merge(cellstate.Blocked, cellstate.L, cellstate.R)
	assert.Equal(t, cellstate.Blocked, got)
}

func TestFromEdges(t *testing.T) {
	assert.Equal(t, cellstate.LR, cellstate.FromEdges(true, true, false, false))
	assert.Equal(t, cellstate.LUR, cellstate.FromEdges(true, true, true, false))
	assert.Equal(t, cellstate.Cross, cellstate.FromEdges(true, true, true, true))
	assert.Equal(t, cellstate.RU, cellstate.FromEdges(false, true, true, false))
}

func TestFromEdges_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() {
		cellstate.FromEdges(true, false, false, false)
	})
	assert.Panics(t, func() {
		cellstate.FromEdges(false, false, false, false)
	})
}

func TestMerge_InvalidPanics(t *testing.T) {
	// entryDir == Opposite(prevDir) folds the path back on itself: only
	// one bit would be set, which Merge refuses to classify.
	assert.Panics(t, func() {
		cellstate.Merge(cellstate.Empty, cellstate.R, cellstate.L)
	})
}
