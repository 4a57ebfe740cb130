package bridge

import (
	"github.com/gridwire/maze/hadlock"
	"github.com/gridwire/maze/lee"
	"github.com/gridwire/maze/leemulti"
	"github.com/gridwire/maze/maze"
	"github.com/gridwire/maze/mikami"
	"github.com/gridwire/maze/stst"
)

// Route dispatches req to its named engine and returns the resulting
// change-set. g is read-only: no engine mutates it. Returns
// ErrUnknownEngine if req.Engine names none of the seven engines;
// otherwise whatever the dispatched engine itself returns.
func Route(g *maze.Grid, req Request) (maze.ChangeSet, error) {
	switch req.Engine {
	case Lee:
		return lee.Lee(g, req.X1, req.Y1, req.X2, req.Y2)
	case LeeMinCrossing:
		return lee.LeeMinCrossing(g, req.X1, req.Y1, req.X2, req.Y2)
	case LeeMinEdgeEffect:
		return lee.LeeMinEdgeEffect(g, req.X1, req.Y1, req.X2, req.Y2)
	case Hadlock:
		return hadlock.Hadlock(g, req.X1, req.Y1, req.X2, req.Y2)
	case MikamiTabuchi:
		return mikami.MikamiTabuchi(g, req.X1, req.Y1, req.X2, req.Y2)
	case LeeMulti:
		return leemulti.LeeMulti(g, req.Points)
	case STST:
		return stst.STST(g, req.Points)
	default:
		return nil, ErrUnknownEngine
	}
}

// RouteMut dispatches req exactly as Route does, applying the resulting
// change-set to g on success. g is left untouched on any error.
func RouteMut(g *maze.Grid, req Request) (bool, error) {
	cs, err := Route(g, req)
	if err != nil {
		return false, err
	}
	g.Apply(cs)

	return true, nil
}

// ChangeSetToTuples renders cs as the [[x, y, tag], ...] wire shape
// spec.md §6 names, for hosts that want the tuples directly rather than
// going through encoding/json.
func ChangeSetToTuples(cs maze.ChangeSet) [][3]any {
	out := make([][3]any, len(cs))
	for i, e := range cs {
		out[i] = [3]any{e.X, e.Y, int(e.State)}
	}

	return out
}

// PointsToTuples renders p as the [[x, y], ...] wire shape spec.md §6
// names.
func PointsToTuples(p maze.Points) [][2]int {
	out := make([][2]int, len(p))
	for i, pt := range p {
		out[i] = [2]int{pt.X, pt.Y}
	}

	return out
}

// Render is a pass-through to g's diagnostic string rendering.
func Render(g *maze.Grid) string {
	return g.String()
}
