package maze

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gridwire/maze/cellstate"
)

// Dedup normalizes cs by address: sort by (x, y), reverse, then drop all
// but the first occurrence of each (x, y). Because the reversed order
// visits the original last-write first, this keeps the *last* write per
// address from the original order — e.g. STST relies on this so a
// terminal's Blocked write always overrides an earlier stub write at the
// same cell. The input cs is left untouched; Dedup returns a new slice
// holding one write per address, sorted by (x, y) ascending.
func (cs ChangeSet) Dedup() ChangeSet {
	sorted := make(ChangeSet, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}

	seen := make(map[[2]int]bool, len(sorted))
	out := make(ChangeSet, 0, len(sorted))
	for _, e := range sorted {
		key := [2]int{e.X, e.Y}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// tupleEdit is the JSON wire shape of one Edit: [x, y, state-tag].
type tupleEdit [3]int

// MarshalJSON encodes cs as a sequence of [x, y, state] tuples, per
// spec.md §6.
func (cs ChangeSet) MarshalJSON() ([]byte, error) {
	tuples := make([]tupleEdit, len(cs))
	for i, e := range cs {
		tuples[i] = tupleEdit{e.X, e.Y, int(e.State)}
	}

	return json.Marshal(tuples)
}

// UnmarshalJSON decodes a sequence of [x, y, state] tuples into cs.
func (cs *ChangeSet) UnmarshalJSON(data []byte) error {
	var tuples []tupleEdit
	if err := json.Unmarshal(data, &tuples); err != nil {
		return fmt.Errorf("maze: decoding change-set: %w", err)
	}

	out := make(ChangeSet, len(tuples))
	for i, t := range tuples {
		out[i] = Edit{X: t[0], Y: t[1], State: cellstate.State(t[2])}
	}
	*cs = out

	return nil
}
