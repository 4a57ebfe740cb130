package maze

import (
	"encoding/json"
	"sort"
)

// Sorted returns the canonical view of p: sorted by (x, y) and
// deduplicated. p itself is left untouched.
func (p Points) Sorted() Points {
	out := make(Points, len(p))
	copy(out, p)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})

	deduped := out[:0]
	for i, pt := range out {
		if i > 0 && pt == out[i-1] {
			continue
		}
		deduped = append(deduped, pt)
	}

	return deduped
}

// tuplePoint is the JSON wire shape of one Point: [x, y].
type tuplePoint [2]int

// MarshalJSON encodes p as a sequence of [x, y] tuples, per spec.md §6.
func (p Points) MarshalJSON() ([]byte, error) {
	tuples := make([]tuplePoint, len(p))
	for i, pt := range p {
		tuples[i] = tuplePoint{pt.X, pt.Y}
	}

	return json.Marshal(tuples)
}

// UnmarshalJSON decodes a sequence of [x, y] tuples into p.
func (p *Points) UnmarshalJSON(data []byte) error {
	var tuples []tuplePoint
	if err := json.Unmarshal(data, &tuples); err != nil {
		return err
	}

	out := make(Points, len(tuples))
	for i, t := range tuples {
		out[i] = Point{X: t[0], Y: t[1]}
	}
	*p = out

	return nil
}
