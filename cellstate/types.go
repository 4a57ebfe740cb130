package cellstate

// State classifies a grid cell by which of its four edges carry wire.
type State uint8

const (
	// Empty is a cell carrying no wire.
	Empty State = iota
	// Blocked is an obstacle or a terminal endpoint. It is absorbing
	// under Merge and cannot be entered by any Direction.
	Blocked
	// LR is a horizontal straight (Left-Right).
	LR
	// UD is a vertical straight (Up-Down).
	UD
	// LU is an elbow occupying the Left and Up edges.
	LU
	// RU is an elbow occupying the Right and Up edges.
	RU
	// LD is an elbow occupying the Left and Down edges.
	LD
	// RD is an elbow occupying the Right and Down edges.
	RD
	// LUR is a T-junction occupying Left, Up, and Right.
	LUR
	// URD is a T-junction occupying Up, Right, and Down.
	URD
	// RDL is a T-junction occupying Right, Down, and Left.
	RDL
	// DLU is a T-junction occupying Down, Left, and Up.
	DLU
	// Cross occupies all four edges.
	Cross
)

// String renders the state's name for diagnostics.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Blocked:
		return "Blocked"
	case LR:
		return "LR"
	case UD:
		return "UD"
	case LU:
		return "LU"
	case RU:
		return "RU"
	case LD:
		return "LD"
	case RD:
		return "RD"
	case LUR:
		return "LUR"
	case URD:
		return "URD"
	case RDL:
		return "RDL"
	case DLU:
		return "DLU"
	case Cross:
		return "Cross"
	default:
		return "Invalid"
	}
}

// Direction is one of the four compass directions a wire may travel.
type Direction uint8

const (
	// L is leftward travel (-x).
	L Direction = iota
	// R is rightward travel (+x).
	R
	// U is upward travel (+y).
	U
	// D is downward travel (-y).
	D
)

// String renders the direction's name for diagnostics.
func (d Direction) String() string {
	switch d {
	case L:
		return "L"
	case R:
		return "R"
	case U:
		return "U"
	case D:
		return "D"
	default:
		return "Invalid"
	}
}

// edge bit values, over which every non-Blocked State is a bitmask.
const (
	bitL = 1 << iota
	bitR
	bitU
	bitD
)

// bit returns d's single-bit contribution to an edge mask.
func bit(d Direction) int {
	switch d {
	case L:
		return bitL
	case R:
		return bitR
	case U:
		return bitU
	case D:
		return bitD
	default:
		panic("cellstate: invalid Direction")
	}
}

// Offset returns the unit (dx, dy) step of traveling in Direction d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case L:
		return -1, 0
	case R:
		return 1, 0
	case U:
		return 0, 1
	case D:
		return 0, -1
	default:
		panic("cellstate: invalid Direction")
	}
}

// stateToMask maps every mask-representable State (everything but Blocked)
// to its 4-bit edge mask.
var stateToMask = map[State]int{
	Empty: 0,
	LR:    bitL | bitR,
	UD:    bitU | bitD,
	LU:    bitL | bitU,
	RU:    bitR | bitU,
	LD:    bitL | bitD,
	RD:    bitR | bitD,
	LUR:   bitL | bitU | bitR,
	URD:   bitU | bitR | bitD,
	RDL:   bitR | bitD | bitL,
	DLU:   bitD | bitL | bitU,
	Cross: bitL | bitR | bitU | bitD,
}

// maskToState is the inverse of stateToMask. Single-bit masks (1, 2, 4, 8)
// have no entry: Merge always sets exactly two bits (the invariant the
// spec names explicitly), so a single-bit mask reaching maskToState
// signals a caller bug.
var maskToState = func() map[int]State {
	m := make(map[int]State, len(stateToMask))
	for s, mask := range stateToMask {
		m[mask] = s
	}
	return m
}()
