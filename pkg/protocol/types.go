package protocol

// Wire types for the solver module's response payload.
// The JSON shape and the coordinate/rotation-name convention follow the
// third-party sfinder tool; these types are the host-side mirror of what
// the module serializes.

// The four sfinder rotation names.
const (
	RotateSpawn   = "Spawn"
	RotateRight   = "Right"
	RotateReverse = "Reverse"
	RotateLeft    = "Left"
)

// Placement is one move record: a piece code, a rotation name, and the
// rotation-center position in board coordinates (row 0 at the bottom).
type Placement struct {
	Piece  string `json:"piece"`
	Rotate string `json:"rotate"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// Solution is an ordered placement sequence; the first placement is the
// first move.
type Solution struct {
	PatternSize int         `json:"patternSize"`
	Placements  []Placement `json:"placements"`
}

// Result is the top-level response payload. On success there is at most
// one solution; on failure Error names the cause.
type Result struct {
	Success       bool       `json:"success"`
	Solutions     []Solution `json:"solutions,omitempty"`
	SolutionCount int        `json:"solutionCount,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// FirstSolution returns the first solution, or nil when the result is a
// failure or carries none.
func (r *Result) FirstSolution() *Solution {
	if !r.Success || len(r.Solutions) == 0 {
		return nil
	}
	return &r.Solutions[0]
}
