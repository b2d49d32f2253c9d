package boundary

import "github.com/fumen-tools/pcbridge/internal/engine"

// This file pins the coordinate and rotation-name mapping between the
// engine's internal placement convention and sfinder's. The engine
// anchors a placement at the lower-left corner of the piece's bounding
// box; sfinder anchors at a shape-specific rotation center. The two
// tools also name rotation directions with opposite handedness, so the
// facing label is remapped independently of the positional offset.
//
// The offset table below is a compatibility table verified against
// sfinder's output, not something derivable from these declarations
// alone. Keep transform_test.go's fixtures in sync with any change.

// RotateName maps an internal facing to sfinder's rotation name.
// Internal right (one clockwise step) is sfinder's "Left" and internal
// left is sfinder's "Right"; the two vertical facings keep their names.
func RotateName(f engine.Facing) string {
	switch f {
	case engine.FacingUp:
		return "Spawn"
	case engine.FacingRight:
		return "Left"
	case engine.FacingDown:
		return "Reverse"
	case engine.FacingLeft:
		return "Right"
	}
	return "Spawn"
}

type centerOffset struct {
	dx, dy int
}

// centerOffsets[kind][facing] is added to the internal reference point to
// reach sfinder's rotation center. Every entry is zero except the I piece
// in its two vertical facings, where sfinder's center sits one cell below
// the bounding-box corner the engine reports.
var centerOffsets = [engine.NumPieceKinds + 1][engine.NumFacings]centerOffset{
	engine.PieceI: {
		engine.FacingRight: {dx: 0, dy: -1},
		engine.FacingLeft:  {dx: 0, dy: -1},
	},
}

// TransformPlacement converts a solver placement into sfinder's
// coordinate convention, returning the adjusted x, y and rotation name.
func TransformPlacement(p engine.Placement) (x, y int, rotate string) {
	var off centerOffset
	if int(p.Kind) < len(centerOffsets) && int(p.Facing) < engine.NumFacings {
		off = centerOffsets[p.Kind][p.Facing]
	}
	return p.X + off.dx, p.Y + off.dy, RotateName(p.Facing)
}
