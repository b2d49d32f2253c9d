package boundary

import (
	"testing"

	"github.com/fumen-tools/pcbridge/internal/engine"
)

var allKinds = []engine.PieceKind{
	engine.PieceI, engine.PieceO, engine.PieceT, engine.PieceS,
	engine.PieceZ, engine.PieceL, engine.PieceJ,
}

var allFacings = []engine.Facing{
	engine.FacingUp, engine.FacingRight, engine.FacingDown, engine.FacingLeft,
}

func TestRotateNameHandedness(t *testing.T) {
	// Internal clockwise ("right") is sfinder's "Left" and vice versa.
	tests := []struct {
		facing engine.Facing
		want   string
	}{
		{engine.FacingUp, "Spawn"},
		{engine.FacingRight, "Left"},
		{engine.FacingDown, "Reverse"},
		{engine.FacingLeft, "Right"},
	}
	for _, tt := range tests {
		if got := RotateName(tt.facing); got != tt.want {
			t.Errorf("RotateName(%v) = %q, want %q", tt.facing, got, tt.want)
		}
	}
}

func TestCenterOffsetFixtures(t *testing.T) {
	// Pinned against sfinder output. The only nonzero entries are the
	// I piece's two vertical facings, one cell down.
	for _, kind := range allKinds {
		for _, facing := range allFacings {
			p := engine.Placement{Kind: kind, Facing: facing, X: 4, Y: 7}
			x, y, _ := TransformPlacement(p)

			wantX, wantY := 4, 7
			if kind == engine.PieceI &&
				(facing == engine.FacingRight || facing == engine.FacingLeft) {
				wantY = 6
			}
			if x != wantX || y != wantY {
				t.Errorf("TransformPlacement(%v, %v) = (%d, %d), want (%d, %d)",
					kind, facing, x, y, wantX, wantY)
			}
		}
	}
}

func TestTransformPlacementIVertical(t *testing.T) {
	tests := []struct {
		facing     engine.Facing
		wantY      int
		wantRotate string
	}{
		{engine.FacingUp, 0, "Spawn"},
		{engine.FacingRight, -1, "Left"},
		{engine.FacingDown, 0, "Reverse"},
		{engine.FacingLeft, -1, "Right"},
	}
	for _, tt := range tests {
		p := engine.Placement{Kind: engine.PieceI, Facing: tt.facing, X: 0, Y: 0}
		x, y, rotate := TransformPlacement(p)
		if x != 0 || y != tt.wantY || rotate != tt.wantRotate {
			t.Errorf("I %v: got (%d, %d, %q), want (0, %d, %q)",
				tt.facing, x, y, rotate, tt.wantY, tt.wantRotate)
		}
	}
}
