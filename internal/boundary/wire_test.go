package boundary

import (
	"testing"

	"github.com/fumen-tools/pcbridge/internal/engine"
)

func TestEncodeSolutionExactBytes(t *testing.T) {
	buf := NewResultBuffer(DefaultBufferCapacity)
	buf.EncodeSolution([]engine.Placement{
		{Kind: engine.PieceT, Facing: engine.FacingUp, X: 4, Y: 0},
		{Kind: engine.PieceI, Facing: engine.FacingRight, X: 0, Y: 3},
	})

	want := `{"success":true,"solutions":[{"patternSize":2,"placements":[` +
		`{"piece":"T","rotate":"Spawn","x":4,"y":0},` +
		`{"piece":"I","rotate":"Left","x":0,"y":2}` +
		`]}],"solutionCount":1}`
	got := string(buf.Bytes())
	if got != want+"\x00" {
		t.Errorf("payload mismatch:\n got  %q\n want %q", got, want+"\x00")
	}
	if buf.Len() != len(want) {
		t.Errorf("Len = %d, want %d", buf.Len(), len(want))
	}
}

func TestEncodeSolutionEmptyPlacements(t *testing.T) {
	buf := NewResultBuffer(DefaultBufferCapacity)
	buf.EncodeSolution(nil)

	want := `{"success":true,"solutions":[{"patternSize":0,"placements":[]}],"solutionCount":1}` + "\x00"
	if got := string(buf.Bytes()); got != want {
		t.Errorf("payload mismatch:\n got  %q\n want %q", got, want)
	}
}

func TestEncodeErrorPayloads(t *testing.T) {
	tests := []struct {
		kind       ErrorKind
		solverName string
		want       string
	}{
		{ErrNoValidPieces, "", `{"success":false,"error":"NoValidPieces"}`},
		{ErrInsufficientPieces, "", `{"success":false,"error":"InsufficientPieces"}`},
		{ErrModelUnavailable, "", `{"success":false,"error":"ModelUnavailable"}`},
		{ErrSolverFailure, "NoPcFound", `{"success":false,"error":"NoPcFound"}`},
		{ErrBufferOverflow, "", `{"success":false,"error":"Buffer overflow"}`},
	}

	buf := NewResultBuffer(DefaultBufferCapacity)
	for _, tt := range tests {
		buf.EncodeError(tt.kind, tt.solverName)
		if got := string(buf.Bytes()); got != tt.want+"\x00" {
			t.Errorf("EncodeError(%d): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEncodeSolutionOverflowSubstitutesErrorPayload(t *testing.T) {
	// The minimum capacity cannot hold even one placement record, so a
	// real solution must degrade to the canonical overflow payload with
	// no trace of the partial serialization.
	buf := NewResultBuffer(1) // clamped up to the minimum

	placements := make([]engine.Placement, 4)
	for i := range placements {
		placements[i] = engine.Placement{Kind: engine.PieceO, Facing: engine.FacingUp, X: i, Y: 0}
	}
	buf.EncodeSolution(placements)

	want := `{"success":false,"error":"Buffer overflow"}` + "\x00"
	if got := string(buf.Bytes()); got != want {
		t.Errorf("overflow payload = %q, want %q", got, want)
	}
}

func TestResultBufferNeverWritesPastCapacity(t *testing.T) {
	const capacity = minBufferCapacity
	buf := NewResultBuffer(capacity)

	// Sized well past the capacity.
	placements := make([]engine.Placement, 32)
	for i := range placements {
		placements[i] = engine.Placement{Kind: engine.PieceL, Facing: engine.FacingDown, X: 9, Y: 23}
	}
	buf.EncodeSolution(placements)

	if buf.Cap() != capacity {
		t.Fatalf("Cap = %d, want %d", buf.Cap(), capacity)
	}
	if buf.Len() >= capacity {
		t.Errorf("Len = %d, must stay below capacity %d", buf.Len(), capacity)
	}
	if out := buf.Bytes(); out[len(out)-1] != 0 {
		t.Error("payload is not null-terminated")
	}
}

func TestEncodeErrorOversizedSolverName(t *testing.T) {
	buf := NewResultBuffer(minBufferCapacity)

	name := make([]byte, 2*minBufferCapacity)
	for i := range name {
		name[i] = 'e'
	}
	buf.EncodeError(ErrSolverFailure, string(name))

	want := `{"success":false,"error":"Buffer overflow"}` + "\x00"
	if got := string(buf.Bytes()); got != want {
		t.Errorf("oversized name payload = %q, want %q", got, want)
	}
}

func TestResultLength(t *testing.T) {
	buf := NewResultBuffer(DefaultBufferCapacity)
	buf.EncodeError(ErrNoValidPieces, "")

	out := buf.Bytes()
	if got := ResultLength(out); got != buf.Len() {
		t.Errorf("ResultLength = %d, want %d", got, buf.Len())
	}

	// No terminator anywhere: the scan stops at the physical end.
	raw := []byte{'a', 'b', 'c'}
	if got := ResultLength(raw); got != len(raw) {
		t.Errorf("unterminated buffer: ResultLength = %d, want %d", got, len(raw))
	}
}
