package boundary

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fumen-tools/pcbridge/internal/engine"
	"github.com/fumen-tools/pcbridge/internal/solve"
	"github.com/fumen-tools/pcbridge/pkg/protocol"
)

// fakeSolver records its input and plays back canned output.
type fakeSolver struct {
	placements []engine.Placement
	err        error
	solveFn    func(*engine.GameState, int, int) ([]engine.Placement, error)

	gotState     *engine.GameState
	gotHeight    int
	gotMaxPieces int
	closed       int
}

func (s *fakeSolver) Solve(state *engine.GameState, height, maxPieces int) ([]engine.Placement, error) {
	s.gotState = state
	s.gotHeight = height
	s.gotMaxPieces = maxPieces
	if s.solveFn != nil {
		return s.solveFn(state, height, maxPieces)
	}
	return s.placements, s.err
}

func (s *fakeSolver) Close() {
	s.closed++
}

type fakeProvider struct {
	solver   *fakeSolver
	err      error
	acquired int
}

func (p *fakeProvider) Acquire() (solve.Solver, error) {
	p.acquired++
	if p.err != nil {
		return nil, p.err
	}
	return p.solver, nil
}

// decodePayload parses guest output through the host-side mirror types,
// so the two sides of the protocol are checked against each other.
func decodePayload(t *testing.T, raw []byte) protocol.Result {
	t.Helper()
	n := ResultLength(raw)
	var p protocol.Result
	if err := json.Unmarshal(raw[:n], &p); err != nil {
		t.Fatalf("payload is not valid JSON: %v\npayload: %q", err, raw[:n])
	}
	return p
}

var emptyField = []byte(strings.Repeat("_", 40))

func TestFindPathSuccessScenario(t *testing.T) {
	solver := &fakeSolver{
		placements: []engine.Placement{
			{Kind: engine.PieceJ, Facing: engine.FacingUp, X: 0, Y: 0},
			{Kind: engine.PieceL, Facing: engine.FacingDown, X: 7, Y: 0},
		},
	}
	provider := &fakeProvider{solver: solver}
	b := NewBridge(provider, 0)

	raw := b.FindPath(emptyField, []byte("LJOSZTI"), 4)
	p := decodePayload(t, raw)

	if !p.Success {
		t.Fatalf("success = false, error = %q", p.Error)
	}
	if p.SolutionCount != 1 || len(p.Solutions) != 1 {
		t.Fatalf("want exactly one solution, got count=%d len=%d", p.SolutionCount, len(p.Solutions))
	}
	sol := p.Solutions[0]
	if sol.PatternSize != len(solver.placements) {
		t.Errorf("patternSize = %d, want %d", sol.PatternSize, len(solver.placements))
	}
	for i, rec := range sol.Placements {
		if rec.X < 0 || rec.X >= engine.BoardWidth || rec.Y < 0 || rec.Y >= engine.MaxBoardHeight {
			t.Errorf("placement %d out of board range: (%d, %d)", i, rec.X, rec.Y)
		}
	}

	// Solver saw the load-bearing slot assignment.
	if solver.gotState.Hold != engine.PieceL || solver.gotState.Current != engine.PieceJ {
		t.Errorf("solver saw hold/current = %v/%v, want L/J",
			solver.gotState.Hold, solver.gotState.Current)
	}
	if solver.gotHeight != 4 {
		t.Errorf("solver saw height %d, want 4", solver.gotHeight)
	}
	// Bound: min(queue length 7, 4*10/4 = 10).
	if solver.gotMaxPieces != 7 {
		t.Errorf("solver saw maxPieces %d, want 7", solver.gotMaxPieces)
	}
	if solver.closed != 1 {
		t.Errorf("solver closed %d times, want 1", solver.closed)
	}
}

func TestFindPathQueueErrors(t *testing.T) {
	tests := []struct {
		name      string
		pieces    string
		wantError string
	}{
		{"no valid codes", "QWERTY", "NoValidPieces"},
		{"single piece", "I", "InsufficientPieces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{solver: &fakeSolver{}}
			b := NewBridge(provider, 0)

			p := decodePayload(t, b.FindPath(emptyField, []byte(tt.pieces), 4))
			if p.Success || p.Error != tt.wantError {
				t.Errorf("got (success=%v, error=%q), want (false, %q)",
					p.Success, p.Error, tt.wantError)
			}
			if provider.acquired != 0 {
				t.Error("solver acquired despite queue-level failure")
			}
		})
	}
}

func TestFindPathModelUnavailable(t *testing.T) {
	b := NewBridge(&fakeProvider{err: solve.ErrModelUnavailable}, 0)

	p := decodePayload(t, b.FindPath(emptyField, []byte("IO"), 4))
	if p.Success || p.Error != "ModelUnavailable" {
		t.Errorf("got (success=%v, error=%q), want (false, ModelUnavailable)", p.Success, p.Error)
	}
}

func TestFindPathSolverFailurePassthrough(t *testing.T) {
	solver := &fakeSolver{err: solve.ErrNoSolution}
	b := NewBridge(&fakeProvider{solver: solver}, 0)

	p := decodePayload(t, b.FindPath(emptyField, []byte("IOTS"), 4))
	if p.Success || p.Error != "NoPcFound" {
		t.Errorf("got (success=%v, error=%q), want (false, NoPcFound)", p.Success, p.Error)
	}
	if solver.closed != 1 {
		t.Errorf("solver closed %d times on failure, want 1", solver.closed)
	}
}

func TestFindPathSolutionTooLargeForBuffer(t *testing.T) {
	placements := make([]engine.Placement, 8)
	for i := range placements {
		placements[i] = engine.Placement{Kind: engine.PieceT, Facing: engine.FacingUp, X: i, Y: 0}
	}
	b := NewBridge(&fakeProvider{solver: &fakeSolver{placements: placements}}, minBufferCapacity)

	raw := b.FindPath(emptyField, []byte("IOTSZLJI"), 4)
	want := `{"success":false,"error":"Buffer overflow"}` + "\x00"
	if got := string(raw); got != want {
		t.Errorf("payload = %q, want %q", got, want)
	}
}

func TestCheckPossibleMatchesFindPath(t *testing.T) {
	failing := &fakeSolver{err: solve.ErrNoSolution}
	solving := &fakeSolver{placements: []engine.Placement{
		{Kind: engine.PieceI, Facing: engine.FacingUp, X: 0, Y: 0},
	}}
	// A board that is already clear solves with zero placements.
	trivial := &fakeSolver{placements: []engine.Placement{}}

	tests := []struct {
		name     string
		provider *fakeProvider
		pieces   string
	}{
		{"solved", &fakeProvider{solver: solving}, "IOTS"},
		{"solved with zero placements", &fakeProvider{solver: trivial}, "IOTS"},
		{"no solution", &fakeProvider{solver: failing}, "IOTS"},
		{"model unavailable", &fakeProvider{err: solve.ErrModelUnavailable}, "IOTS"},
		{"no valid pieces", &fakeProvider{solver: solving}, "QWERTY"},
		{"insufficient pieces", &fakeProvider{solver: solving}, "I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			find := NewBridge(tt.provider, 0)
			check := NewBridge(tt.provider, 0)

			p := decodePayload(t, find.FindPath(emptyField, []byte(tt.pieces), 4))
			got := check.CheckPossible(emptyField, []byte(tt.pieces), 4)
			if got != p.Success {
				t.Errorf("CheckPossible = %v, FindPath success = %v", got, p.Success)
			}
		})
	}
}

func TestSingleRowClearWithinBound(t *testing.T) {
	// One fully occupied bottom row on a 4-row board. The fake solver
	// clears it with the minimal placement count; the bound handed to it
	// must still be height*width/4.
	field := []byte(strings.Repeat("_", 30) + strings.Repeat("X", 10))
	solver := &fakeSolver{
		solveFn: func(state *engine.GameState, height, maxPieces int) ([]engine.Placement, error) {
			if !state.Board.Occupied(0, 0) || state.Board.Occupied(0, 1) {
				return nil, solve.ErrSearchExhausted
			}
			// Three horizontal pieces finish rows 1-3 above the full row.
			return []engine.Placement{
				{Kind: engine.PieceI, Facing: engine.FacingUp, X: 0, Y: 1},
				{Kind: engine.PieceI, Facing: engine.FacingUp, X: 0, Y: 2},
				{Kind: engine.PieceI, Facing: engine.FacingUp, X: 0, Y: 3},
			}, nil
		},
	}
	b := NewBridge(&fakeProvider{solver: solver}, 0)

	queue := "IIIIIIIIIIII" // 12 pieces, above the geometric bound
	p := decodePayload(t, b.FindPath(field, []byte(queue), 4))
	if !p.Success {
		t.Fatalf("expected success, got error %q", p.Error)
	}
	bound := 4 * engine.BoardWidth / engine.CellsPerPiece
	if solver.gotMaxPieces != bound {
		t.Errorf("maxPieces = %d, want geometric bound %d", solver.gotMaxPieces, bound)
	}
	if p.Solutions[0].PatternSize > bound {
		t.Errorf("patternSize %d exceeds bound %d", p.Solutions[0].PatternSize, bound)
	}
}

func TestFindPathReentrancyFailsLoudly(t *testing.T) {
	var b *Bridge
	var inner []byte
	solver := &fakeSolver{
		solveFn: func(*engine.GameState, int, int) ([]engine.Placement, error) {
			// A reentrant call while this one is still running.
			inner = b.FindPath(emptyField, []byte("IO"), 4)
			return []engine.Placement{{Kind: engine.PieceO, Facing: engine.FacingUp}}, nil
		},
	}
	b = NewBridge(&fakeProvider{solver: solver}, 0)

	outer := decodePayload(t, b.FindPath(emptyField, []byte("IO"), 4))
	if !outer.Success {
		t.Fatalf("outer call failed: %q", outer.Error)
	}

	p := decodePayload(t, inner)
	if p.Success || p.Error != "CallInProgress" {
		t.Errorf("reentrant call got (success=%v, error=%q), want (false, CallInProgress)",
			p.Success, p.Error)
	}
}
