package protocol

import (
	"encoding/json"
	"testing"
)

func TestResultUnmarshalSuccess(t *testing.T) {
	payload := `{"success":true,"solutions":[{"patternSize":2,"placements":[` +
		`{"piece":"T","rotate":"Spawn","x":4,"y":0},` +
		`{"piece":"I","rotate":"Left","x":0,"y":2}]}],"solutionCount":1}`

	var r Result
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !r.Success || r.SolutionCount != 1 {
		t.Errorf("got success=%v count=%d, want true/1", r.Success, r.SolutionCount)
	}

	sol := r.FirstSolution()
	if sol == nil {
		t.Fatal("FirstSolution returned nil for a success payload")
	}
	if sol.PatternSize != 2 || len(sol.Placements) != 2 {
		t.Fatalf("patternSize=%d placements=%d, want 2/2", sol.PatternSize, len(sol.Placements))
	}
	if p := sol.Placements[1]; p.Piece != "I" || p.Rotate != RotateLeft || p.X != 0 || p.Y != 2 {
		t.Errorf("placement mismatch: %+v", p)
	}
}

func TestResultUnmarshalFailure(t *testing.T) {
	payload := `{"success":false,"error":"InsufficientPieces"}`

	var r Result
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if r.Success || r.Error != "InsufficientPieces" {
		t.Errorf("got success=%v error=%q", r.Success, r.Error)
	}
	if r.FirstSolution() != nil {
		t.Error("FirstSolution should be nil for a failure payload")
	}
}
