// Package solve defines the contract between the boundary pipeline and the
// external perfect-clear solver. The search itself lives outside this
// repository; callers consume it through the Solver interface and inject an
// implementation via a Provider.
package solve

import (
	"errors"

	"github.com/fumen-tools/pcbridge/internal/engine"
)

// ErrModelUnavailable is returned by a Provider when the solver's scoring
// model cannot be loaded. It is reported on the wire as a distinct error
// from ordinary search failures.
var ErrModelUnavailable = errors.New("scoring model unavailable")

// Failure is a typed search failure. Its Name is the solver's own error
// identifier and is reported verbatim on the wire.
type Failure struct {
	Name string
}

func (f *Failure) Error() string {
	return f.Name
}

// Canonical search failures. Solver implementations may define others;
// any *Failure is passed through by name.
var (
	// ErrNoSolution: no perfect clear exists within the placement bound.
	ErrNoSolution = &Failure{Name: "NoPcFound"}

	// ErrSearchExhausted: the search space was exhausted without a result.
	ErrSearchExhausted = &Failure{Name: "SearchExhausted"}
)

// Solver computes a perfect-clear placement sequence for a game state.
//
// Solve returns the placements in play order, a *Failure when the search
// completes without a solution, or another error for internal faults.
// height is the target stack height; maxPieces bounds the number of
// placements considered.
//
// Close releases the solver's per-call resources (its scoring model).
// Solvers are acquired fresh for every call and must be closed
// unconditionally, whichever way the call ends.
type Solver interface {
	Solve(state *engine.GameState, height, maxPieces int) ([]engine.Placement, error)
	Close()
}

// Provider acquires a solver and its scoring model for a single call.
type Provider interface {
	Acquire() (Solver, error)
}

// MaxPlacements computes the placement bound for a call: a full clear of a
// height*width board needs at most height*width/4 four-cell pieces, and
// the solver can never place more pieces than the queue supplies.
func MaxPlacements(queueLen, height int) int {
	bound := height * engine.BoardWidth / engine.CellsPerPiece
	if queueLen < bound {
		return queueLen
	}
	return bound
}

var defaultProvider Provider

// Register installs the process-wide solver provider. The solver engine
// links against this package and registers itself at init time, the same
// way database/sql drivers do.
func Register(p Provider) {
	defaultProvider = p
}

// Default returns the registered provider, or a provider whose Acquire
// always fails with ErrModelUnavailable when none is registered.
func Default() Provider {
	if defaultProvider == nil {
		return unavailableProvider{}
	}
	return defaultProvider
}

type unavailableProvider struct{}

func (unavailableProvider) Acquire() (Solver, error) {
	return nil, ErrModelUnavailable
}
