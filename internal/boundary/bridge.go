package boundary

import (
	"errors"
	"sync/atomic"

	"github.com/fumen-tools/pcbridge/internal/engine"
	"github.com/fumen-tools/pcbridge/internal/solve"
)

// Bridge owns the state shared across calls: the output buffer and the
// solver provider. The protocol is single-threaded and non-reentrant;
// rather than trusting that, the bridge carries an explicit busy flag so
// an overlapping call fails loudly with a well-formed payload instead of
// corrupting the buffer.
type Bridge struct {
	provider solve.Provider
	buf      *ResultBuffer
	busy     atomic.Bool
}

// callInProgressPayload is returned, pre-terminated, when a call overlaps
// another. It is never written to the shared buffer, which still belongs
// to the call in flight.
var callInProgressPayload = []byte(`{"success":false,"error":"CallInProgress"}` + "\x00")

// NewBridge creates a bridge using the given solver provider and output
// buffer capacity (DefaultBufferCapacity if zero or negative).
func NewBridge(provider solve.Provider, bufferCapacity int) *Bridge {
	if bufferCapacity <= 0 {
		bufferCapacity = DefaultBufferCapacity
	}
	return &Bridge{
		provider: provider,
		buf:      NewResultBuffer(bufferCapacity),
	}
}

// BufferCap returns the output buffer's physical capacity.
func (b *Bridge) BufferCap() int {
	return b.buf.Cap()
}

// run executes decode -> build -> solve and returns the placements or a
// tagged failure. It performs no output formatting.
func (b *Bridge) run(field, pieces []byte, height int) ([]engine.Placement, Result) {
	queue := DecodeQueue(pieces)

	var board engine.Board
	DecodeField(field, height, &board)

	state, kind := BuildGameState(&queue, board)
	if kind != ErrNone {
		return nil, Result{Kind: kind}
	}

	solver, err := b.provider.Acquire()
	if err != nil {
		return nil, Result{Kind: ErrModelUnavailable}
	}
	defer solver.Close()

	placements, err := solver.Solve(state, height, solve.MaxPlacements(queue.Len(), height))
	if err != nil {
		var failure *solve.Failure
		if errors.As(err, &failure) {
			return nil, Result{Kind: ErrSolverFailure, SolverName: failure.Name}
		}
		return nil, Result{Kind: ErrSolverFailure, SolverName: err.Error()}
	}

	return placements, Result{Kind: ErrNone}
}

// FindPath runs the full pipeline and returns the null-terminated wire
// payload. The returned slice aliases the bridge's output buffer and is
// only valid until the next call.
func (b *Bridge) FindPath(field, pieces []byte, height int) []byte {
	if !b.busy.CompareAndSwap(false, true) {
		return callInProgressPayload
	}
	defer b.busy.Store(false)

	placements, res := b.run(field, pieces, height)
	if !res.OK() {
		b.buf.EncodeError(res.Kind, res.SolverName)
		return b.buf.Bytes()
	}

	b.buf.EncodeSolution(placements)
	return b.buf.Bytes()
}

// CheckPossible runs the pipeline without any output formatting and
// reports whether a solution was found. Every failure, from insufficient
// pieces to a failed model load, reads as false. The predicate is the
// same one FindPath serializes: a solver that returns without error has
// found a solution, even the zero-placement one for an already-clear
// board.
func (b *Bridge) CheckPossible(field, pieces []byte, height int) bool {
	if !b.busy.CompareAndSwap(false, true) {
		return false
	}
	defer b.busy.Store(false)

	_, res := b.run(field, pieces, height)
	return res.OK()
}
