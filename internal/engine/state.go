package engine

const (
	// QueueCapacity bounds the number of pieces a single call may supply.
	QueueCapacity = 16

	// PreviewSlots is the size of the explicit preview window; queue
	// entries beyond hold+current+preview spill into the randomizer
	// lookahead context.
	PreviewSlots = 7
)

// PieceQueue is an ordered, capacity-bounded piece sequence.
// Insertion order is play order. Built once per call, then only read.
type PieceQueue struct {
	pieces [QueueCapacity]PieceKind
	n      int
}

// Push appends a piece and reports whether it fit. Pushes beyond
// QueueCapacity are dropped.
func (q *PieceQueue) Push(k PieceKind) bool {
	if q.n >= QueueCapacity {
		return false
	}
	q.pieces[q.n] = k
	q.n++
	return true
}

// Len returns the number of queued pieces.
func (q *PieceQueue) Len() int {
	return q.n
}

// At returns the i-th piece in play order.
func (q *PieceQueue) At(i int) PieceKind {
	if i < 0 || i >= q.n {
		return PieceNone
	}
	return q.pieces[i]
}

// GameState is the solver's input: hold/current/preview bookkeeping, the
// randomizer lookahead for queue overflow, and the board. The solver
// consumes pieces in exactly this order: hold is swappable with current,
// the preview window follows current, and once the preview is exhausted
// it falls through to the lookahead context.
type GameState struct {
	// Hold is PieceNone when the hold slot is empty.
	Hold    PieceKind
	Current PieceKind

	Preview    [PreviewSlots]PieceKind
	PreviewLen int

	// Lookahead holds queue overflow beyond the preview window, in order.
	Lookahead    [QueueCapacity]PieceKind
	LookaheadLen int

	Board Board
}

// Placement is one solver-produced move: a piece kind and facing at the
// internal reference point (the lower-left corner of the piece's bounding
// box in that facing), in board coordinates with row 0 at the bottom.
type Placement struct {
	Kind   PieceKind
	Facing Facing
	X, Y   int
}
