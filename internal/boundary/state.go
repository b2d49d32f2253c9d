package boundary

import "github.com/fumen-tools/pcbridge/internal/engine"

// BuildGameState distributes the decoded queue across the solver's
// hold/current/preview/lookahead slots and attaches the board.
//
// The assignment order is load-bearing: the solver consults hold, then
// current, then the preview window, and falls through to the randomizer
// lookahead only once the explicit queue is exhausted. Misordering here
// changes which pieces the solver sees without any error surfacing, so
// the mapping is exactly:
//
//	queue[0]                  -> hold
//	queue[1]                  -> current
//	queue[2 : 2+previewSlots] -> preview, in order
//	queue[2+previewSlots :]   -> lookahead, from context index 0, in order
//
// Fails with ErrNoValidPieces on an empty queue and ErrInsufficientPieces
// when hold and current cannot both be populated.
func BuildGameState(q *engine.PieceQueue, board engine.Board) (*engine.GameState, ErrorKind) {
	switch q.Len() {
	case 0:
		return nil, ErrNoValidPieces
	case 1:
		return nil, ErrInsufficientPieces
	}

	state := &engine.GameState{
		Hold:    q.At(0),
		Current: q.At(1),
		Board:   board,
	}

	for i := 2; i < q.Len(); i++ {
		if state.PreviewLen < engine.PreviewSlots {
			state.Preview[state.PreviewLen] = q.At(i)
			state.PreviewLen++
			continue
		}
		state.Lookahead[state.LookaheadLen] = q.At(i)
		state.LookaheadLen++
	}

	return state, ErrNone
}
