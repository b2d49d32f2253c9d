package boundary

import "github.com/fumen-tools/pcbridge/internal/engine"

// DecodeQueue parses a piece-sequence string into an ordered queue.
//
// Each character is looked up independently in the piece table,
// case-insensitively. Characters that name no piece are skipped, not
// rejected, and valid pieces beyond the queue capacity are dropped
// without error. A zero-length result is not a decoder failure; callers
// that need pieces must check for it themselves.
func DecodeQueue(pieces []byte) engine.PieceQueue {
	var q engine.PieceQueue
	for _, c := range pieces {
		k, ok := engine.PieceFromChar(c)
		if !ok {
			continue
		}
		if !q.Push(k) {
			break
		}
	}
	return q
}
