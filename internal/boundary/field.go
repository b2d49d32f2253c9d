// Package boundary implements the host/solver interoperability protocol:
// decoding the textual field and queue encodings, assembling solver input
// state, translating solver placements into the external sfinder
// coordinate convention, and serializing results into a bounded buffer.
package boundary

import "github.com/fumen-tools/pcbridge/internal/engine"

// DecodeField parses a textual board encoding into board.
//
// field holds height*width characters in reading order: the top row
// (row height-1) first, each row left to right. 'X' or 'x' marks an
// occupied cell; every other character is empty. Cells whose row falls
// outside the engine's supported range are dropped silently, and a
// field whose length is not a multiple of the width is handled by the
// same wrap-around column counter, so a trailing partial row decodes
// as far as it goes. The caller owns board; no allocation happens here.
func DecodeField(field []byte, height int, board *engine.Board) {
	x := 0
	y := height - 1
	for _, c := range field {
		if c == 'X' || c == 'x' {
			// Set drops out-of-range rows.
			board.Set(x, y)
		}
		x++
		if x == engine.BoardWidth {
			x = 0
			y--
		}
	}
}

// EncodeField renders board back into the textual encoding DecodeField
// accepts, using 'X' for occupied and '_' for empty cells.
func EncodeField(board *engine.Board, height int) []byte {
	out := make([]byte, 0, height*engine.BoardWidth)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < engine.BoardWidth; x++ {
			if board.Occupied(x, y) {
				out = append(out, 'X')
			} else {
				out = append(out, '_')
			}
		}
	}
	return out
}
