package engine

// Board geometry. These are engine constants, not tunables: the bitboard
// packing below and the solver's move tables both assume them.
const (
	// BoardWidth is the number of playable columns.
	BoardWidth = 10

	// MaxBoardHeight is the tallest stack the engine can represent.
	MaxBoardHeight = 24

	// CellsPerPiece is the cell count of every tetromino.
	CellsPerPiece = 4
)

// Board is a fixed-size occupancy bitboard, one uint16 row mask per row,
// row 0 at the bottom. Within a row mask, column 0 occupies bit
// BoardWidth-1 and column BoardWidth-1 occupies bit 0, so the mask reads
// left-to-right when printed in binary. Bits at and above BoardWidth are
// padding and are never set.
type Board struct {
	rows [MaxBoardHeight]uint16
}

// columnBit returns the mask bit for a column, or 0 if out of range.
func columnBit(x int) uint16 {
	if x < 0 || x >= BoardWidth {
		return 0
	}
	return 1 << (BoardWidth - 1 - x)
}

// Set marks the cell at column x, row y as occupied.
// Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int) {
	if y < 0 || y >= MaxBoardHeight {
		return
	}
	b.rows[y] |= columnBit(x)
}

// Occupied reports whether the cell at column x, row y is filled.
// Out-of-range coordinates read as empty.
func (b *Board) Occupied(x, y int) bool {
	if y < 0 || y >= MaxBoardHeight {
		return false
	}
	return b.rows[y]&columnBit(x) != 0
}

// Row returns the raw row mask for row y.
func (b *Board) Row(y int) uint16 {
	if y < 0 || y >= MaxBoardHeight {
		return 0
	}
	return b.rows[y]
}

// FullRowMask is the row mask value of a completely filled row.
const FullRowMask = uint16(1)<<BoardWidth - 1

// FillRow marks every cell in row y as occupied.
func (b *Board) FillRow(y int) {
	if y < 0 || y >= MaxBoardHeight {
		return
	}
	b.rows[y] = FullRowMask
}

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	for _, row := range b.rows {
		if row != 0 {
			return false
		}
	}
	return true
}

// CellCount returns the number of occupied cells.
func (b *Board) CellCount() int {
	n := 0
	for _, row := range b.rows {
		for m := row; m != 0; m &= m - 1 {
			n++
		}
	}
	return n
}
