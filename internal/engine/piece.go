package engine

// PieceKind identifies one of the seven standard tetrominoes.
// PieceNone marks an empty slot (no hold piece, unused preview entry).
type PieceKind uint8

const (
	PieceNone PieceKind = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceL
	PieceJ
)

// NumPieceKinds counts the playable kinds, excluding PieceNone.
const NumPieceKinds = 7

var pieceChars = [...]byte{
	PieceNone: '?',
	PieceI:    'I',
	PieceO:    'O',
	PieceT:    'T',
	PieceS:    'S',
	PieceZ:    'Z',
	PieceL:    'L',
	PieceJ:    'J',
}

// PieceFromChar maps a single-character piece code to its kind.
// Lookup is case-insensitive. Returns false for any character that
// is not one of I/O/T/S/Z/L/J.
func PieceFromChar(c byte) (PieceKind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'I':
		return PieceI, true
	case 'O':
		return PieceO, true
	case 'T':
		return PieceT, true
	case 'S':
		return PieceS, true
	case 'Z':
		return PieceZ, true
	case 'L':
		return PieceL, true
	case 'J':
		return PieceJ, true
	}
	return PieceNone, false
}

// Char returns the upper-case single-character code for the kind.
func (k PieceKind) Char() byte {
	if int(k) >= len(pieceChars) {
		return '?'
	}
	return pieceChars[k]
}

func (k PieceKind) String() string {
	return string(k.Char())
}

// Facing is a piece's rotation state in the engine's internal convention:
// Up is the spawn orientation, Right is one clockwise step, Down is two,
// Left is one counter-clockwise step.
type Facing uint8

const (
	FacingUp Facing = iota
	FacingRight
	FacingDown
	FacingLeft
)

// NumFacings is the number of rotation states per piece.
const NumFacings = 4

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingRight:
		return "right"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	}
	return "invalid"
}
