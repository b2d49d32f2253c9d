package boundary

import (
	"strconv"

	"github.com/fumen-tools/pcbridge/internal/engine"
)

// DefaultBufferCapacity is the output capacity used when no explicit one
// is configured. Large enough for a full 16-placement solution with
// worst-case coordinates.
const DefaultBufferCapacity = 8192

// minBufferCapacity guarantees the canonical error payloads always fit,
// terminator included.
const minBufferCapacity = 64

// ResultBuffer accumulates the wire payload in a fixed-capacity buffer.
// Writes that would exceed the capacity set the overflow flag instead of
// growing the buffer, and no byte past the capacity is ever touched. The
// final byte written is always a null terminator, so the host can scan
// for the payload length.
type ResultBuffer struct {
	buf      []byte
	n        int
	overflow bool
	scratch  [20]byte // strconv.AppendInt workspace
}

// NewResultBuffer allocates a buffer with the given capacity, clamped up
// to the minimum that fits every canonical error payload.
func NewResultBuffer(capacity int) *ResultBuffer {
	if capacity < minBufferCapacity {
		capacity = minBufferCapacity
	}
	return &ResultBuffer{buf: make([]byte, capacity)}
}

// Reset discards any accumulated payload.
func (b *ResultBuffer) Reset() {
	b.n = 0
	b.overflow = false
}

// Cap returns the buffer's physical capacity.
func (b *ResultBuffer) Cap() int {
	return len(b.buf)
}

// Len returns the logical payload length, excluding the terminator.
func (b *ResultBuffer) Len() int {
	return b.n
}

// Overflowed reports whether any write was rejected since the last Reset.
func (b *ResultBuffer) Overflowed() bool {
	return b.overflow
}

// Bytes returns the terminated payload, terminator included.
func (b *ResultBuffer) Bytes() []byte {
	return b.buf[:b.n+1]
}

// writeString appends s, reserving one byte for the terminator.
func (b *ResultBuffer) writeString(s string) {
	if b.overflow || b.n+len(s) > len(b.buf)-1 {
		b.overflow = true
		return
	}
	copy(b.buf[b.n:], s)
	b.n += len(s)
}

func (b *ResultBuffer) writeByte(c byte) {
	if b.overflow || b.n+1 > len(b.buf)-1 {
		b.overflow = true
		return
	}
	b.buf[b.n] = c
	b.n++
}

func (b *ResultBuffer) writeInt(v int) {
	s := strconv.AppendInt(b.scratch[:0], int64(v), 10)
	if b.overflow || b.n+len(s) > len(b.buf)-1 {
		b.overflow = true
		return
	}
	copy(b.buf[b.n:], s)
	b.n += len(s)
}

// terminate writes the trailing null byte. Space for it is reserved by
// every write, so this cannot overflow.
func (b *ResultBuffer) terminate() {
	b.buf[b.n] = 0
}

// writeRecord appends one placement record in sfinder's convention:
// {"piece":"T","rotate":"Spawn","x":4,"y":0}
func (b *ResultBuffer) writeRecord(p engine.Placement) {
	x, y, rotate := TransformPlacement(p)
	b.writeString(`{"piece":"`)
	b.writeByte(p.Kind.Char())
	b.writeString(`","rotate":"`)
	b.writeString(rotate)
	b.writeString(`","x":`)
	b.writeInt(x)
	b.writeString(`,"y":`)
	b.writeInt(y)
	b.writeByte('}')
}

// EncodeSolution serializes a successful result. If the placements do not
// fit the capacity the partial payload is discarded and replaced with the
// canonical overflow error payload; the host never sees truncated output.
func (b *ResultBuffer) EncodeSolution(placements []engine.Placement) {
	b.Reset()
	b.writeString(`{"success":true,"solutions":[{"patternSize":`)
	b.writeInt(len(placements))
	b.writeString(`,"placements":[`)
	for i, p := range placements {
		if i > 0 {
			b.writeByte(',')
		}
		b.writeRecord(p)
	}
	b.writeString(`]}],"solutionCount":1}`)

	if b.overflow {
		b.EncodeError(ErrBufferOverflow, "")
		return
	}
	b.terminate()
}

// EncodeError serializes a failure payload for the given kind.
// Error payloads always fit: the capacity floor accounts for the longest
// canonical name, and an oversized solver pass-through name degrades to
// the overflow payload rather than truncating.
func (b *ResultBuffer) EncodeError(kind ErrorKind, solverName string) {
	b.Reset()
	b.writeString(`{"success":false,"error":"`)
	b.writeString(kind.wireName(solverName))
	b.writeString(`"}`)

	if b.overflow {
		b.Reset()
		b.writeString(`{"success":false,"error":"`)
		b.writeString(ErrBufferOverflow.wireName(""))
		b.writeString(`"}`)
	}
	b.terminate()
}

// ResultLength scans buf for the null terminator and returns the payload
// length. The scan is bounded by len(buf): if no terminator is found the
// full length is returned rather than reading past the buffer.
func ResultLength(buf []byte) int {
	for i, c := range buf {
		if c == 0 {
			return i
		}
	}
	return len(buf)
}
