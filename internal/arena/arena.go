// Package arena provides the linear-memory allocator backing the module's
// alloc/dealloc entry points. The host allocates regions here to marshal
// input strings across the boundary before invoking the solver.
package arena

// Align is the allocation granularity. Sizes are rounded up to it so
// freed spans coalesce cleanly.
const Align = 8

// Null is the failure value returned by Alloc. Offset 0 is reserved so a
// valid allocation can never be confused with it.
const Null = uint32(0)

type span struct {
	off  uint32
	size uint32
}

// Arena is a first-fit free-list allocator over a single fixed backing
// region. Offsets into the region act as pointers; the caller translates
// them to and from absolute addresses at the module boundary. The arena
// is not safe for concurrent use, matching the module's single-threaded
// call model.
type Arena struct {
	mem []byte
	// free spans, sorted by offset, never adjacent (always coalesced).
	free []span
}

// New creates an arena over a fresh region of the given size. The first
// Align bytes are reserved so offset 0 stays the null value.
func New(size uint32) *Arena {
	if size < 2*Align {
		size = 2 * Align
	}
	return &Arena{
		mem:  make([]byte, size),
		free: []span{{off: Align, size: size - Align}},
	}
}

// Size returns the total size of the backing region.
func (a *Arena) Size() uint32 {
	return uint32(len(a.mem))
}

func roundUp(n uint32) uint32 {
	return (n + Align - 1) &^ (Align - 1)
}

// Alloc reserves size bytes and returns the region offset, or Null when
// no free span fits. Zero-size requests still consume one granule so
// every allocation has a distinct offset.
func (a *Arena) Alloc(size uint32) uint32 {
	need := roundUp(size)
	if need < size {
		// Rounding wrapped; a request this large can never fit and must
		// not silently shrink to a granule.
		return Null
	}
	if need == 0 {
		need = Align
	}
	for i, s := range a.free {
		if s.size < need {
			continue
		}
		off := s.off
		if s.size == need {
			a.free = append(a.free[:i], a.free[i+1:]...)
		} else {
			a.free[i] = span{off: s.off + need, size: s.size - need}
		}
		return off
	}
	return Null
}

// Free returns the region [off, off+size) to the allocator, coalescing
// with adjacent free spans. The pair must match a prior Alloc; a Null or
// out-of-range offset is ignored rather than corrupting the free list.
func (a *Arena) Free(off, size uint32) {
	need := roundUp(size)
	if need < size {
		// Wrapped size; no such allocation can exist.
		return
	}
	if need == 0 {
		need = Align
	}
	if off == Null || off < Align || off+need > a.Size() || off+need < off {
		return
	}

	// Insertion point keeping the list sorted by offset.
	i := 0
	for i < len(a.free) && a.free[i].off < off {
		i++
	}

	// Merge with the predecessor when adjacent.
	if i > 0 && a.free[i-1].off+a.free[i-1].size == off {
		a.free[i-1].size += need
		// And with the successor, if the merge closed the gap.
		if i < len(a.free) && a.free[i-1].off+a.free[i-1].size == a.free[i].off {
			a.free[i-1].size += a.free[i].size
			a.free = append(a.free[:i], a.free[i+1:]...)
		}
		return
	}

	// Merge with the successor when adjacent.
	if i < len(a.free) && off+need == a.free[i].off {
		a.free[i].off = off
		a.free[i].size += need
		return
	}

	a.free = append(a.free, span{})
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = span{off: off, size: need}
}

// Bytes resolves an (offset, length) pair into the backing region,
// validating bounds before any access. Boundary-crossing reads must go
// through here.
func (a *Arena) Bytes(off, length uint32) ([]byte, bool) {
	end := off + length
	if end < off || end > a.Size() {
		return nil, false
	}
	return a.mem[off:end], true
}

// FreeBytes reports the total size of all free spans. Intended for tests
// and diagnostics; fragmentation may keep a single Alloc of this size
// from succeeding.
func (a *Arena) FreeBytes() uint32 {
	var n uint32
	for _, s := range a.free {
		n += s.size
	}
	return n
}
