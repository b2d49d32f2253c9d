//go:build wasm

package main

import (
	"unsafe"

	"github.com/fumen-tools/pcbridge/internal/arena"
	"github.com/fumen-tools/pcbridge/internal/boundary"
)

// The host sees absolute linear-memory addresses; the arena works in
// region offsets. regionBase translates between the two. Offsets that
// fall outside the region after translation are rejected by the arena's
// bounds checks, so a hostile pointer degrades to an error payload
// rather than an out-of-bounds read.
var regionBase = func() uint32 {
	region, _ := inputArena.Bytes(0, inputArena.Size())
	return uint32(uintptr(unsafe.Pointer(&region[0])))
}()

func resolve(ptr, length uint32) []byte {
	buf, ok := inputArena.Bytes(ptr-regionBase, length)
	if !ok {
		return nil
	}
	return buf
}

//go:wasmexport alloc
func wasmAlloc(size uint32) uint32 {
	off := inputArena.Alloc(size)
	if off == arena.Null {
		return 0
	}
	return regionBase + off
}

//go:wasmexport dealloc
func wasmDealloc(ptr, size uint32) {
	inputArena.Free(ptr-regionBase, size)
}

//go:wasmexport findPath
func wasmFindPath(fieldPtr, fieldLen, piecesPtr, piecesLen, height uint32) uint32 {
	payload := bridge.FindPath(
		resolve(fieldPtr, fieldLen),
		resolve(piecesPtr, piecesLen),
		int(height),
	)
	return uint32(uintptr(unsafe.Pointer(&payload[0])))
}

//go:wasmexport checkPCPossible
func wasmCheckPCPossible(fieldPtr, fieldLen, piecesPtr, piecesLen, height uint32) uint32 {
	if bridge.CheckPossible(
		resolve(fieldPtr, fieldLen),
		resolve(piecesPtr, piecesLen),
		int(height),
	) {
		return 1
	}
	return 0
}

//go:wasmexport getResultLength
func wasmGetResultLength(ptr uint32) uint32 {
	// The scan is bounded by the output buffer's physical capacity even
	// when no terminator is present.
	buf := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), bridge.BufferCap())
	return uint32(boundary.ResultLength(buf))
}

func main() {}
