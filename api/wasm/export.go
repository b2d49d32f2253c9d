//go:build wasm

package wasm

// This file documents the Wasm export interface a solver module must
// provide. The host (internal/host) verifies these against the
// instantiated module.
//
// NOTE: uint32 is used for pointers and lengths because WebAssembly uses
// a 32-bit linear memory model. All Wasm memory addresses are represented
// as 32-bit integers (addresses 0 to 4GB).
// See: https://github.com/golang/go/issues/59156
//
// Exported functions a solver module must implement:
//
// //go:wasmexport alloc
// func alloc(size uint32) uint32
//	Reserves size bytes of linear memory for host input; returns 0 on
//	failure. The host writes the field/queue strings here before calling
//	the entry points and frees them afterwards.
//
// //go:wasmexport dealloc
// func dealloc(ptr, size uint32)
//	Releases an alloc'd region. The pair must match the original call.
//
// //go:wasmexport findPath
// func findPath(fieldPtr, fieldLen, piecesPtr, piecesLen, height uint32) uint32
//	Runs the full solving pipeline and returns a pointer to the
//	null-terminated response payload. The pointed-to buffer is owned by
//	the module and overwritten by the next call.
//
// //go:wasmexport checkPCPossible
// func checkPCPossible(fieldPtr, fieldLen, piecesPtr, piecesLen, height uint32) uint32
//	Identical pipeline minus result serialization; returns 1 iff a
//	solution was found, 0 on any failure.
//
// //go:wasmexport getResultLength
// func getResultLength(ptr uint32) uint32
//	Scans the response buffer for its terminator, bounded by the
//	buffer's physical capacity.
