// pcfinder is the solver module itself: the decode -> build -> solve ->
// encode pipeline behind the findPath/checkPCPossible entry points. Built
// for wasm it exposes the WASM boundary; built natively it is a CLI over
// the identical pipeline.
package main

import (
	"github.com/fumen-tools/pcbridge/internal/arena"
	"github.com/fumen-tools/pcbridge/internal/boundary"
	"github.com/fumen-tools/pcbridge/internal/solve"
)

// inputArenaSize is the linear-memory region available to the host for
// marshaling input strings. A field plus queue is a few hundred bytes;
// 64KB leaves generous headroom.
const inputArenaSize = 64 << 10

// Process-wide state, initialized once at module load. The protocol is
// single-threaded and non-reentrant; the bridge's guard enforces that.
var (
	inputArena = arena.New(inputArenaSize)
	bridge     = boundary.NewBridge(solve.Default(), boundary.DefaultBufferCapacity)
)
