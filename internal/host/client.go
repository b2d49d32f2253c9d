package host

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/fumen-tools/pcbridge/pkg/protocol"
)

// Solver module entry points. The calling convention is raw pointer and
// length pairs into the module's linear memory; see api/wasm.
const (
	exportFindPath     = "findPath"
	exportCheckPC      = "checkPCPossible"
	exportResultLength = "getResultLength"
	exportAlloc        = "alloc"
	exportDealloc      = "dealloc"
)

var requiredExports = []string{
	exportFindPath,
	exportCheckPC,
	exportResultLength,
	exportAlloc,
	exportDealloc,
}

// maxResultBytes bounds how much of the module's memory the client will
// read back as a response, whatever getResultLength claims.
const maxResultBytes = 1 << 20

// Client drives one instantiated solver module. The module is
// non-reentrant: its output buffer is overwritten by every call, so the
// client serializes calls and copies the payload out before returning.
type Client struct {
	module  api.Module
	mem     *Memory
	exports map[string]api.Function
	logger  *zap.Logger

	// One call at a time; the guest's reentrancy guard is a last resort,
	// not the synchronization mechanism.
	mu sync.Mutex
}

// NewClient instantiates a compiled solver module and verifies its entry
// points.
func NewClient(ctx context.Context, runtime *Runtime, compiled *CompiledModule, logger *zap.Logger) (*Client, error) {
	module, err := runtime.Instantiate(ctx, compiled, compiled.Name)
	if err != nil {
		return nil, err
	}

	exports := make(map[string]api.Function, len(requiredExports))
	for _, name := range requiredExports {
		fn := module.ExportedFunction(name)
		if fn == nil {
			_ = module.Close(ctx)
			return nil, &ExportMissingError{ModuleName: compiled.Name, Export: name}
		}
		exports[name] = fn
	}

	logger = logger.With(zap.String("component", "solver-client"))
	logger.Info("Solver module instantiated",
		zap.String("module", compiled.Name),
		zap.Int("entry_points", len(exports)),
	)

	return &Client{
		module:  module,
		mem:     NewMemory(module),
		exports: exports,
		logger:  logger,
	}, nil
}

// Close releases the module instance.
func (c *Client) Close(ctx context.Context) error {
	return c.module.Close(ctx)
}

// call invokes an entry point and returns its first result.
func (c *Client) call(ctx context.Context, name string, params ...uint64) (uint64, error) {
	results, err := c.exports[name].Call(ctx, params...)
	if err != nil {
		return 0, &CallError{Function: name, Err: err}
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0], nil
}

// writeInput marshals data into module memory via the module's own
// allocator and returns the pointer. The caller must free it.
func (c *Client) writeInput(ctx context.Context, data []byte) (uint32, error) {
	size := uint32(len(data))
	ptr64, err := c.call(ctx, exportAlloc, uint64(size))
	if err != nil {
		return 0, err
	}
	ptr := uint32(ptr64)
	if ptr == 0 {
		return 0, &AllocationError{Size: size}
	}

	if err := c.mem.WriteBytes(ptr, data); err != nil {
		c.freeInput(ctx, ptr, size)
		return 0, err
	}
	return ptr, nil
}

// freeInput releases a writeInput allocation. Failures are logged, not
// returned: the memory belongs to the module and leaks die with it.
func (c *Client) freeInput(ctx context.Context, ptr, size uint32) {
	if _, err := c.call(ctx, exportDealloc, uint64(ptr), uint64(size)); err != nil {
		c.logger.Warn("Failed to free module memory",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Error(err),
		)
	}
}

// FindPath runs the full solving pipeline and returns the parsed result
// payload.
func (c *Client) FindPath(ctx context.Context, field, pieces string, height uint32) (*protocol.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fieldPtr, err := c.writeInput(ctx, []byte(field))
	if err != nil {
		return nil, err
	}
	defer c.freeInput(ctx, fieldPtr, uint32(len(field)))

	piecesPtr, err := c.writeInput(ctx, []byte(pieces))
	if err != nil {
		return nil, err
	}
	defer c.freeInput(ctx, piecesPtr, uint32(len(pieces)))

	resultPtr64, err := c.call(ctx, exportFindPath,
		uint64(fieldPtr), uint64(len(field)),
		uint64(piecesPtr), uint64(len(pieces)),
		uint64(height),
	)
	if err != nil {
		return nil, err
	}
	resultPtr := uint32(resultPtr64)

	length64, err := c.call(ctx, exportResultLength, uint64(resultPtr))
	if err != nil {
		return nil, err
	}
	length := uint32(length64)
	if length > maxResultBytes {
		length = maxResultBytes
	}

	// Bounded terminator scan, with the module's reported length as the
	// bound: a payload ending early is trimmed at its terminator rather
	// than carrying trailing buffer bytes into the parser.
	raw, err := c.mem.ReadCString(resultPtr, length)
	if err != nil {
		return nil, err
	}

	var result protocol.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ResultParseError{Err: err, Payload: raw}
	}

	c.logger.Debug("Solver call complete",
		zap.Bool("success", result.Success),
		zap.String("error", result.Error),
	)
	return &result, nil
}

// CheckPossible asks the module whether a perfect clear exists without
// paying for result serialization.
func (c *Client) CheckPossible(ctx context.Context, field, pieces string, height uint32) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fieldPtr, err := c.writeInput(ctx, []byte(field))
	if err != nil {
		return false, err
	}
	defer c.freeInput(ctx, fieldPtr, uint32(len(field)))

	piecesPtr, err := c.writeInput(ctx, []byte(pieces))
	if err != nil {
		return false, err
	}
	defer c.freeInput(ctx, piecesPtr, uint32(len(pieces)))

	found, err := c.call(ctx, exportCheckPC,
		uint64(fieldPtr), uint64(len(field)),
		uint64(piecesPtr), uint64(len(pieces)),
		uint64(height),
	)
	if err != nil {
		return false, err
	}
	return found == 1, nil
}
