// Package host is the host-environment side of the solver protocol: it
// compiles and instantiates a solver WASM module with wazero, marshals
// input strings through the module's own allocator, invokes the solving
// entry points, and reads back the null-terminated result payload.
package host

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// Runtime manages the wazero runtime lifecycle. It is created once per
// process and caches compiled solver modules by path, so reloading the
// same module is cheap.
type Runtime struct {
	runtime wazero.Runtime

	// Compiled module cache (module path -> *CompiledModule).
	modules sync.Map

	config *RuntimeConfig
	logger *zap.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// RuntimeConfig holds runtime configuration.
type RuntimeConfig struct {
	// Memory limit for solver modules (in pages, 64KB each).
	MemoryPages uint32

	// Compilation cache directory. Empty means in-memory caching only.
	CacheDir string
}

// DefaultRuntimeConfig returns sensible defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		MemoryPages: 256, // 16MB
	}
}

// CompiledModule wraps a wazero.CompiledModule with metadata.
type CompiledModule struct {
	Module wazero.CompiledModule

	Name       string
	Path       string
	SizeBytes  int64
	CompiledAt time.Time
}

// NewRuntime creates and initializes a wazero runtime.
func NewRuntime(ctx context.Context, logger *zap.Logger, config *RuntimeConfig) (*Runtime, error) {
	if config == nil {
		config = DefaultRuntimeConfig()
	}

	rc := wazero.NewRuntimeConfig()
	if config.MemoryPages > 0 {
		rc = rc.WithMemoryLimitPages(config.MemoryPages)
	}
	if config.CacheDir != "" {
		cache, err := wazero.NewCompilationCacheWithDir(config.CacheDir)
		if err != nil {
			return nil, err
		}
		rc = rc.WithCompilationCache(cache)
	}

	r := &Runtime{
		runtime: wazero.NewRuntimeWithConfig(ctx, rc),
		config:  config,
		logger:  logger.With(zap.String("component", "solver-runtime")),
		closed:  make(chan struct{}),
	}

	r.logger.Info("Solver runtime initialized",
		zap.Uint32("memory_pages", config.MemoryPages),
		zap.String("cache_dir", config.CacheDir),
	)

	return r, nil
}

// LoadModule compiles a solver module from a wasm file, reusing the cache
// when the same path was loaded before.
func (r *Runtime) LoadModule(ctx context.Context, path string) (*CompiledModule, error) {
	if cached, ok := r.modules.Load(path); ok {
		r.logger.Debug("Module cache hit", zap.String("module", path))
		return cached.(*CompiledModule), nil
	}

	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModuleReadError{Path: path, Err: err}
	}

	r.logger.Info("Compiling solver module",
		zap.String("module", path),
		zap.Int("size_bytes", len(wasmBytes)),
	)
	start := time.Now()

	compiled, err := r.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, &CompilationError{ModuleName: path, Err: err}
	}

	module := &CompiledModule{
		Module:     compiled,
		Name:       path,
		Path:       path,
		SizeBytes:  int64(len(wasmBytes)),
		CompiledAt: time.Now(),
	}
	r.modules.Store(path, module)

	r.logger.Info("Solver module compiled",
		zap.String("module", path),
		zap.Duration("duration", time.Since(start)),
	)

	return module, nil
}

// Instantiate creates a module instance with no WASI or host imports;
// the solver protocol needs only exports and linear memory.
func (r *Runtime) Instantiate(ctx context.Context, compiled *CompiledModule, name string) (api.Module, error) {
	cfg := wazero.NewModuleConfig().
		WithName(name).
		WithStartFunctions("_initialize")

	module, err := r.runtime.InstantiateModule(ctx, compiled.Module, cfg)
	if err != nil {
		return nil, &InstantiationError{ModuleName: compiled.Name, Err: err}
	}
	return module, nil
}

// Close gracefully shuts down the runtime. Safe to call multiple times.
func (r *Runtime) Close(ctx context.Context) error {
	var err error
	r.closeOnce.Do(func() {
		r.logger.Info("Shutting down solver runtime")
		err = r.runtime.Close(ctx)
		close(r.closed)
	})
	return err
}

// IsClosed reports whether the runtime has been closed.
func (r *Runtime) IsClosed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}
