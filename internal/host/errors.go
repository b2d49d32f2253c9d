package host

import "fmt"

// ModuleReadError occurs when the solver wasm file cannot be read.
type ModuleReadError struct {
	Path string
	Err  error
}

func (e *ModuleReadError) Error() string {
	return fmt.Sprintf("failed to read solver module '%s': %v", e.Path, e.Err)
}

func (e *ModuleReadError) Unwrap() error {
	return e.Err
}

// CompilationError occurs when Wasm module compilation fails.
type CompilationError struct {
	ModuleName string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile solver module '%s': %v", e.ModuleName, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// InstantiationError occurs when module instantiation fails.
type InstantiationError struct {
	ModuleName string
	Err        error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("failed to instantiate solver module '%s': %v", e.ModuleName, e.Err)
}

func (e *InstantiationError) Unwrap() error {
	return e.Err
}

// ExportMissingError occurs when the module lacks a required entry point.
type ExportMissingError struct {
	ModuleName string
	Export     string
}

func (e *ExportMissingError) Error() string {
	return fmt.Sprintf("solver module '%s' does not export '%s'", e.ModuleName, e.Export)
}

// MemoryAccessError occurs when a linear-memory operation fails.
type MemoryAccessError struct {
	Operation string
	Address   uint32
	Length    uint32
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("memory access failed (op=%s, addr=%d, len=%d)",
		e.Operation, e.Address, e.Length)
}

// AllocationError occurs when the module's allocator returns null.
type AllocationError struct {
	Size uint32
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("solver module allocator rejected a %d-byte request", e.Size)
}

// CallError occurs when invoking an entry point fails.
type CallError struct {
	Function string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("entry point '%s' failed: %v", e.Function, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// ResultParseError occurs when the response payload is not valid JSON.
type ResultParseError struct {
	Err     error
	Payload string
}

func (e *ResultParseError) Error() string {
	return fmt.Sprintf("failed to parse solver response %q: %v", e.Payload, e.Err)
}

func (e *ResultParseError) Unwrap() error {
	return e.Err
}

// ManifestNotFoundError occurs when manifest.yaml is not found.
type ManifestNotFoundError struct {
	Path string
	Err  error
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("manifest not found at '%s': %v", e.Path, e.Err)
}

func (e *ManifestNotFoundError) Unwrap() error {
	return e.Err
}

// ManifestParseError occurs when manifest.yaml cannot be parsed.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest at '%s': %v", e.Path, e.Err)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// ManifestValidationError occurs when manifest fields fail validation.
type ManifestValidationError struct {
	Path    string
	Field   string
	Message string
}

func (e *ManifestValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("manifest validation failed at '%s': %s (field: %s)",
			e.Path, e.Message, e.Field)
	}
	return fmt.Sprintf("manifest validation failed at '%s': %s", e.Path, e.Message)
}
