package host

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a solver module: where its wasm binary lives and
// which entry points it claims to export. Clients verify the claims
// against the instantiated module, so a stale manifest fails loudly at
// load time instead of at the first call.
type Manifest struct {
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	Wasm    WasmBinary `yaml:"wasm"`
	Exports []string   `yaml:"exports"`
	Author  string     `yaml:"author"`
	License string     `yaml:"license"`

	dir string // directory containing the manifest
}

// WasmBinary holds the wasm file reference.
type WasmBinary struct {
	File        string `yaml:"file"`
	MemoryPages uint32 `yaml:"memory_pages"`
}

// ParseManifest reads and validates manifest.yaml from a directory.
func ParseManifest(dir string) (*Manifest, error) {
	manifestPath := filepath.Join(dir, "manifest.yaml")

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &ManifestNotFoundError{Path: manifestPath, Err: err}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ManifestParseError{Path: manifestPath, Err: err}
	}
	m.dir = dir

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Path returns the manifest's directory.
func (m *Manifest) Path() string {
	return m.dir
}

// WasmPath returns the absolute path to the wasm binary.
func (m *Manifest) WasmPath() string {
	if filepath.IsAbs(m.Wasm.File) {
		return m.Wasm.File
	}
	return filepath.Join(m.dir, m.Wasm.File)
}

// Validate checks manifest fields.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return &ManifestValidationError{
			Path:    m.dir,
			Field:   "name",
			Message: "name is required",
		}
	}
	if m.Version == "" {
		return &ManifestValidationError{
			Path:    m.dir,
			Field:   "version",
			Message: "version is required",
		}
	}
	if m.Wasm.File == "" {
		return &ManifestValidationError{
			Path:    m.dir,
			Field:   "wasm.file",
			Message: "wasm file is required",
		}
	}

	declared := make(map[string]bool, len(m.Exports))
	for _, name := range m.Exports {
		declared[name] = true
	}
	for _, required := range requiredExports {
		if !declared[required] {
			return &ManifestValidationError{
				Path:    m.dir,
				Field:   "exports",
				Message: "missing required entry point " + required,
			}
		}
	}
	return nil
}
