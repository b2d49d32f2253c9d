package config

import (
	"github.com/spf13/viper"
)

// Config is the host-process configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Solver   SolverConfig `mapstructure:"solver"`
	Wasm     WasmConfig   `mapstructure:"wasm"`
}

// SolverConfig locates the solver module.
type SolverConfig struct {
	// Directory holding manifest.yaml and the wasm binary.
	ManifestDir string `mapstructure:"manifest_dir"`
}

// WasmConfig holds wazero runtime configuration.
type WasmConfig struct {
	// Memory limit per module (in pages, 64KB each).
	MemoryPages uint32 `mapstructure:"memory_pages"`
	// Compilation cache directory.
	CacheDir string `mapstructure:"cache_dir"`
}

// Load reads configuration from an optional file, filling defaults for
// anything unset.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("solver.manifest_dir", "./solver")
	v.SetDefault("wasm.memory_pages", 256) // 16MB
	v.SetDefault("wasm.cache_dir", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
