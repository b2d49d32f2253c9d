// pcbridge is the host-side front end: it loads a solver WASM module and
// runs a perfect-clear search for a field/queue given on the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fumen-tools/pcbridge/internal/config"
	"github.com/fumen-tools/pcbridge/internal/host"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	field := flag.String("field", "", "Field encoding: height*10 characters, X/x = filled, top row first")
	pieces := flag.String("pieces", "", "Piece queue, characters from IOTSZLJ (case-insensitive)")
	height := flag.Uint("height", 4, "Target stack height")
	checkOnly := flag.Bool("check", false, "Only report whether a perfect clear exists")
	flag.Parse()

	logger := zap.L()
	if *logLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting pcbridge",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("date", date),
	)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	manifest, err := host.ParseManifest(cfg.Solver.ManifestDir)
	if err != nil {
		logger.Fatal("Failed to load solver manifest", zap.Error(err))
	}
	logger.Info("Solver manifest loaded",
		zap.String("name", manifest.Name),
		zap.String("version", manifest.Version),
	)

	runtimeConfig := &host.RuntimeConfig{
		MemoryPages: cfg.Wasm.MemoryPages,
		CacheDir:    cfg.Wasm.CacheDir,
	}
	if manifest.Wasm.MemoryPages > 0 {
		runtimeConfig.MemoryPages = manifest.Wasm.MemoryPages
	}

	runtime, err := host.NewRuntime(ctx, logger, runtimeConfig)
	if err != nil {
		logger.Fatal("Failed to initialize runtime", zap.Error(err))
	}
	defer runtime.Close(context.Background())

	compiled, err := runtime.LoadModule(ctx, manifest.WasmPath())
	if err != nil {
		logger.Fatal("Failed to load solver module", zap.Error(err))
	}

	client, err := host.NewClient(ctx, runtime, compiled, logger)
	if err != nil {
		logger.Fatal("Failed to instantiate solver module", zap.Error(err))
	}
	defer client.Close(context.Background())

	if *checkOnly {
		possible, err := client.CheckPossible(ctx, *field, *pieces, uint32(*height))
		if err != nil {
			logger.Fatal("checkPCPossible failed", zap.Error(err))
		}
		fmt.Println(possible)
		return
	}

	result, err := client.FindPath(ctx, *field, *pieces, uint32(*height))
	if err != nil {
		logger.Fatal("findPath failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("Failed to render result", zap.Error(err))
	}
	fmt.Println(string(out))
}
