// feedgen generates a matched pair of synthetic vendor payloads from a
// scenario file. The output decodes cleanly through the filtering
// pipeline and is byte-stable for a given scenario, so it doubles as
// fixture data.
//
// Usage: go run ./cmd/feedgen -scenario scenario.yaml -out-dir fixtures/
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ashler-herrick/betedge/internal/scenario"
	"github.com/ashler-herrick/betedge/internal/version"
)

func main() {
	scenarioPath := flag.String("scenario", "scenario.yaml", "path to scenario file")
	outDir := flag.String("out-dir", ".", "directory to write option.json and stock.json to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting feedgen",
		"version", version.Version,
		"scenario", *scenarioPath,
	)

	cfg, err := scenario.LoadAndValidate(*scenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", "error", err)
		os.Exit(1)
	}

	payloads, err := scenario.Generate(cfg)
	if err != nil {
		logger.Error("failed to generate payloads", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	optionPath := filepath.Join(*outDir, "option.json")
	if err := os.WriteFile(optionPath, payloads.Option, 0644); err != nil {
		logger.Error("failed to write option payload", "error", err)
		os.Exit(1)
	}
	stockPath := filepath.Join(*outDir, "stock.json")
	if err := os.WriteFile(stockPath, payloads.Stock, 0644); err != nil {
		logger.Error("failed to write stock payload", "error", err)
		os.Exit(1)
	}

	logger.Info("payloads written",
		"root", cfg.Root,
		"date", cfg.Date,
		"seed", cfg.Seed,
		"option_path", optionPath,
		"option_bytes", len(payloads.Option),
		"stock_path", stockPath,
		"stock_bytes", len(payloads.Stock),
	)
}
