// betedge filters a tick-level option chain against concurrent stock
// quotes and writes the survivors as a columnar artifact.
//
// Usage:
//
//	betedge -option option.json -stock stock.json -date 20231110 \
//	        -max-dte 30 -base-pct 0.10 -format parquet -out chain.parquet
//
// With -quotes-only the option payload is skipped and the stock payload
// is re-encoded as-is.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ashler-herrick/betedge"
	"github.com/ashler-herrick/betedge/internal/version"
)

func main() {
	optionPath := flag.String("option", "", "path to the vendor option payload (JSON)")
	stockPath := flag.String("stock", "", "path to the vendor stock payload (JSON)")
	outPath := flag.String("out", "", "path to write the artifact to")
	format := flag.String("format", "parquet", "artifact format: ipc or parquet")
	date := flag.Uint("date", 0, "evaluation date as YYYYMMDD")
	maxDTE := flag.Int("max-dte", 30, "maximum days to expiration")
	basePct := flag.Float64("base-pct", 0.10, "base moneyness band as a fraction of the underlying")
	workers := flag.Int("workers", 1, "concurrent contract filtering workers")
	quotesOnly := flag.Bool("quotes-only", false, "re-encode the stock payload without filtering")
	verbose := flag.Bool("verbose", false, "log at debug level")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	logger = logger.With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	if *stockPath == "" {
		usageError("-stock is required")
	}
	if *outPath == "" {
		usageError("-out is required")
	}
	if !*quotesOnly && *optionPath == "" {
		usageError("-option is required unless -quotes-only is set")
	}
	if *format != "ipc" && *format != "parquet" {
		usageError(fmt.Sprintf("unknown format %q, want ipc or parquet", *format))
	}

	logger.Info("starting betedge",
		"version", version.Version,
		"commit", version.Commit,
		"format", *format,
		"quotes_only", *quotesOnly,
	)

	stockData, err := os.ReadFile(*stockPath)
	if err != nil {
		logger.Error("failed to read stock payload", "error", err)
		os.Exit(1)
	}

	var stats betedge.Stats
	opts := []betedge.Option{
		betedge.WithLogger(logger),
		betedge.WithStats(&stats),
		betedge.WithParallelism(*workers),
	}

	var artifact []byte
	if *quotesOnly {
		switch *format {
		case "ipc":
			artifact, err = betedge.QuotesToIPC(stockData, opts...)
		case "parquet":
			artifact, err = betedge.QuotesToParquet(stockData, opts...)
		}
	} else {
		optionData, rerr := os.ReadFile(*optionPath)
		if rerr != nil {
			logger.Error("failed to read option payload", "error", rerr)
			os.Exit(1)
		}

		params := betedge.Params{
			CurrentDate: betedge.Date(*date),
			MaxDTE:      *maxDTE,
			BasePct:     *basePct,
		}

		switch *format {
		case "ipc":
			artifact, err = betedge.FilterToIPC(optionData, stockData, params, opts...)
		case "parquet":
			artifact, err = betedge.FilterToParquet(optionData, stockData, params, opts...)
		}
	}
	if err != nil {
		var ae *betedge.ArgumentError
		if errors.As(err, &ae) {
			usageError(ae.Error())
		}
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, artifact, 0644); err != nil {
		logger.Error("failed to write artifact", "error", err)
		os.Exit(1)
	}

	logger.Info("artifact written",
		"path", *outPath,
		"rows", stats.Rows,
		"bytes", stats.Bytes,
		"contracts", stats.Contracts,
		"dropped_expiry", stats.DroppedExpiry,
		"unmatched", stats.Unmatched,
		"dropped_band", stats.DroppedBand,
	)
}

func usageError(msg string) {
	fmt.Fprintf(os.Stderr, "betedge: %s\n", msg)
	flag.Usage()
	os.Exit(2)
}
