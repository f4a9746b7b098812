// # cmd/jsdeps/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jsdeps/internal/core/app"
	"jsdeps/internal/core/config"
	"jsdeps/internal/shared/observability"
)

const VERSION = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsdeps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", config.DefaultPath, "Path to config file")
		format     = fs.String("format", "", "Output format: lines or json (overrides config)")
		explain    = fs.Bool("explain", false, "Print how every specifier was classified to stderr")
		verbose    = fs.Bool("verbose", false, "Enable verbose logging")
		version    = fs.Bool("version", false, "Print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: jsdeps [flags] [specifier ...]")
		fmt.Fprintln(stderr, "Reads specifiers from stdin, one per line, when none are given.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "jsdeps v%s\n", VERSION)
		return 0
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	config.ApplyEnvOverrides(cfg)
	if *format != "" {
		cfg.Output.Format = *format
	}
	if err := config.Validate(cfg); err != nil {
		slog.Error("invalid config", "error", err)
		return 1
	}

	specs := fs.Args()
	if len(specs) == 0 {
		specs, err = app.ReadSpecifiers(stdin)
		if err != nil {
			slog.Error("failed to read specifiers", "error", err)
			return 1
		}
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	a.SetLogger(logger)

	res, err := a.Resolve(context.Background(), specs)
	if err != nil {
		slog.Error("resolve failed", "error", err)
		return 1
	}

	if *explain {
		fmt.Fprint(stderr, renderExplain(res, a.Classifier.Registry().Len()))
	}

	if err := writeResult(stdout, cfg.Output.Format, res.Packages); err != nil {
		slog.Error("failed to write output", "error", err)
		return 1
	}

	if cfg.Observability.EnableMetrics {
		if err := observability.LogMetrics(logger); err != nil {
			slog.Warn("failed to gather metrics", "error", err)
		}
	}
	return 0
}

func writeResult(w io.Writer, format string, packages []string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		if packages == nil {
			packages = []string{}
		}
		return enc.Encode(packages)
	}
	for _, pkg := range packages {
		if _, err := fmt.Fprintln(w, pkg); err != nil {
			return err
		}
	}
	return nil
}
