package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/caioferraz/go-scrape-product/config"
	"github.com/caioferraz/go-scrape-product/models"
	"github.com/caioferraz/go-scrape-product/scraper"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	defaultCfg := config.DefaultConfig()

	modeDefault := defaultCfg.Mode
	if value, ok := config.EnvString("SCRAPER_MODE"); ok {
		modeDefault = value
	}
	sampleDefault := defaultCfg.SampleFile
	if value, ok := config.EnvString("SCRAPER_SAMPLE"); ok {
		sampleDefault = value
	}
	outputDefault := defaultCfg.OutputFile
	if value, ok := config.EnvString("SCRAPER_OUTPUT"); ok {
		outputDefault = value
	}
	timeoutDefault := defaultCfg.Timeout
	if value, ok, err := config.EnvDuration("SCRAPER_TIMEOUT"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid SCRAPER_TIMEOUT: %v\n", err)
		os.Exit(1)
	} else if ok {
		timeoutDefault = value
	}
	metricsDefault := defaultCfg.MetricsAddr
	if value, ok := config.EnvString("SCRAPER_METRICS_ADDR"); ok {
		metricsDefault = value
	}

	mode := flag.String("mode", modeDefault, "Run mode: sample or live")
	samplePath := flag.String("sample", sampleDefault, "Path to the local sample document")
	out := flag.String("out", outputDefault, "CSV output path (reserved; export not implemented yet)")
	timeout := flag.Duration("timeout", timeoutDefault, "HTTP request timeout")
	pause := flag.Duration("pause", defaultCfg.Pause, "Pause between candidate attempts")
	metricsAddr := flag.String("metrics-addr", metricsDefault, "Prometheus metrics listen address (e.g. :9090)")
	verbose := flag.Bool("v", false, "Enable verbose logging")

	flag.Parse()

	logger, level := newLogger(*verbose)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level.Level())

	cfg := defaultCfg
	cfg.Mode = *mode
	cfg.SampleFile = *samplePath
	cfg.OutputFile = *out
	cfg.Timeout = *timeout
	cfg.Pause = *pause
	cfg.MetricsAddr = *metricsAddr
	cfg.Verbose = *verbose
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("starting run",
		slog.String("mode", cfg.Mode),
		slog.String("sample", cfg.SampleFile),
	)

	runner, err := scraper.NewRunner(cfg)
	if err != nil {
		slog.Error("initialising runner", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" && runner.Metrics != nil {
		metricsServer = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(runner.Metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		slog.Info("metrics server enabled", slog.String("addr", cfg.MetricsAddr))
	}

	rec := runner.Run(ctx)

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		cancel()
	}

	printRecord(cfg.Mode, rec)
}

// printRecord renders the run outcome. The process always finishes with
// exit code zero; a missing record is a printed diagnostic, not a
// failure signal.
func printRecord(mode string, rec *models.ProductRecord) {
	separator := "--------------------------------------------------"
	fmt.Println("\n" + separator)
	if rec == nil {
		fmt.Printf("[%s] No record produced\n", mode)
		fmt.Println(separator)
		return
	}

	fmt.Printf("[%s] Parsed:\n", mode)
	fmt.Printf("  Title:    %s\n", stringField(rec.Title))
	fmt.Printf("  Price:    %s\n", stringField(rec.Price))
	if rec.Rating != nil {
		fmt.Printf("  Rating:   %s\n", strconv.FormatFloat(*rec.Rating, 'f', -1, 64))
	} else {
		fmt.Printf("  Rating:   null\n")
	}
	if rec.ReviewsCount != nil {
		fmt.Printf("  Reviews:  %d\n", *rec.ReviewsCount)
	} else {
		fmt.Printf("  Reviews:  null\n")
	}
	fmt.Println(separator)
}

func stringField(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

func newLogger(verbose bool) (*slog.Logger, *slog.LevelVar) {
	level := &slog.LevelVar{}
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(os.Stdout) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), level
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
