// Package scraper orchestrates retrieval of a single product listing,
// either from the local sample document or from live candidate pages with
// automatic fallback to the sample.
package scraper

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/caioferraz/go-scrape-product/config"
	"github.com/caioferraz/go-scrape-product/fetcher"
	"github.com/caioferraz/go-scrape-product/models"
	"github.com/caioferraz/go-scrape-product/parser"
)

// state enumerates the mode controller's states. Transitions are strictly
// sequential: live mode walks the candidate list and can only end in
// stateDone, reaching it through stateFallback at worst.
type state int

const (
	stateSample state = iota
	stateTryCandidate
	stateFallback
	stateDone
)

// Runner drives the retrieval state machine for one run.
type Runner struct {
	cfg     *config.Config
	Fetcher *fetcher.Fetcher
	Metrics *Metrics
}

// NewRunner builds a runner instance configured from cfg.
func NewRunner(cfg *config.Config) (*Runner, error) {
	m := NewMetrics()
	f, err := fetcher.New(cfg, m)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, Fetcher: f, Metrics: m}, nil
}

// Run executes the configured mode and returns the extracted record, or
// nil when no source yielded one. Failures never escape as errors: live
// mode degrades to sample mode, and a missing sample document just ends
// the run without a record.
func (r *Runner) Run(ctx context.Context) *models.ProductRecord {
	if ctx == nil {
		ctx = context.Background()
	}

	st := stateSample
	if r.cfg.Mode == config.ModeLive {
		st = stateTryCandidate
	}

	var rec *models.ProductRecord
	candidate := 0
	for st != stateDone {
		switch st {
		case stateSample:
			rec = r.runSample()
			st = stateDone

		case stateTryCandidate:
			if candidate >= len(r.cfg.CandidateURLs) || ctx.Err() != nil {
				st = stateFallback
				continue
			}
			rec = r.tryCandidate(ctx, r.cfg.CandidateURLs[candidate])
			if rec != nil {
				st = stateDone
				continue
			}
			candidate++
			r.pause(ctx)

		case stateFallback:
			slog.Info("all candidates failed, falling back to sample mode")
			r.Metrics.IncFallback()
			st = stateSample
		}
	}
	return rec
}

// runSample loads and parses the local sample document. A missing file is
// terminal: it is reported and no record is produced, with no further
// fallback to try.
func (r *Runner) runSample() *models.ProductRecord {
	slog.Info("parsing sample document", slog.String("path", r.cfg.SampleFile))

	raw, err := os.ReadFile(r.cfg.SampleFile)
	if err != nil {
		slog.Error("sample document not found",
			slog.String("path", r.cfg.SampleFile),
			slog.Any("error", err),
		)
		return nil
	}

	rec := parser.ParseSample(string(raw))
	if rec.Parsed() {
		r.Metrics.IncExtraction("ok")
	} else {
		r.Metrics.IncExtraction("sparse")
	}
	return rec
}

// tryCandidate fetches and parses one candidate URL. Both fetch and
// extraction failures collapse to nil, telling the state machine to move
// on to the next candidate.
func (r *Runner) tryCandidate(ctx context.Context, url string) *models.ProductRecord {
	slog.Info("fetching candidate", slog.String("url", url))

	body := r.Fetcher.Fetch(ctx, url)
	if body == "" {
		slog.Info("fetch failed or blocked, trying next candidate", slog.String("url", url))
		return nil
	}

	rec := parser.ParseProduct(body)
	if !rec.Parsed() {
		r.Metrics.IncExtraction("failed")
		slog.Info("extraction failed, trying next candidate", slog.String("url", url))
		return nil
	}

	r.Metrics.IncExtraction("ok")
	return rec
}

func (r *Runner) pause(ctx context.Context) {
	if r.cfg.Pause <= 0 {
		return
	}
	t := time.NewTimer(r.cfg.Pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
