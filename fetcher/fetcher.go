// Package fetcher retrieves product pages over HTTP.
//
// The fetcher never surfaces an error to its caller: an empty body is the
// sole failure signal, whatever went wrong underneath. Failures are still
// classified for logs and metrics.
package fetcher

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/caioferraz/go-scrape-product/config"
	"github.com/gocolly/colly/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	cacheSize    = 8
)

// Metrics is the subset of scraper telemetry the fetcher reports to.
type Metrics interface {
	IncFetch(phase string)
	ObserveFetchDuration(d time.Duration)
	IncFetchError(category string)
}

// Fetcher issues single-page GET requests with browser-like headers.
type Fetcher struct {
	cfg       *config.Config
	transport http.RoundTripper
	metrics   Metrics
	cache     *lru.Cache[string, string]
}

// New builds a fetcher configured from cfg. Successful bodies are held in
// a small LRU so a candidate URL is never fetched twice in one process.
func New(cfg *config.Config, m Metrics) (*Fetcher, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Fetcher{
		cfg: cfg,
		transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   cfg.Timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		metrics: m,
		cache:   cache,
	}, nil
}

// WithTransport overrides the HTTP transport used for requests.
func (f *Fetcher) WithTransport(rt http.RoundTripper) {
	f.transport = rt
}

// Fetch issues a GET for url and returns the body text on HTTP 200, with
// invalid byte sequences replaced. Any other status, transport failure,
// or cancellation yields an empty string.
func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	if ctx != nil && ctx.Err() != nil {
		return ""
	}

	if body, ok := f.cache.Get(url); ok {
		slog.Debug("fetch cache hit", slog.String("url", url))
		return body
	}

	var (
		body    string
		status  int
		lastErr error
	)

	c := f.newCollector()
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", acceptHeader)
		r.Headers.Set("Accept-Language", f.cfg.AcceptLanguage)
		r.Headers.Set("Connection", "keep-alive")
	})
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		if r.StatusCode == http.StatusOK {
			body = strings.ToValidUTF8(string(r.Body), "�")
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		lastErr = err
	})

	if f.metrics != nil {
		f.metrics.IncFetch("started")
	}
	start := time.Now()
	if err := c.Visit(url); err != nil && lastErr == nil {
		lastErr = err
	}
	c.Wait()
	if f.metrics != nil {
		f.metrics.ObserveFetchDuration(time.Since(start))
	}

	if body == "" {
		category := errorTypeLabel(classifyError(lastErr, status))
		slog.Warn("fetch failed",
			slog.String("url", url),
			slog.Int("status", status),
			slog.String("category", category),
			slog.Any("error", lastErr),
		)
		if f.metrics != nil {
			f.metrics.IncFetchError(category)
		}
		return ""
	}

	if f.metrics != nil {
		f.metrics.IncFetch("ok")
	}
	f.cache.Add(url, body)
	return body
}

func (f *Fetcher) newCollector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(f.cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.cfg.Timeout)
	c.IgnoreRobotsTxt = true
	c.WithTransport(f.transport)
	return c
}
