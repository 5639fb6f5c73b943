package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Run modes accepted by the scraper.
const (
	ModeSample = "sample"
	ModeLive   = "live"
)

// Config holds scraper configuration.
type Config struct {
	Mode           string
	SampleFile     string
	OutputFile     string // reserved for CSV export, not written yet
	CandidateURLs  []string
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	Pause          time.Duration
	MetricsAddr    string
	Verbose        bool
}

// DefaultConfig returns the defaults for the demo target listing.
func DefaultConfig() *Config {
	return &Config{
		Mode:       ModeSample,
		SampleFile: "sample.html",
		OutputFile: "output.csv",
		CandidateURLs: []string{
			"https://www.amazon.com/dp/B096SV8N4C",
			"https://www.amazon.com/Beats-Studio-Buds-Noise-Cancelling/dp/B096SV8N4C",
		},
		UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0 Safari/537.36",
		AcceptLanguage: "en-US,en;q=0.9",
		Timeout:        15 * time.Second,
		Pause:          time.Second,
		MetricsAddr:    "",
		Verbose:        false,
	}
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.Mode != ModeSample && c.Mode != ModeLive {
		return fmt.Errorf("mode must be %q or %q", ModeSample, ModeLive)
	}
	if c.SampleFile == "" {
		return fmt.Errorf("sample file cannot be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if len(c.CandidateURLs) == 0 {
		return fmt.Errorf("candidate URL list cannot be empty")
	}
	for _, candidate := range c.CandidateURLs {
		parsed, err := url.Parse(candidate)
		if err != nil {
			return fmt.Errorf("invalid candidate URL %q: %w", candidate, err)
		}
		if parsed.Host == "" {
			return fmt.Errorf("candidate URL %q must include a host", candidate)
		}
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}
	if c.AcceptLanguage == "" {
		return fmt.Errorf("accept-language cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Pause < 0 {
		return fmt.Errorf("pause cannot be negative")
	}
	return nil
}

// EnvString reads a string override from the environment.
func EnvString(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvInt reads an integer override from the environment.
func EnvInt(key string) (int, bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, true, nil
}

// EnvDuration reads a duration override from the environment.
func EnvDuration(key string) (time.Duration, bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return value, true, nil
}
