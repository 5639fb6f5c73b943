// Package parser extracts product listing fields from raw document text.
//
// Extraction is deliberately pattern based rather than DOM based: the
// sample document has a fixed shape, and live pages are matched
// best-effort against a handful of known field markers. Each field lives
// behind its own small helper so fallback branches can be tested on their
// own.
package parser

import (
	"strconv"
	"strings"
)

// parseCount converts a digit group with optional thousands separators to
// an int. Failures degrade to nil rather than an error.
func parseCount(s string) *int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

// parseDecimal converts a decimal token to a float. Failures degrade to
// nil rather than an error.
func parseDecimal(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
