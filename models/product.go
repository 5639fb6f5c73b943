// Package models defines data structures for the scraper.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductRecord represents the fields extracted from one product listing.
// A nil field means the source document did not yield a value; a nil Title
// is what separates "could not parse" from "parsed but sparse".
type ProductRecord struct {
	Title        *string  `json:"title"`
	Price        *string  `json:"price"`
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviews_count"`
}

// Parsed reports whether the record counts as a successful parse.
// Only the title is mandatory; every other field may be nil.
func (r *ProductRecord) Parsed() bool {
	return r != nil && r.Title != nil
}

// String renders the record for log lines and console output.
func (r *ProductRecord) String() string {
	if r == nil {
		return "<no record>"
	}

	var b strings.Builder
	b.WriteString("title=")
	b.WriteString(formatString(r.Title))
	b.WriteString(" price=")
	b.WriteString(formatString(r.Price))
	b.WriteString(" rating=")
	if r.Rating != nil {
		b.WriteString(strconv.FormatFloat(*r.Rating, 'f', -1, 64))
	} else {
		b.WriteString("null")
	}
	b.WriteString(" reviews_count=")
	if r.ReviewsCount != nil {
		b.WriteString(strconv.Itoa(*r.ReviewsCount))
	} else {
		b.WriteString("null")
	}
	return b.String()
}

func formatString(s *string) string {
	if s == nil {
		return "null"
	}
	return fmt.Sprintf("%q", *s)
}
