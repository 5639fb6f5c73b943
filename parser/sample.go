package parser

import (
	"regexp"
	"strings"

	"github.com/caioferraz/go-scrape-product/models"
)

// Patterns for the fixed sample document. Each field is wrapped in a
// literal span marker, so exact patterns are enough here.
var (
	sampleTitleRe   = regexp.MustCompile(`<span class="title">([^<]+)</span>`)
	samplePriceRe   = regexp.MustCompile(`<span class="price">\$?([0-9,.]+)</span>`)
	sampleRatingRe  = regexp.MustCompile(`<span class="rating">([0-9.]+)\s*out of\s*5</span>`)
	sampleReviewsRe = regexp.MustCompile(`<span class="reviews">([0-9,]+)\s*ratings</span>`)
)

// ParseSample extracts product fields from the local sample document.
// It always returns a record; absent or unparsable fields stay nil, and
// callers decide success by checking the title.
func ParseSample(html string) *models.ProductRecord {
	return &models.ProductRecord{
		Title:        sampleTitle(html),
		Price:        samplePrice(html),
		Rating:       sampleRating(html),
		ReviewsCount: sampleReviews(html),
	}
}

func sampleTitle(html string) *string {
	m := sampleTitleRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	title := strings.TrimSpace(m[1])
	return &title
}

func samplePrice(html string) *string {
	m := samplePriceRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	price := strings.TrimSpace(m[1])
	return &price
}

func sampleRating(html string) *float64 {
	m := sampleRatingRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	return parseDecimal(m[1])
}

func sampleReviews(html string) *int {
	m := sampleReviewsRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	return parseCount(m[1])
}
