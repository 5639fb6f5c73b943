package parser

import (
	"regexp"
	"strings"

	"github.com/caioferraz/go-scrape-product/models"
)

// Patterns for live product pages. Markup varies between page templates,
// so price carries a chain of fallbacks and the reviews marker accepts
// either trailing word. Note the sample variant only accepts "ratings";
// that asymmetry is intentional and pinned by tests.
var (
	liveTitleRe     = regexp.MustCompile(`(?s)id="productTitle"[^>]*>\s*(.*?)\s*<`)
	ourPriceRe      = regexp.MustCompile(`id="priceblock_ourprice"[^>]*>\s*\$([0-9.,]+)`)
	dealPriceRe     = regexp.MustCompile(`id="priceblock_dealprice"[^>]*>\s*\$([0-9.,]+)`)
	priceWholeRe    = regexp.MustCompile(`class="a-price-whole">\s*([0-9,]+)\s*<`)
	priceFractionRe = regexp.MustCompile(`class="a-price-fraction">\s*([0-9]{2})\s*<`)
	liveRatingRe    = regexp.MustCompile(`aria-label="([0-9.]+)\s*out of\s*5\s*stars"`)
	liveReviewsRe   = regexp.MustCompile(`id="acrCustomerReviewText"[^>]*>\s*([0-9,]+)\s*(?:ratings|reviews)\s*<`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// ParseProduct extracts product fields from a live page. The title is
// mandatory: when its marker is absent the whole parse fails and nil is
// returned, never a record with a nil title. All other fields degrade to
// nil individually.
func ParseProduct(html string) *models.ProductRecord {
	title := liveTitle(html)
	if title == nil {
		return nil
	}
	return &models.ProductRecord{
		Title:        title,
		Price:        livePrice(html),
		Rating:       liveRating(html),
		ReviewsCount: liveReviews(html),
	}
}

func liveTitle(html string) *string {
	m := liveTitleRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	title := strings.TrimSpace(whitespaceRunRe.ReplaceAllString(m[1], " "))
	if title == "" {
		return nil
	}
	return &title
}

// livePrice tries the "our price" and "deal price" regions first, then
// falls back to the split whole/fraction markup. First hit wins; the
// fraction defaults to "00" when its marker is missing.
func livePrice(html string) *string {
	for _, re := range []*regexp.Regexp{ourPriceRe, dealPriceRe} {
		if m := re.FindStringSubmatch(html); m != nil {
			price := m[1]
			return &price
		}
	}

	whole := priceWholeRe.FindStringSubmatch(html)
	if whole == nil {
		return nil
	}
	fraction := "00"
	if m := priceFractionRe.FindStringSubmatch(html); m != nil {
		fraction = m[1]
	}
	price := strings.ReplaceAll(whole[1], ",", "") + "." + fraction
	return &price
}

func liveRating(html string) *float64 {
	m := liveRatingRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	return parseDecimal(m[1])
}

func liveReviews(html string) *int {
	m := liveReviewsRe.FindStringSubmatch(html)
	if m == nil {
		return nil
	}
	return parseCount(m[1])
}
