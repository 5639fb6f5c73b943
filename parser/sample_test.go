package parser

import (
	"reflect"
	"testing"
)

const sampleDoc = `<div class="item">
  <span class="title">Beats Studio Buds</span>
  <span class="price">$99.99</span>
  <span class="rating">4.5 out of 5</span>
  <span class="reviews">27,532 ratings</span>
</div>
`

func TestParseSample(t *testing.T) {
	rec := ParseSample(sampleDoc)

	if rec == nil {
		t.Fatalf("ParseSample() returned nil record")
	}
	if rec.Title == nil || *rec.Title != "Beats Studio Buds" {
		t.Errorf("title = %v, want %q", rec.Title, "Beats Studio Buds")
	}
	if rec.Price == nil || *rec.Price != "99.99" {
		t.Errorf("price = %v, want %q", rec.Price, "99.99")
	}
	if rec.Rating == nil || *rec.Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", rec.Rating)
	}
	if rec.ReviewsCount == nil || *rec.ReviewsCount != 27532 {
		t.Errorf("reviews_count = %v, want 27532", rec.ReviewsCount)
	}
	if !rec.Parsed() {
		t.Errorf("record should count as parsed")
	}
}

func TestParseSampleIdempotent(t *testing.T) {
	first := ParseSample(sampleDoc)
	second := ParseSample(sampleDoc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated parses differ: %v vs %v", first, second)
	}
}

func TestParseSampleMissingFields(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{name: "empty document", html: ""},
		{name: "unrelated markup", html: `<div class="item"><span class="name">x</span></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseSample(tt.html)
			if rec == nil {
				t.Fatalf("ParseSample() should always return a record")
			}
			if rec.Title != nil || rec.Price != nil || rec.Rating != nil || rec.ReviewsCount != nil {
				t.Errorf("all fields should be nil, got %v", rec)
			}
			if rec.Parsed() {
				t.Errorf("record without title should not count as parsed")
			}
		})
	}
}

func TestParseSamplePartialRecord(t *testing.T) {
	html := `<span class="title">  Beats Studio Buds  </span>`
	rec := ParseSample(html)
	if rec.Title == nil || *rec.Title != "Beats Studio Buds" {
		t.Fatalf("title = %v, want trimmed %q", rec.Title, "Beats Studio Buds")
	}
	if !rec.Parsed() {
		t.Errorf("title-only record should still count as parsed")
	}
	if rec.Price != nil || rec.Rating != nil || rec.ReviewsCount != nil {
		t.Errorf("remaining fields should stay nil, got %v", rec)
	}
}

func TestParseSampleNumericFailuresDegradeToNil(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "unparsable rating token",
			html: `<span class="rating">4.5.1 out of 5</span>`,
		},
		{
			name: "review count overflow",
			html: `<span class="reviews">99999999999999999999999 ratings</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseSample(tt.html)
			if rec.Rating != nil {
				t.Errorf("rating = %v, want nil", *rec.Rating)
			}
			if rec.ReviewsCount != nil {
				t.Errorf("reviews_count = %v, want nil", *rec.ReviewsCount)
			}
		})
	}
}

// The sample variant only recognises "ratings" as the trailing word,
// unlike the live variant which also accepts "reviews". Intentional
// asymmetry, pinned here.
func TestParseSampleRejectsReviewsSuffix(t *testing.T) {
	rec := ParseSample(`<span class="reviews">120 reviews</span>`)
	if rec.ReviewsCount != nil {
		t.Fatalf("reviews_count = %v, want nil for %q suffix", *rec.ReviewsCount, "reviews")
	}
}
