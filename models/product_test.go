package models

import "testing"

func TestProductRecordParsed(t *testing.T) {
	title := "Beats Studio Buds"
	empty := ""

	tests := []struct {
		name string
		rec  *ProductRecord
		want bool
	}{
		{name: "nil record", rec: nil, want: false},
		{name: "nil title", rec: &ProductRecord{}, want: false},
		{name: "empty title still counts", rec: &ProductRecord{Title: &empty}, want: true},
		{name: "title only", rec: &ProductRecord{Title: &title}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Parsed(); got != tt.want {
				t.Fatalf("Parsed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProductRecordString(t *testing.T) {
	title := "Beats Studio Buds"
	price := "99.99"
	rating := 4.5
	reviews := 27532

	rec := &ProductRecord{Title: &title, Price: &price, Rating: &rating, ReviewsCount: &reviews}
	got := rec.String()
	want := `title="Beats Studio Buds" price="99.99" rating=4.5 reviews_count=27532`
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	sparse := &ProductRecord{Title: &title}
	got = sparse.String()
	want = `title="Beats Studio Buds" price=null rating=null reviews_count=null`
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	var missing *ProductRecord
	if got := missing.String(); got != "<no record>" {
		t.Fatalf("String() = %q, want %q", got, "<no record>")
	}
}
