package directory

import "testing"

func ex(company string) Exhibitor {
	return Exhibitor{Company: company}
}

func TestValidLetter(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"A", true},
		{"Z", true},
		{"a", false},
		{"AB", false},
		{"1", false},
		{"", false},
		{"Ä", false},
	}

	for _, tt := range tests {
		if got := ValidLetter(tt.in); got != tt.want {
			t.Errorf("ValidLetter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGroupByLetter_Always26Keys(t *testing.T) {
	for _, records := range [][]Exhibitor{nil, {}, {ex("Acme")}} {
		buckets := GroupByLetter(records)
		if len(buckets) != 26 {
			t.Fatalf("GroupByLetter yielded %d keys, want 26", len(buckets))
		}
		for l := 'A'; l <= 'Z'; l++ {
			bucket, ok := buckets[string(l)]
			if !ok {
				t.Fatalf("bucket %q missing", string(l))
			}
			if bucket == nil {
				t.Fatalf("bucket %q is nil, want empty slice", string(l))
			}
		}
	}
}

func TestGroupByLetter_Placement(t *testing.T) {
	records := []Exhibitor{
		ex("Acme"),
		ex("acorn"),
		ex("Beta"),
		ex("3M-ish"),  // digit initial: dropped from buckets
		ex("Übermax"), // non-ASCII initial: dropped from buckets
	}

	buckets := GroupByLetter(records)

	if len(buckets["A"]) != 2 {
		t.Errorf("bucket A has %d records, want 2", len(buckets["A"]))
	}
	if len(buckets["B"]) != 1 {
		t.Errorf("bucket B has %d records, want 1", len(buckets["B"]))
	}

	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	if total != 3 {
		t.Errorf("bucketed %d records, want 3 (non-letter initials dropped)", total)
	}
}

func TestFilterByLetter(t *testing.T) {
	records := []Exhibitor{
		ex("Acme"),
		ex("Beta"),
		ex("acorn"),
		ex("alpha"),
	}

	got := FilterByLetter(records, "A")

	if len(got) != 3 {
		t.Fatalf("FilterByLetter returned %d records, want 3", len(got))
	}
	// Input order preserved before sorting.
	want := []string{"Acme", "acorn", "alpha"}
	for i, w := range want {
		if got[i].Company != w {
			t.Errorf("got[%d].Company = %q, want %q", i, got[i].Company, w)
		}
	}
}

func TestFilterByLetter_SubsetOfBucket(t *testing.T) {
	records := []Exhibitor{
		ex("Acme"), ex("Beta"), ex("acorn"), ex("Cargo"), ex("ant farm"),
	}

	filtered := FilterByLetter(records, "A")
	bucket := GroupByLetter(records)["A"]

	if len(filtered) != len(bucket) {
		t.Fatalf("filtered %d vs bucket %d, want identical membership", len(filtered), len(bucket))
	}
	for i := range filtered {
		if filtered[i].Company != bucket[i].Company {
			t.Errorf("index %d: filtered %q vs bucket %q", i, filtered[i].Company, bucket[i].Company)
		}
	}
}

func TestGroupByStatus(t *testing.T) {
	partners := []Partner{
		{Name: "Globex", Type: "Gold", Status: StatusClosed},
		{Name: "Initech", Type: "Silver", Status: StatusAvailable},
		{Name: "Hooli", Type: "Gold", Status: StatusAvailable},
		{Name: "NoType", Type: "", Status: StatusAvailable}, // excluded
	}

	groups := GroupByStatus(partners)

	if len(groups.Closed) != 1 {
		t.Errorf("Closed has %d records, want 1", len(groups.Closed))
	}
	if len(groups.Available) != 2 {
		t.Errorf("Available has %d records, want 2", len(groups.Available))
	}
	if got := len(groups.Closed) + len(groups.Available); got != 3 {
		t.Errorf("closed+available = %d, want 3", got)
	}
}

func TestGroupByStatus_Empty(t *testing.T) {
	groups := GroupByStatus(nil)
	if groups.Closed == nil || groups.Available == nil {
		t.Fatal("groups must be non-nil slices for JSON encoding")
	}
	if len(groups.Closed) != 0 || len(groups.Available) != 0 {
		t.Error("empty input must yield empty groups")
	}
}
