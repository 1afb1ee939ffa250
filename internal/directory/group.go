package directory

// group.go partitions normalized records: exhibitors by starting letter,
// partners by status.

import "regexp"

// letters is the full bucket key range for grouped exhibitor output.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var letterRe = regexp.MustCompile(`^[A-Z]$`)

// ValidLetter reports whether s is a single uppercase ASCII letter.
func ValidLetter(s string) bool {
	return letterRe.MatchString(s)
}

// firstLetter returns the uppercase first character of name and whether
// it is an ASCII letter. Names starting with digits, symbols, or
// non-ASCII characters report false and are excluded from letter
// buckets.
func firstLetter(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	c := name[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return "", false
	}
	return string(c), true
}

// FilterByLetter returns every exhibitor whose company name starts with
// the given letter, case-insensitively. The letter must already be
// validated with ValidLetter; input order is preserved.
func FilterByLetter(records []Exhibitor, letter string) []Exhibitor {
	out := make([]Exhibitor, 0)
	for _, rec := range records {
		if l, ok := firstLetter(rec.Company); ok && l == letter {
			out = append(out, rec)
		}
	}
	return out
}

// GroupByLetter partitions exhibitors into per-letter buckets. The
// result always contains exactly 26 keys A-Z, each a non-nil slice, even
// for empty input; callers and JSON consumers rely on every key being
// present. Records whose company name does not start with an ASCII
// letter are dropped from the buckets.
func GroupByLetter(records []Exhibitor) map[string][]Exhibitor {
	buckets := make(map[string][]Exhibitor, len(letters))
	for _, l := range letters {
		buckets[string(l)] = []Exhibitor{}
	}
	for _, rec := range records {
		if l, ok := firstLetter(rec.Company); ok {
			buckets[l] = append(buckets[l], rec)
		}
	}
	return buckets
}

// PartnerGroups is the two-way partner split by status.
type PartnerGroups struct {
	Closed    []Partner `json:"closed"`
	Available []Partner `json:"available"`
}

// GroupByStatus splits partners into closed and available groups.
// Only records with a non-empty type participate; each qualifying
// record lands in exactly one group, so the group sizes always sum to
// the grouped total.
func GroupByStatus(partners []Partner) PartnerGroups {
	groups := PartnerGroups{
		Closed:    []Partner{},
		Available: []Partner{},
	}
	for _, p := range partners {
		if p.Type == "" {
			continue
		}
		if p.Status == StatusClosed {
			groups.Closed = append(groups.Closed, p)
		} else {
			groups.Available = append(groups.Available, p)
		}
	}
	return groups
}
