package directory

// sort.go orders exhibitors by company name using locale-aware
// collation rather than byte order, so "apple" sorts before "Banana"
// and accented names land where a reader expects them.

import (
	"sort"

	"golang.org/x/text/collate"
)

// SortExhibitors orders records by company name, ascending, using the
// given collator. The sort is stable: records with identical names keep
// their original row order.
//
// Collators carry internal buffers and are not safe for concurrent use,
// so callers build one per request (see Service.collator).
func SortExhibitors(c *collate.Collator, records []Exhibitor) {
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].Company, records[j].Company) < 0
	})
}
