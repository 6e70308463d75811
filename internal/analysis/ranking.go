package analysis

import (
	"sort"

	"github.com/hidden-champions/county-atlas/internal/dataset"
)

// TopN returns the top n records sorted descending by the given metric.
// The sort is stable: ties keep their original row order. Records with a
// missing metric value sort after every present value rather than being
// dropped, so they can still surface when n exceeds the number of rows with
// data. The input slice is never reordered.
func TopN(records []dataset.CountyRecord, metric dataset.Key, n int) []dataset.CountyRecord {
	sorted := make([]dataset.CountyRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := sorted[i].Metric(metric)
		b := sorted[j].Metric(metric)
		switch {
		case a.Valid && !b.Valid:
			return true
		case !a.Valid && b.Valid:
			return false
		case !a.Valid && !b.Valid:
			return false
		default:
			return a.Float > b.Float
		}
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
