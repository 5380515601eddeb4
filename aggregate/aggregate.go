// Package aggregate collapses per-spectrum SearchResults into the
// batch's final output: per scan, only the results tied for that
// scan's maximum score survive.
package aggregate

import (
	"sort"

	"github.com/ruizhang84/multiglycan-go/engine"
)

// Aggregate groups results by scan and keeps, within each scan, only
// the results whose score equals that scan's maximum — ties are kept,
// including a scan's very first result (it is always retained, never
// discarded as "tied with itself").
//
// Output is a flat sequence in ascending scan order.
func Aggregate(results []engine.SearchResult) []engine.SearchResult {
	bestScore := make(map[int32]float64)
	byScan := make(map[int32][]engine.SearchResult)

	for _, r := range results {
		byScan[r.Scan] = append(byScan[r.Scan], r)
		if best, ok := bestScore[r.Scan]; !ok || r.Score > best {
			bestScore[r.Scan] = r.Score
		}
	}

	scans := make([]int32, 0, len(byScan))
	for scan := range byScan {
		scans = append(scans, scan)
	}
	sort.Slice(scans, func(i, j int) bool { return scans[i] < scans[j] })

	var out []engine.SearchResult
	for _, scan := range scans {
		max := bestScore[scan]
		for _, r := range byScan[scan] {
			if r.Score == max {
				out = append(out, r)
			}
		}
	}
	return out
}
