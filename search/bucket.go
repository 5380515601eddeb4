package search

import "math"

// BucketIndex bins points into linear bins of (roughly) tolerance
// width, so a proximity query only has to scan the target's bin and
// its two neighbours. Amortised O(1) per query when the data is
// roughly uniform across bins.
type BucketIndex[T any] struct {
	tolerance float64
	by        ToleranceBy

	data []Point[T]
	bins [][]Point[T]

	minKey, maxKey float64
	// binWidth is the Dalton-equivalent width each bin spans. In PPM
	// mode this is computed conservatively from the widest key in the
	// data, so every bin is at least as wide as the matcher will ever
	// need — a few extra candidates get filtered by Matches per query,
	// which is cheap, rather than risk splitting a true match across
	// bins the +-1 neighbour scan doesn't cover.
	binWidth float64
}

// NewBucketIndex returns a BucketIndex configured with tol/by. Use
// SetData + Init to build it once the data is known.
func NewBucketIndex[T any](tol float64, by ToleranceBy) *BucketIndex[T] {
	return &BucketIndex[T]{tolerance: tol, by: by}
}

func (idx *BucketIndex[T]) SetData(points []Point[T]) { idx.data = points }

func (idx *BucketIndex[T]) SetTolerance(tol float64) error {
	if tol <= 0 {
		return ErrToleranceNonPositive
	}
	idx.tolerance = tol
	return nil
}

func (idx *BucketIndex[T]) SetToleranceBy(by ToleranceBy) { idx.by = by }

// Init builds the bucket grid from the current data. Called again
// whenever the data or tolerance changes (the matcher rebuilds a fresh
// BucketIndex per spectrum, so this is always a from-scratch build).
func (idx *BucketIndex[T]) Init() error {
	if idx.tolerance <= 0 {
		return ErrToleranceNonPositive
	}
	idx.bins = nil
	if len(idx.data) == 0 {
		return nil
	}

	idx.minKey, idx.maxKey = idx.data[0].Key, idx.data[0].Key
	for _, p := range idx.data {
		if p.Key < idx.minKey {
			idx.minKey = p.Key
		}
		if p.Key > idx.maxKey {
			idx.maxKey = p.Key
		}
	}

	idx.binWidth = idx.tolerance
	if idx.by == PPM {
		widest := math.Max(math.Abs(idx.minKey), math.Abs(idx.maxKey))
		idx.binWidth = widest * idx.tolerance * 1e-6
		if idx.binWidth <= 0 {
			idx.binWidth = idx.tolerance
		}
	}

	bucketCount := int((idx.maxKey-idx.minKey)/idx.binWidth) + 1
	idx.bins = make([][]Point[T], bucketCount)
	for _, p := range idx.data {
		i := idx.indexOf(p.Key)
		idx.bins[i] = append(idx.bins[i], p)
	}
	return nil
}

func (idx *BucketIndex[T]) indexOf(key float64) int {
	return int((key - idx.minKey) / idx.binWidth)
}

// Query returns every payload whose key matches target within
// tolerance, preserving insertion order within each bin scanned.
func (idx *BucketIndex[T]) Query(target float64) []T {
	var result []T
	if len(idx.bins) == 0 {
		return result
	}
	center := idx.indexOf(target)
	for i := center - 1; i <= center+1; i++ {
		if i < 0 || i >= len(idx.bins) {
			continue
		}
		for _, p := range idx.bins[i] {
			if Matches(p.Key, target, idx.tolerance, idx.by) {
				result = append(result, p.Payload)
			}
		}
	}
	return result
}

// Search is a short-circuiting existence check equivalent to
// len(Query(target)) > 0, but without materialising the slice.
func (idx *BucketIndex[T]) Search(target float64) bool {
	if len(idx.bins) == 0 {
		return false
	}
	center := idx.indexOf(target)
	for i := center - 1; i <= center+1; i++ {
		if i < 0 || i >= len(idx.bins) {
			continue
		}
		for _, p := range idx.bins[i] {
			if Matches(p.Key, target, idx.tolerance, idx.by) {
				return true
			}
		}
	}
	return false
}
