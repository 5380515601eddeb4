package search

import "sort"

// BinaryIndex sorts its points by key once, then answers proximity
// queries with a lower-bound binary search followed by a scan of the
// contiguous matching neighbourhood. Preferred over BucketIndex when
// the matcher only needs to index a handful of hypothesis masses (a
// single peptide's c/z ladder or a single structure's Y-ladder) rather
// than a whole spectrum's peaks.
type BinaryIndex[T any] struct {
	tolerance float64
	by        ToleranceBy

	data []Point[T]
}

// NewBinaryIndex returns a BinaryIndex configured with tol/by.
func NewBinaryIndex[T any](tol float64, by ToleranceBy) *BinaryIndex[T] {
	return &BinaryIndex[T]{tolerance: tol, by: by}
}

func (idx *BinaryIndex[T]) SetData(points []Point[T]) {
	idx.data = make([]Point[T], len(points))
	copy(idx.data, points)
}

func (idx *BinaryIndex[T]) SetTolerance(tol float64) error {
	if tol <= 0 {
		return ErrToleranceNonPositive
	}
	idx.tolerance = tol
	return nil
}

func (idx *BinaryIndex[T]) SetToleranceBy(by ToleranceBy) { idx.by = by }

// Init sorts the data by key. Stable so duplicate keys keep insertion
// order, matching the bucket index's documented duplicate-key
// behaviour.
func (idx *BinaryIndex[T]) Init() error {
	if idx.tolerance <= 0 {
		return ErrToleranceNonPositive
	}
	sort.SliceStable(idx.data, func(i, j int) bool { return idx.data[i].Key < idx.data[j].Key })
	return nil
}

// lowerBound returns the index of the first point whose key is >= target.
func (idx *BinaryIndex[T]) lowerBound(target float64) int {
	return sort.Search(len(idx.data), func(i int) bool { return idx.data[i].Key >= target })
}

// Query returns every payload whose key matches target within
// tolerance, walking outward from the lower-bound position in both
// directions until Matches fails.
func (idx *BinaryIndex[T]) Query(target float64) []T {
	var result []T
	if len(idx.data) == 0 {
		return result
	}
	start := idx.lowerBound(target)
	for i := start; i < len(idx.data) && Matches(idx.data[i].Key, target, idx.tolerance, idx.by); i++ {
		result = append(result, idx.data[i].Payload)
	}
	for i := start - 1; i >= 0 && Matches(idx.data[i].Key, target, idx.tolerance, idx.by); i-- {
		result = append(result, idx.data[i].Payload)
	}
	return result
}

// Search is a short-circuiting existence check: does any key in the
// data match target within tolerance?
func (idx *BinaryIndex[T]) Search(target float64) bool {
	if len(idx.data) == 0 {
		return false
	}
	start := idx.lowerBound(target)
	if start < len(idx.data) && Matches(idx.data[start].Key, target, idx.tolerance, idx.by) {
		return true
	}
	if start > 0 && Matches(idx.data[start-1].Key, target, idx.tolerance, idx.by) {
		return true
	}
	return false
}
