/*
Package search provides the two tolerance-aware scalar indexes the rest
of this module queries against: a linear-bucket index tuned for
amortised constant-time proximity queries, and a sorted-array binary
index for when the key population is small enough that a bucket grid
isn't worth building.

Both answer the same question: "which payloads were inserted under a
key within tolerance of this target?" under one of two matching modes.
*/
package search

import "fmt"

// ToleranceBy selects how a tolerance value is interpreted.
type ToleranceBy int

const (
	// Dalton tolerance is an absolute mass difference.
	Dalton ToleranceBy = iota
	// PPM tolerance is relative to the target, in parts per million.
	PPM
)

// Point pairs a scalar key with an arbitrary payload. Indexes bucket
// and compare by Key; Payload travels along for the ride.
type Point[T any] struct {
	Key     float64
	Payload T
}

// Matches reports whether key falls within tolerance tol of target,
// under the given mode. In Dalton mode the test is symmetric; in PPM
// mode it is not, since the denominator is always target. A
// non-positive target never matches in PPM mode.
func Matches(key, target, tol float64, by ToleranceBy) bool {
	if by == Dalton {
		return absf(key-target) <= tol
	}
	if target <= 0 {
		return false
	}
	return absf(key-target)/target*1e6 <= tol
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ScalarIndex is the capability every index in this package implements:
// load points, build, then answer proximity queries against a fixed
// tolerance and mode.
type ScalarIndex[T any] interface {
	SetData(points []Point[T])
	SetTolerance(tol float64) error
	SetToleranceBy(by ToleranceBy)
	Init() error
	Query(target float64) []T
	Search(target float64) bool
}

// ErrToleranceNonPositive is returned by SetTolerance/Init when the
// configured tolerance is <= 0 — the indexes refuse to build on a
// non-positive tolerance rather than produce a degenerate bucket grid
// or a query that matches everything.
var ErrToleranceNonPositive = fmt.Errorf("search: tolerance must be positive")
