package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pointsOf(keys []float64) []Point[float64] {
	pts := make([]Point[float64], len(keys))
	for i, k := range keys {
		pts[i] = Point[float64]{Key: k, Payload: k}
	}
	return pts
}

func TestBucketIndex_NeighbourScan(t *testing.T) {
	idx := NewBucketIndex[float64](0.010, Dalton)
	idx.SetData(pointsOf([]float64{100.000, 100.005, 100.020}))
	assert.NoError(t, idx.Init())

	assert.ElementsMatch(t, []float64{100.000, 100.005}, idx.Query(100.006))
	assert.ElementsMatch(t, []float64{100.005, 100.020}, idx.Query(100.015))
}

func TestBucketIndex_Empty(t *testing.T) {
	idx := NewBucketIndex[float64](0.01, Dalton)
	idx.SetData(nil)
	assert.NoError(t, idx.Init())

	assert.Empty(t, idx.Query(100.0))
	assert.False(t, idx.Search(100.0))
}

func TestBucketIndex_NonPositiveTolerance(t *testing.T) {
	idx := NewBucketIndex[float64](0, Dalton)
	idx.SetData(pointsOf([]float64{1.0}))
	assert.ErrorIs(t, idx.Init(), ErrToleranceNonPositive)
}

func TestBucketIndex_SearchMatchesQueryNonEmpty(t *testing.T) {
	idx := NewBucketIndex[float64](0.01, Dalton)
	idx.SetData(pointsOf([]float64{10.0, 20.0, 30.5}))
	assert.NoError(t, idx.Init())

	for _, target := range []float64{10.0, 20.005, 99.0} {
		assert.Equal(t, len(idx.Query(target)) > 0, idx.Search(target))
	}
}

func TestBucketIndex_ContainsEveryInsertedPoint(t *testing.T) {
	keys := []float64{5.0, 5.5, 6.25, 1000.0}
	idx := NewBucketIndex[float64](0.001, Dalton)
	idx.SetData(pointsOf(keys))
	assert.NoError(t, idx.Init())

	for _, k := range keys {
		assert.Contains(t, idx.Query(k), k)
	}
}

func TestBucketIndex_PPMBoundary(t *testing.T) {
	idx := NewBucketIndex[float64](10, PPM)
	idx.SetData(pointsOf([]float64{1000.0}))
	assert.NoError(t, idx.Init())

	assert.True(t, Matches(1000.009, 1000.0, 10, PPM))
	assert.False(t, Matches(1000.011, 1000.0, 10, PPM))
}
