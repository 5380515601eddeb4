package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryIndex_Query(t *testing.T) {
	idx := NewBinaryIndex[float64](0.01, Dalton)
	idx.SetData(pointsOf([]float64{100.020, 100.000, 100.005}))
	assert.NoError(t, idx.Init())

	assert.ElementsMatch(t, []float64{100.000, 100.005}, idx.Query(100.006))
}

func TestBinaryIndex_Empty(t *testing.T) {
	idx := NewBinaryIndex[float64](0.01, Dalton)
	idx.SetData(nil)
	assert.NoError(t, idx.Init())

	assert.Empty(t, idx.Query(5.0))
	assert.False(t, idx.Search(5.0))
}

func TestBinaryIndex_SearchAgreesWithQuery(t *testing.T) {
	idx := NewBinaryIndex[float64](5, PPM)
	idx.SetData(pointsOf([]float64{500.0, 1000.0, 1500.0, 2000.0}))
	assert.NoError(t, idx.Init())

	for _, target := range []float64{500.0, 1000.002, 1999.0} {
		assert.Equal(t, len(idx.Query(target)) > 0, idx.Search(target))
	}
}

func TestBinaryIndex_DuplicateKeysPreserveInsertionOrder(t *testing.T) {
	idx := NewBinaryIndex[int](0.001, Dalton)
	idx.SetData([]Point[int]{
		{Key: 1.0, Payload: 1},
		{Key: 1.0, Payload: 2},
		{Key: 1.0, Payload: 3},
	})
	assert.NoError(t, idx.Init())

	assert.Equal(t, []int{1, 2, 3}, idx.Query(1.0))
}

func TestBinaryIndex_NonPositiveTolerance(t *testing.T) {
	idx := NewBinaryIndex[float64](-1, Dalton)
	idx.SetData(pointsOf([]float64{1.0}))
	assert.ErrorIs(t, idx.Init(), ErrToleranceNonPositive)
}
