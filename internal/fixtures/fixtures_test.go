package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoisePeaks_SameSeedReproducesSamePeaks(t *testing.T) {
	a := NoisePeaks(42, 10, 100.0, 2000.0)
	b := NoisePeaks(42, 10, 100.0, 2000.0)
	assert.Equal(t, a, b)
}

func TestNoisePeaks_StaysWithinRequestedRange(t *testing.T) {
	peaks := NoisePeaks(7, 25, 100.0, 500.0)
	assert.Len(t, peaks, 25)
	for _, p := range peaks {
		assert.GreaterOrEqual(t, p.MZ, 100.0)
		assert.LessOrEqual(t, p.MZ, 500.0+1.0)
		assert.Greater(t, p.Intensity, 0.0)
	}
}
