/*
Package fixtures builds small synthetic spectra for tests elsewhere in
this module, so test data doesn't have to hand-place every noise peak
around the handful of diagnostic ones a test actually cares about.
*/
package fixtures

import (
	"math/rand"

	weightedRand "github.com/mroth/weightedrand"

	"github.com/ruizhang84/multiglycan-go/spectrum"
)

// noiseIntensityChooser favors low-intensity noise peaks over high
// ones, matching the skewed intensity distribution of a real MS/MS
// spectrum's background.
var noiseIntensityChooser = weightedRand.NewChooser(
	weightedRand.Choice{Item: 1.0, Weight: 60},
	weightedRand.Choice{Item: 5.0, Weight: 25},
	weightedRand.Choice{Item: 20.0, Weight: 10},
	weightedRand.Choice{Item: 50.0, Weight: 5},
)

// NoisePeaks returns n synthetic peaks spaced evenly across
// [loMZ, hiMZ] with weighted-random intensities, for padding a planted
// spectrum with background a matcher must see through. Seed fixes the
// random source so a test calling this twice with the same seed gets
// the same peaks back.
func NoisePeaks(seed int64, n int, loMZ, hiMZ float64) []spectrum.Peak {
	rng := rand.New(rand.NewSource(seed))
	rand.Seed(seed) // weightedRand.Chooser.Pick draws from the global source

	peaks := make([]spectrum.Peak, n)
	step := (hiMZ - loMZ) / float64(n+1)
	for i := range peaks {
		peaks[i] = spectrum.Peak{
			MZ:        loMZ + step*float64(i+1) + rng.Float64()*step*0.1,
			Intensity: noiseIntensityChooser.Pick().(float64),
		}
	}
	return peaks
}
