package spectrum

import (
	"github.com/ruizhang84/multiglycan-go/mass"
	"github.com/ruizhang84/multiglycan-go/search"
)

// BuildPeakIndex enumerates every (peak, charge) neutral-mass hypothesis
// for s — charge ranges over 1..PrecursorCharge — and returns a
// BucketIndex keyed by that mass, ready for the matcher's proximity
// queries. Rebuilt per spectrum and whenever tolerance changes, per the
// peak index's worker-local lifecycle.
func BuildPeakIndex(s Spectrum, tol float64, by search.ToleranceBy) (*search.BucketIndex[Peak], error) {
	idx := search.NewBucketIndex[Peak](tol, by)

	var points []search.Point[Peak]
	for _, peak := range s.Peaks {
		for charge := int32(1); charge <= s.PrecursorCharge; charge++ {
			points = append(points, search.Point[Peak]{
				Key:     mass.SpectrumMass(peak.MZ, int(charge)),
				Payload: peak,
			})
		}
	}
	idx.SetData(points)
	if err := idx.Init(); err != nil {
		return nil, err
	}
	return idx, nil
}
