// Package config defines the search run's configuration contract,
// loadable from JSON or populated directly from CLI flags.
package config

import (
	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/protein"
	"github.com/ruizhang84/multiglycan-go/search"
)

// SearchParameter is the full set of knobs a search run needs.
type SearchParameter struct {
	MissCleavage        int                `json:"miss_cleavage"`
	Proteases           []protein.Protease `json:"proteases"`
	Tolerance           float64            `json:"tolerance"`
	ToleranceBy         search.ToleranceBy `json:"tolerance_by"`
	PrecursorTolerance  float64            `json:"precursor_tolerance"`
	CompositionEnvelope glycan.Envelope    `json:"composition_envelope"`
}

// Default returns a SearchParameter with reasonable defaults: trypsin,
// one missed cleavage, 10ppm fragment and precursor tolerance.
func Default() SearchParameter {
	return SearchParameter{
		MissCleavage:       1,
		Proteases:          []protein.Protease{protein.Trypsin},
		Tolerance:          10,
		ToleranceBy:        search.PPM,
		PrecursorTolerance: 10,
	}
}
