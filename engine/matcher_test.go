package engine

import (
	"testing"

	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/internal/fixtures"
	"github.com/ruizhang84/multiglycan-go/mass"
	"github.com/ruizhang84/multiglycan-go/precursor"
	"github.com/ruizhang84/multiglycan-go/search"
	"github.com/ruizhang84/multiglycan-go/spectrum"
	"github.com/stretchr/testify/assert"
)

func buildNGlycanCore(t *testing.T) glycan.Result {
	t.Helper()
	builder := glycan.NewBuilder(glycan.Envelope{HexNAc: 2, Hex: 3})
	builder.Candidates = []glycan.Monosaccharide{glycan.GlcNAc, glycan.Man}
	return builder.Build()
}

// S4 — matcher pruning: no peak near peptide_mass(pep)+HexNAc means
// Stage 1 prunes every candidate, so the result is empty.
func TestSearch_PrunesWhenOxoniumAbsent(t *testing.T) {
	built := buildNGlycanCore(t)
	pep := "NITK"

	s := spectrum.Spectrum{
		Scan:            7,
		PrecursorCharge: 2,
		PrecursorMZ:     mass.MZOf(mass.PeptideMass(pep)+892.317218, 2),
		Peaks:           []spectrum.Peak{{MZ: 50.0, Intensity: 10}},
	}
	candidates := precursor.BuildCandidates(s, map[string]bool{pep: true}, built.Isomer, 1000, search.PPM)

	peakIndex, err := spectrum.BuildPeakIndex(s, 0.01, search.Dalton)
	assert.NoError(t, err)

	results := Search(s, peakIndex, candidates, built.Isomer, built.Subset, built.Mass, 0.01, search.Dalton)
	assert.Empty(t, results)
}

// S5 — positive identification: a synthetic spectrum built from the
// theoretical oxonium, c-ion, and Y-ladder m/z values for
// pep="NITK" (sequon at position 0) and glycan HexNAc2Hex3 yields
// exactly one result whose score is the sum of every placed intensity.
func TestSearch_PositiveIdentification(t *testing.T) {
	built := buildNGlycanCore(t)
	pep := "NITK"
	const tol = 0.0005

	var id string
	for candidateID := range built.Isomer.Query("HexNAc2Hex3") {
		id = candidateID
	}
	assert.NotEmpty(t, id, "builder must reach HexNAc2Hex3")

	var ancestorMass float64
	for ancestorID := range built.Subset.Query(id) {
		masses := built.Mass.Query(ancestorID)
		if len(masses) > 0 {
			ancestorMass = masses[0]
			break
		}
	}
	assert.NotZero(t, ancestorMass, "HexNAc2Hex3 must have a biosynthetic ancestor with a known mass")

	pepMass := mass.PeptideMass(pep)
	comp, err := glycan.Interpret("HexNAc2Hex3")
	assert.NoError(t, err)
	delta := mass.GlycanMass(glycan.ToMassComposition(comp))

	oxoniumPeak := spectrum.Peak{MZ: mass.MZOf(pepMass+mass.HexNAc, 1), Intensity: 100}
	cIonPeak := spectrum.Peak{MZ: mass.MZOf(mass.IonMass(pep[:3], mass.IonC)+delta, 1), Intensity: 80}
	yIonPeak := spectrum.Peak{MZ: mass.MZOf(pepMass+ancestorMass, 1), Intensity: 50}

	s := spectrum.Spectrum{
		Scan:            42,
		PrecursorCharge: 2,
		PrecursorMZ:     mass.MZOf(pepMass+delta, 2),
		Peaks:           []spectrum.Peak{oxoniumPeak, cIonPeak, yIonPeak},
	}

	candidates := precursor.BuildCandidates(s, map[string]bool{pep: true}, built.Isomer, 10, search.PPM)
	assert.Contains(t, candidates.Peptides(), pep)

	peakIndex, err := spectrum.BuildPeakIndex(s, tol, search.Dalton)
	assert.NoError(t, err)

	results := Search(s, peakIndex, candidates, built.Isomer, built.Subset, built.Mass, tol, search.Dalton)
	assert.Len(t, results, 1)
	result := results[0]
	assert.EqualValues(t, 42, result.Scan)
	assert.Equal(t, pep, result.Peptide)
	assert.Equal(t, "HexNAc2Hex3", result.Glycan)
	assert.Equal(t, 0, result.Position)
	assert.InDelta(t, 230.0, result.Score, 1e-6)
}

// The three diagnostic peaks above all land at m/z > 200; padding the
// spectrum with low-m/z background noise must not change the winning
// assignment or its score.
func TestSearch_PositiveIdentificationSurvivesBackgroundNoise(t *testing.T) {
	built := buildNGlycanCore(t)
	pep := "NITK"
	const tol = 0.0005

	var id string
	for candidateID := range built.Isomer.Query("HexNAc2Hex3") {
		id = candidateID
	}
	assert.NotEmpty(t, id)

	var ancestorMass float64
	for ancestorID := range built.Subset.Query(id) {
		masses := built.Mass.Query(ancestorID)
		if len(masses) > 0 {
			ancestorMass = masses[0]
			break
		}
	}
	assert.NotZero(t, ancestorMass)

	pepMass := mass.PeptideMass(pep)
	comp, err := glycan.Interpret("HexNAc2Hex3")
	assert.NoError(t, err)
	delta := mass.GlycanMass(glycan.ToMassComposition(comp))

	oxoniumPeak := spectrum.Peak{MZ: mass.MZOf(pepMass+mass.HexNAc, 1), Intensity: 100}
	cIonPeak := spectrum.Peak{MZ: mass.MZOf(mass.IonMass(pep[:3], mass.IonC)+delta, 1), Intensity: 80}
	yIonPeak := spectrum.Peak{MZ: mass.MZOf(pepMass+ancestorMass, 1), Intensity: 50}

	peaks := []spectrum.Peak{oxoniumPeak, cIonPeak, yIonPeak}
	peaks = append(peaks, fixtures.NoisePeaks(1, 15, 10.0, 50.0)...)

	s := spectrum.Spectrum{
		Scan:            42,
		PrecursorCharge: 2,
		PrecursorMZ:     mass.MZOf(pepMass+delta, 2),
		Peaks:           peaks,
	}

	candidates := precursor.BuildCandidates(s, map[string]bool{pep: true}, built.Isomer, 10, search.PPM)
	peakIndex, err := spectrum.BuildPeakIndex(s, tol, search.Dalton)
	assert.NoError(t, err)

	results := Search(s, peakIndex, candidates, built.Isomer, built.Subset, built.Mass, tol, search.Dalton)
	assert.Len(t, results, 1)
	assert.InDelta(t, 230.0, results[0].Score, 1e-6)
}
