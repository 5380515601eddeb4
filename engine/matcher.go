package engine

import (
	"sort"

	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/mass"
	"github.com/ruizhang84/multiglycan-go/precursor"
	"github.com/ruizhang84/multiglycan-go/protein"
	"github.com/ruizhang84/multiglycan-go/search"
	"github.com/ruizhang84/multiglycan-go/spectrum"
)

// Search runs the three-stage oxonium / peptide-backbone / glycan-Y-
// ladder match for one spectrum against its candidate set, returning
// at most one result: the unique best-scoring (peptide, glycan,
// position) assignment, or nil if no candidate clears every stage.
//
// peakIndex is the per-spectrum index built by spectrum.BuildPeakIndex
// with the same tolerance/by as passed here; it is reused across every
// stage's queries, matching the teacher's single-pass-over-the-index
// idiom.
//
// Iteration is in sorted order over peptides, glycans, sites and
// structure ids, so ties are broken deterministically: the first
// candidate to reach a given score wins, later ties are discarded.
func Search(
	s spectrum.Spectrum,
	peakIndex *search.BucketIndex[spectrum.Peak],
	candidates *precursor.MatchResultStore,
	isomer *glycan.Store,
	subset *glycan.Store,
	massStore *glycan.MassStore,
	tol float64,
	by search.ToleranceBy,
) []SearchResult {
	var best *SearchResult
	bestScore := 0.0

	for _, pep := range candidates.Peptides() {
		pepMass := mass.PeptideMass(pep)

		oxoniumScore, ok := oxoniumCheck(peakIndex, pepMass)
		if !ok {
			continue
		}

		sites := protein.FindNGlycanSites(pep)
		for _, g := range candidates.GlycansOf(pep) {
			delta, err := glycanDelta(g)
			if err != nil {
				continue
			}

			for _, pos := range sites {
				backboneScore, ok := backboneLadder(s, pep, pos, delta, tol, by)
				if !ok {
					continue
				}

				for _, id := range sortedSet(isomer.Query(g)) {
					yScore, ok := yLadder(s, pepMass, subset, massStore, id, tol, by)
					if !ok {
						continue
					}

					score := oxoniumScore + backboneScore + yScore
					if score > bestScore {
						bestScore = score
						result := SearchResult{Scan: s.Scan, Peptide: pep, Glycan: g, Position: pos, Score: score}
						best = &result
					}
				}
			}
		}
	}

	if best == nil || bestScore <= 0 {
		return nil
	}
	return []SearchResult{*best}
}

func glycanDelta(name string) (float64, error) {
	composition, err := glycan.Interpret(name)
	if err != nil {
		return 0, err
	}
	return mass.GlycanMass(glycan.ToMassComposition(composition)), nil
}

// oxoniumCheck queries the peak index for the m+HexNAc and m+2*HexNAc
// oxonium hypotheses, keeping the most intense hit for each. Empty
// only if neither hypothesis matched any peak.
func oxoniumCheck(peakIndex *search.BucketIndex[spectrum.Peak], pepMass float64) (float64, bool) {
	var total float64
	found := false
	for i := 1; i <= 2; i++ {
		target := pepMass + float64(i)*mass.HexNAc
		hits := peakIndex.Query(target)
		if len(hits) == 0 {
			continue
		}
		most := hits[0]
		for _, h := range hits[1:] {
			if h.Intensity > most.Intensity {
				most = h
			}
		}
		total += most.Intensity
		found = true
	}
	return total, found
}

// backboneLadder builds the c/z ion ladder spanning the glycosite at
// pos, with the glycan's mass added (it sits on the site), expanded to
// m/z over every hypothesis charge, and scores the observed peaks that
// land on one of those hypotheses.
func backboneLadder(s spectrum.Spectrum, pep string, pos int, delta, tol float64, by search.ToleranceBy) (float64, bool) {
	var points []search.Point[struct{}]
	for i := pos; i <= len(pep)-2; i++ {
		m := mass.IonMass(pep[:i+1], mass.IonC) + delta
		for charge := int32(1); charge <= s.PrecursorCharge; charge++ {
			points = append(points, search.Point[struct{}]{Key: mass.MZOf(m, int(charge))})
		}
	}
	for i := 1; i <= pos; i++ {
		m := mass.IonMass(pep[i:], mass.IonZ) + delta
		for charge := int32(1); charge <= s.PrecursorCharge; charge++ {
			points = append(points, search.Point[struct{}]{Key: mass.MZOf(m, int(charge))})
		}
	}
	if len(points) == 0 {
		return 0, false
	}

	idx := search.NewBinaryIndex[struct{}](tol, by)
	idx.SetData(points)
	if err := idx.Init(); err != nil {
		return 0, false
	}

	var total float64
	matched := false
	for _, peak := range s.Peaks {
		if idx.Search(peak.MZ) {
			total += peak.Intensity
			matched = true
		}
	}
	return total, matched
}

// yLadder builds the Y-ion ladder from id's biosynthetic ancestor
// masses and scores observed peaks whose neutral mass (after removing
// the peptide backbone) lands on one of them. A peak is counted once
// even if it matches at more than one hypothesis charge.
func yLadder(s spectrum.Spectrum, pepMass float64, subset *glycan.Store, massStore *glycan.MassStore, id string, tol float64, by search.ToleranceBy) (float64, bool) {
	var points []search.Point[struct{}]
	for ancestorID := range subset.Query(id) {
		for _, m := range massStore.Query(ancestorID) {
			points = append(points, search.Point[struct{}]{Key: m})
		}
	}
	if len(points) == 0 {
		return 0, false
	}

	idx := search.NewBinaryIndex[struct{}](tol, by)
	idx.SetData(points)
	if err := idx.Init(); err != nil {
		return 0, false
	}

	var total float64
	matched := false
	for _, peak := range s.Peaks {
		for charge := int32(1); charge <= s.PrecursorCharge; charge++ {
			computed := mass.SpectrumMass(peak.MZ, int(charge)) - pepMass
			if idx.Search(computed) {
				total += peak.Intensity
				matched = true
				break
			}
		}
	}
	return total, matched
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
