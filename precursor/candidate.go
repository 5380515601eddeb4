// Package precursor filters the (peptide, glycan composition) product
// space down to pairs whose combined mass matches the spectrum's
// observed precursor, within tolerance.
package precursor

import (
	"sort"

	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/mass"
	"github.com/ruizhang84/multiglycan-go/search"
	"github.com/ruizhang84/multiglycan-go/spectrum"
)

// MatchResultStore is the candidate set for one spectrum: every
// peptide that survived precursor filtering, and the glycan
// composition names that paired with it.
type MatchResultStore struct {
	peptides map[string]bool
	glycans  map[string]map[string]bool
}

func newMatchResultStore() *MatchResultStore {
	return &MatchResultStore{
		peptides: make(map[string]bool),
		glycans:  make(map[string]map[string]bool),
	}
}

// Peptides returns the candidate peptides, sorted — the matcher's tie
// policy relies on a fixed iteration order.
func (m *MatchResultStore) Peptides() []string {
	out := make([]string, 0, len(m.peptides))
	for p := range m.peptides {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// GlycansOf returns the candidate glycan composition names paired with
// peptide pep, sorted.
func (m *MatchResultStore) GlycansOf(pep string) []string {
	out := make([]string, 0, len(m.glycans[pep]))
	for g := range m.glycans[pep] {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

func (m *MatchResultStore) add(pep, glycanName string) {
	m.peptides[pep] = true
	if m.glycans[pep] == nil {
		m.glycans[pep] = make(map[string]bool)
	}
	m.glycans[pep][glycanName] = true
}

// BuildCandidates enumerates every (pep, name) pair whose combined
// theoretical mass matches the spectrum's precursor within tolerance,
// for every hypothesis charge 1..PrecursorCharge.
func BuildCandidates(s spectrum.Spectrum, peptides map[string]bool, isomer *glycan.Store, precursorTol float64, by search.ToleranceBy) *MatchResultStore {
	store := newMatchResultStore()
	names := isomer.Keys()

	for charge := int32(1); charge <= s.PrecursorCharge; charge++ {
		observed := mass.SpectrumMass(s.PrecursorMZ, int(charge))
		for pep := range peptides {
			pepMass := mass.PeptideMass(pep)
			for _, name := range names {
				composition, err := glycan.Interpret(name)
				if err != nil {
					continue
				}
				candidate := pepMass + mass.GlycanMass(glycan.ToMassComposition(composition))
				if search.Matches(candidate, observed, precursorTol, by) {
					store.add(pep, name)
				}
			}
		}
	}
	return store
}
