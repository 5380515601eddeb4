package protein

import "strings"

// fragments splits sequence at every site protease legally cleaves,
// in order, with no missed cleavages.
func fragments(sequence string, protease Protease) []string {
	var frags []string
	start := 0
	for i := 0; i < len(sequence); i++ {
		if protease.cleavesAfter(sequence, i) {
			frags = append(frags, sequence[start:i+1])
			start = i + 1
		}
	}
	if start < len(sequence) {
		frags = append(frags, sequence[start:])
	}
	return frags
}

// Digest cleaves sequence with protease and rejoins up to missCleavage
// consecutive fragments, producing every peptide with 0..missCleavage
// missed cleavages.
func Digest(sequence string, protease Protease, missCleavage int) map[string]bool {
	frags := fragments(sequence, protease)
	peptides := make(map[string]bool)
	for i := range frags {
		for j := i; j < len(frags) && j-i <= missCleavage; j++ {
			peptides[strings.Join(frags[i:j+1], "")] = true
		}
	}
	return peptides
}

// DigestMulti digests sequence with the first protease, then feeds the
// resulting peptides through each subsequent protease in turn, adding
// whatever it produces into the running set rather than replacing it.
// This mirrors the original digester's cascade exactly: the peptide
// set only ever grows across proteases, and a peptide surviving an
// earlier stage stays a candidate even if the next protease does not
// cut it further. Downstream matching must tolerate that growth.
func DigestMulti(sequence string, proteases []Protease, missCleavage int) map[string]bool {
	if len(proteases) == 0 {
		return map[string]bool{}
	}
	peptides := Digest(sequence, proteases[0], missCleavage)
	for _, p := range proteases[1:] {
		next := make(map[string]bool)
		for pep := range peptides {
			for d := range Digest(pep, p, missCleavage) {
				next[d] = true
			}
		}
		for pep := range next {
			peptides[pep] = true
		}
	}
	return peptides
}

// FindNGlycanSites returns every position i in seq where the
// N-glycosylation sequon N-X-{S|T} (X != P) begins.
func FindNGlycanSites(seq string) []int {
	var sites []int
	for i := 0; i+2 < len(seq); i++ {
		if seq[i] == 'N' && seq[i+1] != 'P' && (seq[i+2] == 'S' || seq[i+2] == 'T') {
			sites = append(sites, i)
		}
	}
	return sites
}

// ContainsNGlycanSite reports whether seq has at least one sequon.
func ContainsNGlycanSite(seq string) bool {
	return len(FindNGlycanSites(seq)) > 0
}

// CandidatePeptides digests sequence across every configured protease
// and keeps only peptides carrying at least one N-glycosylation
// sequon — the candidate peptide contract the matcher consumes.
func CandidatePeptides(sequence string, proteases []Protease, missCleavage int) map[string]bool {
	out := make(map[string]bool)
	for pep := range DigestMulti(sequence, proteases, missCleavage) {
		if ContainsNGlycanSite(pep) {
			out[pep] = true
		}
	}
	return out
}
