/*
Package multiglycan identifies N-linked glycopeptides from tandem mass
spectra.

Given a protein database and a set of fragmentation spectra, it proposes,
for each spectrum, the best-scoring (peptide backbone, glycan
composition) assignment consistent with the observed fragment peaks
within an instrument mass-tolerance window.

The package is organized the way the search actually flows:

  - mass computes monoisotopic peptide, ion, and glycan masses.
  - search provides the two tolerance-aware scalar indexes (bucket and
    binary) that every mass-proximity query in this module goes through.
  - glycan builds the N-glycan growth DAG within a composition envelope
    and exposes the isomer/subset/mass stores that come out of it.
  - spectrum holds the Peak/Spectrum data model and the per-spectrum
    peak index built on top of search.
  - protein digests a sequence into peptide candidates and finds
    N-glycosylation sequons.
  - precursor narrows peptide x glycan candidates down by precursor
    mass before the expensive per-spectrum search runs.
  - engine runs the three-stage oxonium/backbone/glycan-ladder match and
    scores candidates.
  - aggregate collapses per-spectrum results down to the best-scoring
    set for each scan.
  - cache persists a built glycan store set to disk so repeated runs
    over the same envelope skip the BFS.
  - io/fasta, io/mgf, io/resultcsv are the file-format adapters at the
    boundary.
  - cmd/multiglycan is the command line front end.

RunSearch wires all of the above into the single call a host program
needs.
*/
package multiglycan
