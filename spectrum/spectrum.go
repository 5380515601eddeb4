// Package spectrum models fragmentation spectra and builds the
// tolerance-aware peak index the matcher queries against.
package spectrum

// Kind distinguishes the fragmentation method a spectrum was acquired
// with; EThcD spectra carry both c/z and b/y ion series in principle,
// but the matcher here only ever asks for c/z and Y-ladder masses.
type Kind int

const (
	KindMS Kind = iota
	KindEThcD
)

// Peak is one observed fragment ion: an m/z value and its intensity.
type Peak struct {
	MZ        float64
	Intensity float64
}

// Spectrum is one fragmentation event: a scan number, its acquisition
// kind, the precursor's assumed charge and m/z, and its peak list.
// Peaks need not be sorted on input.
type Spectrum struct {
	Scan            int32
	Kind            Kind
	PrecursorCharge int32
	PrecursorMZ     float64
	Peaks           []Peak
}
