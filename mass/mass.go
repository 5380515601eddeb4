/*
Package mass computes monoisotopic masses for peptides, fragment ions,
and glycans.

Every constant here is a fixed, documented monoisotopic mass. None of it
is runtime configurable — that is intentional: swapping an atomic mass
mid-run would silently invalidate every index already built on top of
it.
*/
package mass

// Atomic monoisotopic masses (Da), from CODATA/IUPAC atomic weights.
const (
	Hydrogen = 1.0078250319
	Carbon   = 12.0
	Nitrogen = 14.0030740052
	Oxygen   = 15.9949146221
)

// Water and proton masses used throughout peptide and spectrum mass math.
const (
	Water  = 2*Hydrogen + Oxygen
	Proton = 1.00727646688
)

// residueMass holds the monoisotopic mass of each amino acid residue
// (i.e. the amino acid minus water), keyed by its one-letter code.
var residueMass = map[byte]float64{
	'G': 57.02146,
	'A': 71.03711,
	'S': 87.03203,
	'P': 97.05276,
	'V': 99.06841,
	'T': 101.04768,
	'C': 103.00919,
	'L': 113.08406,
	'I': 113.08406,
	'N': 114.04293,
	'D': 115.02694,
	'Q': 128.05858,
	'K': 128.09496,
	'E': 129.04259,
	'M': 131.04049,
	'H': 137.05891,
	'F': 147.06841,
	'R': 156.10111,
	'Y': 163.06333,
	'W': 186.07931,
}

// categoryMass holds the monoisotopic residue mass (after loss of
// water on glycosidic linkage) of each glycomics composition category.
// Man and Gal are both hexoses (C6H10O5) and so share the "Hex" mass;
// this is what makes the category-level composition format both
// lossless for mass purposes and round-trippable through Name/Interpret
// without needing to track which hexose occupies which site.
var categoryMass = map[string]float64{
	"HexNAc": 203.079373,
	"Hex":    162.052824,
	"Fuc":    146.057909,
	"NeuAc":  291.095417,
	"NeuGc":  307.090331,
}

// HexNAc is the monoisotopic mass of a single GlcNAc residue, the unit
// the oxonium stage of the matcher probes for.
const HexNAc = 203.079373

// PeptideMass returns the monoisotopic mass of a peptide backbone: the
// sum of its residue masses plus one water.
func PeptideMass(seq string) float64 {
	total := Water
	for i := 0; i < len(seq); i++ {
		total += residueMass[seq[i]]
	}
	return total
}

// IonType enumerates the six canonical peptide backbone fragment ion
// types produced by CID/HCD (b, y, a, x) and ETD/EThcD (c, z) cleavage.
type IonType int

const (
	IonA IonType = iota
	IonB
	IonC
	IonX
	IonY
	IonZ
)

// IonMass returns the monoisotopic mass of the given ion type for seq,
// applying the canonical atomic-delta adjustment to the peptide mass:
//
//	c: -O +2H +N    z: -N -2H
//	y: +H           b: -O -H
//	a: -2O -H -C    x: +C +O -H
func IonMass(seq string, ion IonType) float64 {
	m := PeptideMass(seq)
	switch ion {
	case IonA:
		return m - 2*Oxygen - Hydrogen - Carbon
	case IonB:
		return m - Oxygen - Hydrogen
	case IonC:
		return m - Oxygen + 2*Hydrogen + Nitrogen
	case IonX:
		return m + Carbon + Oxygen - Hydrogen
	case IonY:
		return m + Hydrogen
	case IonZ:
		return m - Nitrogen - 2*Hydrogen
	default:
		return m
	}
}

// GlycanMass returns the monoisotopic mass of a glycan given its
// composition (category name -> count, e.g. "HexNAc", "Hex", "Fuc",
// "NeuAc", "NeuGc"): the sum of count*mass over every category present.
func GlycanMass(composition map[string]int) float64 {
	var total float64
	for name, count := range composition {
		total += float64(count) * categoryMass[name]
	}
	return total
}

// CategoryMass returns the monoisotopic residue mass of a single named
// composition category, or 0 if the name is not recognised.
func CategoryMass(name string) float64 {
	return categoryMass[name]
}

// SpectrumMass converts an observed m/z and assumed charge into the
// corresponding neutral monoisotopic mass.
func SpectrumMass(mz float64, charge int) float64 {
	return mz*float64(charge) - float64(charge)*Proton
}

// MZOf converts a neutral monoisotopic mass and assumed charge into the
// corresponding m/z.
func MZOf(mass float64, charge int) float64 {
	return mass/float64(charge) + Proton
}
