package glycan

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// StructureFingerprint turns a canonical structure string into the
// compact, versioned identifier used as a Glycan's id.
//
// The format mirrors poly's seqhash: a version tag, a short metadata
// tag, and a content hash, so that a human skimming a batch of ids can
// immediately tell the encoding apart from a future one. Version "g1"
// hashes with Blake3 and truncates to 16 bytes (32 hex characters) —
// structure ids are compared for equality, never used to reconstruct
// the tree, so full 256-bit collision resistance isn't needed and a
// shorter id keeps IsomerStore/SubsetStore compact.
func StructureFingerprint(canonical string) string {
	sum := blake3.Sum256([]byte(canonical))
	return "g1_" + hex.EncodeToString(sum[:16])
}
