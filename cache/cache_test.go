package cache

import (
	"testing"

	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/stretchr/testify/assert"
)

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	store, err := Open(":memory:")
	assert.NoError(t, err)
	defer store.Close()

	envelope := glycan.Envelope{HexNAc: 2, Hex: 3}
	candidates := []glycan.Monosaccharide{glycan.GlcNAc, glycan.Man}
	built := glycan.NewBuilder(envelope)
	built.Candidates = candidates
	result := built.Build()

	fp := Fingerprint(envelope, candidates)
	assert.NoError(t, store.Save(fp, result.Isomer, result.Subset, result.Mass))

	isomer, subset, massStore, ok := store.Load(fp)
	assert.True(t, ok)

	for _, name := range result.Isomer.Keys() {
		assert.Equal(t, result.Isomer.Query(name), isomer.Query(name))
	}
	for _, id := range result.Subset.Keys() {
		assert.Equal(t, result.Subset.Query(id), subset.Query(id))
	}
	for _, id := range result.Mass.Keys() {
		assert.ElementsMatch(t, result.Mass.Query(id), massStore.Query(id))
	}
}

func TestStore_LoadMissIsFalse(t *testing.T) {
	store, err := Open(":memory:")
	assert.NoError(t, err)
	defer store.Close()

	_, _, _, ok := store.Load("nonexistent")
	assert.False(t, ok)
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	envelope := glycan.Envelope{HexNAc: 1}
	a := Fingerprint(envelope, []glycan.Monosaccharide{glycan.GlcNAc, glycan.Man})
	b := Fingerprint(envelope, []glycan.Monosaccharide{glycan.Man, glycan.GlcNAc})
	assert.Equal(t, a, b)
}
