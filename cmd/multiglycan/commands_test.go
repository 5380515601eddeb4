package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fixtureFasta = ">sp|TEST|synthetic\nRNITKAEPR\n"

// fixtureMGF carries no peaks that could ever clear the oxonium stage,
// so this smoke test only has to prove the CSV header survives a
// search that finds nothing — the weaker, always-true guarantee.
const fixtureMGF = "BEGIN IONS\nSCANS=1\nCHARGE=2+\n50.0 1.0\nEND IONS\n"

func TestSearchCommand_HeaderAlwaysPresentEvenWithNoHits(t *testing.T) {
	dir := t.TempDir()

	fastaPath := filepath.Join(dir, "proteins.fasta")
	mgfPath := filepath.Join(dir, "spectra.mgf")
	outPath := filepath.Join(dir, "results.csv")

	assert.NoError(t, os.WriteFile(fastaPath, []byte(fixtureFasta), 0o644))
	assert.NoError(t, os.WriteFile(mgfPath, []byte(fixtureMGF), 0o644))

	args := []string{"multiglycan", "search", "--fasta", fastaPath, "--mgf", mgfPath, "--out", outPath}
	assert.NoError(t, application().Run(args))

	raw, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "scan#,peptide,glycan,score"))
}

func TestSearchCommand_RejectsUnknownProtease(t *testing.T) {
	dir := t.TempDir()
	fastaPath := filepath.Join(dir, "proteins.fasta")
	mgfPath := filepath.Join(dir, "spectra.mgf")

	assert.NoError(t, os.WriteFile(fastaPath, []byte(fixtureFasta), 0o644))
	assert.NoError(t, os.WriteFile(mgfPath, []byte(fixtureMGF), 0o644))

	args := []string{
		"multiglycan", "search",
		"--fasta", fastaPath, "--mgf", mgfPath,
		"--out", filepath.Join(dir, "results.csv"),
		"--proteases", "bogus",
	}
	assert.Error(t, application().Run(args))
}
