package resultcsv

import (
	"bytes"
	"testing"

	"github.com/ruizhang84/multiglycan-go/engine"
	"github.com/stretchr/testify/assert"
)

func TestWrite_HeaderAlwaysPresent(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, nil))
	assert.Equal(t, "scan#,peptide,glycan,score\n", buf.String())
}

func TestWrite_OneRowPerResult(t *testing.T) {
	var buf bytes.Buffer
	results := []engine.SearchResult{
		{Scan: 42, Peptide: "NITK", Glycan: "HexNAc2Hex3", Score: 12.5},
	}
	assert.NoError(t, Write(&buf, results))
	assert.Equal(t, "scan#,peptide,glycan,score\n42,NITK,HexNAc2Hex3,12.5\n", buf.String())
}
