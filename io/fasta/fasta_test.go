package fasta

import (
	"errors"
	"strings"
	"testing"

	"github.com/ruizhang84/multiglycan-go/errs"
	"github.com/stretchr/testify/assert"
)

func TestRead_ParsesMultipleRecords(t *testing.T) {
	input := ">sp|P1|ONE\nMKTAYI\nAKQRQI\n\n>sp|P2|TWO\nMVLSPAD\n"
	records, err := Read(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "sp|P1|ONE", records[0].Header)
	assert.Equal(t, "MKTAYIAKQRQI", records[0].Sequence)
	assert.Equal(t, "sp|P2|TWO", records[1].Header)
	assert.Equal(t, "MVLSPAD", records[1].Sequence)
}

func TestRead_SequenceBeforeHeaderIsMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("MKTAYI\n>sp|P1|ONE\nAKQRQI\n"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.InputMalformed))
}

func TestRead_EmptyInputYieldsNoRecords(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, records)
}
