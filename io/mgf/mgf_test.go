package mgf

import (
	"errors"
	"strings"
	"testing"

	"github.com/ruizhang84/multiglycan-go/errs"
	"github.com/ruizhang84/multiglycan-go/spectrum"
	"github.com/stretchr/testify/assert"
)

const sample = `BEGIN IONS
SCANS=1234
CHARGE=2+
TYPE=EThcD
PEPMASS=905.40
100.5 1000.0
200.25 500.5
END IONS
BEGIN IONS
SCANS=1235
100.0 10.0
END IONS
`

func TestRead_ParsesRecordsAndDefaultsType(t *testing.T) {
	spectra, err := Read(strings.NewReader(sample))
	assert.NoError(t, err)
	assert.Len(t, spectra, 2)

	first := spectra[0]
	assert.EqualValues(t, 1234, first.Scan)
	assert.EqualValues(t, 2, first.PrecursorCharge)
	assert.Equal(t, spectrum.KindEThcD, first.Kind)
	assert.Equal(t, 905.40, first.PrecursorMZ)
	assert.Len(t, first.Peaks, 2)

	second := spectra[1]
	assert.Equal(t, spectrum.KindMS, second.Kind)
	assert.EqualValues(t, 1, second.PrecursorCharge)
}

func TestRead_MissingScansIsMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("BEGIN IONS\n100.0 1.0\nEND IONS\n"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.InputMalformed))
}

func TestRead_UnparsablePeakLineIsMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("BEGIN IONS\nSCANS=1\nnot-a-peak\nEND IONS\n"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.InputMalformed))
}
