/*
Package mgf reads a simple MGF-like spectrum text format:

	BEGIN IONS
	SCANS=1234
	CHARGE=2+
	TYPE=EThcD
	<mz> <intensity>
	...
	END IONS

TYPE defaults to MS if absent. A record missing SCANS, or with an
unparsable peak line, is reported as errs.InputMalformed.
*/
package mgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ruizhang84/multiglycan-go/errs"
	"github.com/ruizhang84/multiglycan-go/spectrum"
)

// Read parses every BEGIN IONS/END IONS block out of r into a Spectrum.
func Read(r io.Reader) ([]spectrum.Spectrum, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var spectra []spectrum.Spectrum
	var cur spectrum.Spectrum
	var inRecord, haveScan bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "BEGIN IONS":
			cur = spectrum.Spectrum{Kind: spectrum.KindMS, PrecursorCharge: 1}
			inRecord = true
			haveScan = false
		case line == "END IONS":
			if !haveScan {
				return nil, fmt.Errorf("mgf: record missing SCANS: %w", errs.InputMalformed)
			}
			spectra = append(spectra, cur)
			inRecord = false
		case !inRecord:
			continue
		case strings.HasPrefix(line, "SCANS="):
			n, err := strconv.Atoi(strings.TrimPrefix(line, "SCANS="))
			if err != nil {
				return nil, fmt.Errorf("mgf: malformed SCANS %q: %w", line, errs.InputMalformed)
			}
			cur.Scan = int32(n)
			haveScan = true
		case strings.HasPrefix(line, "CHARGE="):
			charge, err := parseCharge(strings.TrimPrefix(line, "CHARGE="))
			if err != nil {
				return nil, fmt.Errorf("mgf: malformed CHARGE %q: %w", line, errs.InputMalformed)
			}
			cur.PrecursorCharge = int32(charge)
		case strings.HasPrefix(line, "TYPE="):
			cur.Kind = parseKind(strings.TrimPrefix(line, "TYPE="))
		case strings.HasPrefix(line, "PEPMASS="):
			mz, err := strconv.ParseFloat(strings.Fields(strings.TrimPrefix(line, "PEPMASS="))[0], 64)
			if err != nil {
				return nil, fmt.Errorf("mgf: malformed PEPMASS %q: %w", line, errs.InputMalformed)
			}
			cur.PrecursorMZ = mz
		default:
			peak, err := parsePeak(line)
			if err != nil {
				return nil, fmt.Errorf("mgf: malformed peak line %q: %w", line, errs.InputMalformed)
			}
			cur.Peaks = append(cur.Peaks, peak)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mgf: %w: %v", errs.InputMalformed, err)
	}
	return spectra, nil
}

func parseCharge(s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "+"), "-")
	return strconv.Atoi(s)
}

func parseKind(s string) spectrum.Kind {
	if strings.EqualFold(s, "EThcD") {
		return spectrum.KindEThcD
	}
	return spectrum.KindMS
}

func parsePeak(line string) (spectrum.Peak, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return spectrum.Peak{}, fmt.Errorf("expected \"mz intensity\"")
	}
	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return spectrum.Peak{}, err
	}
	intensity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return spectrum.Peak{}, err
	}
	return spectrum.Peak{MZ: mz, Intensity: intensity}, nil
}
