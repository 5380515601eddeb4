/*
Package fasta reads protein FASTA files into protein.Protein records.

The grammar is the plain ">header\nSEQUENCE\n..." format: a record
starts at a '>' line, its sequence is the concatenation of every
following line up to the next '>' or EOF. Blank lines are skipped.
*/
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ruizhang84/multiglycan-go/errs"
	"github.com/ruizhang84/multiglycan-go/protein"
)

// Read parses every record out of r. A sequence line encountered
// before any header is reported as errs.InputMalformed.
func Read(r io.Reader) ([]protein.Protein, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var records []protein.Protein
	var header string
	var seq strings.Builder
	started := false

	flush := func() {
		if started {
			records = append(records, protein.Protein{Header: header, Sequence: seq.String()})
		}
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			header = line[1:]
			started = true
		case !started:
			return nil, fmt.Errorf("fasta: sequence before any header: %w", errs.InputMalformed)
		default:
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: %w: %v", errs.InputMalformed, err)
	}
	flush()
	return records, nil
}
