// Package resultcsv writes SearchResults as CSV: header
// "scan#,peptide,glycan,score", one row per result, in the order given.
// The header is always written, even for an empty result set.
package resultcsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ruizhang84/multiglycan-go/engine"
)

// Write emits results to w as CSV, header first.
func Write(w io.Writer, results []engine.SearchResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"scan#", "peptide", "glycan", "score"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.FormatInt(int64(r.Scan), 10),
			r.Peptide,
			r.Glycan,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
