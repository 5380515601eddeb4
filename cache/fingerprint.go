package cache

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ruizhang84/multiglycan-go/glycan"
)

// Fingerprint derives the cache key for a builder configuration: the
// envelope maxima plus the candidate sugar set, order-independent.
func Fingerprint(envelope glycan.Envelope, candidates []glycan.Monosaccharide) string {
	sugars := make([]string, len(candidates))
	for i, c := range candidates {
		sugars[i] = string(c)
	}
	sort.Strings(sugars)
	return fmt.Sprintf("%d-%d-%d-%d-%d|%s",
		envelope.HexNAc, envelope.Hex, envelope.Fuc, envelope.NeuAc, envelope.NeuGc,
		strings.Join(sugars, ","))
}
