/*
Package logging provides the package-level logger used at this
module's boundaries: builder start/finish, per-spectrum warnings when
a spectrum's search cannot run, and cache hit/miss. The core matcher and builder loop
do not log per-candidate or per-peak — only at spectrum granularity and
above, so a large batch run doesn't drown in noise.
*/
package logging

import (
	"os"

	"github.com/lunny/log"
)

// Logger is the shared logger instance, writing to stderr at Info
// level by default.
var Logger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// BuilderStart logs the start of a BFS glycan enumeration run.
func BuilderStart(hexNAcMax, hexMax, fucMax, neuAcMax, neuGcMax int) {
	Logger.Info("glycan builder: starting envelope HexNAc<=", hexNAcMax, "Hex<=", hexMax,
		"Fuc<=", fucMax, "NeuAc<=", neuAcMax, "NeuGc<=", neuGcMax)
}

// BuilderFinish logs the outcome of a completed BFS run.
func BuilderFinish(structureCount int) {
	Logger.Info("glycan builder: finished,", structureCount, "structures reachable")
}

// SpectrumSkipped warns that a spectrum was dropped from the batch
// because its search could not run (its peak index failed to build),
// and that the batch continues regardless.
func SpectrumSkipped(scan int32, reason error) {
	Logger.Warn("spectrum", scan, "skipped:", reason)
}

// CacheHit logs a glycan store cache hit for fingerprint.
func CacheHit(fingerprint string) {
	Logger.Info("glycan store cache hit:", fingerprint)
}

// CacheMiss logs a glycan store cache miss or failure for fingerprint;
// the caller always falls back to running the builder.
func CacheMiss(fingerprint string, err error) {
	if err != nil {
		Logger.Warn("glycan store cache miss for", fingerprint, "(falling back to builder):", err)
		return
	}
	Logger.Info("glycan store cache miss for", fingerprint, "(falling back to builder)")
}
