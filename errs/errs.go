// Package errs collects the sentinel error kinds shared across this
// module, wrapped with fmt.Errorf where a caller needs the offending
// value attached.
package errs

import "errors"

var (
	// InputMalformed marks a parse failure in an external input file
	// (FASTA, MGF). The readers return it for the whole input, not per
	// record, and the command line front end stops on it.
	InputMalformed = errors.New("errs: input malformed")

	// EmptyCandidate marks a search stage that found no surviving
	// candidate and pruned the branch.
	EmptyCandidate = errors.New("errs: empty candidate")

	// ToleranceNonPositive marks a configured tolerance <= 0.
	ToleranceNonPositive = errors.New("errs: tolerance must be positive")

	// EnvelopeImpossible marks a composition envelope every maximum of
	// which is zero. Not itself an error condition for the builder (it
	// just yields the root), but callers that require growth may treat
	// it as one.
	EnvelopeImpossible = errors.New("errs: composition envelope admits only the root")
)
