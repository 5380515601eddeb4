package glycan

import (
	"github.com/ruizhang84/multiglycan-go/logging"
	"github.com/ruizhang84/multiglycan-go/mass"
)

// Builder enumerates every N-glycan structure reachable from the empty
// root within a composition envelope, via breadth-first growth.
//
// Candidate order is fixed and BFS proceeds layer by layer, so the
// enumerated id set (and, critically, each SubsetStore entry) is a
// pure function of the envelope and candidate set: by the time a node
// is dequeued and its ancestors unioned into a child's subset entry,
// that node's own subset entry is already complete (§4.4).
type Builder struct {
	Envelope   Envelope
	Candidates []Monosaccharide
}

// NewBuilder returns a Builder with the default candidate sugar set.
func NewBuilder(envelope Envelope) *Builder {
	return &Builder{Envelope: envelope, Candidates: DefaultCandidates}
}

// Result is the read-only output of a Build run.
type Result struct {
	Isomer *Store
	Subset *Store
	Mass   *MassStore
}

// Build runs the BFS growth and returns the populated stores. A
// glycan with every envelope maximum at zero still yields the root
// (EnvelopeImpossible is not an error, per §7).
func (b *Builder) Build() Result {
	logging.BuilderStart(b.Envelope.HexNAc, b.Envelope.Hex, b.Envelope.Fuc, b.Envelope.NeuAc, b.Envelope.NeuGc)

	isomer := NewStore()
	subset := NewStore()
	massStore := NewMassStore()

	queue := []*Glycan{NewRoot()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		isomer.Add(current.Name(), current.ID())

		for _, sugar := range b.Candidates {
			for _, child := range current.Grow(sugar) {
				composition := child.Composition()
				if !b.Envelope.Satisfies(composition) {
					continue
				}
				childID := child.ID()
				if !subset.Find(childID) {
					massStore.Add(childID, mass.GlycanMass(ToMassComposition(composition)))
					queue = append(queue, child)
				}
				subset.AddSubset(childID, current.ID())
			}
		}
	}

	logging.BuilderFinish(len(subset.Keys()) + 1)
	return Result{Isomer: isomer, Subset: subset, Mass: massStore}
}
