/*
Package glycan models N-glycan structures as rooted trees and grows a
biosynthetic DAG of them within a composition envelope.

Only the NGlycanComplex variant is implemented: two core GlcNAc
residues, a branching beta-mannose, two alpha-mannose antennae, and
per-antenna GlcNAc->Gal->(NeuAc|NeuGc) extension with optional core
fucosylation. This is the "canonical core" biosynthetic path spec.md
requires; hybrid/high-mannose variants are a Non-goal here.
*/
package glycan

import (
	"fmt"
	"sort"
	"strings"
)

// node is one sugar residue in the tree. The root node of a Glycan has
// an empty Sugar — it represents the Asn attachment point, not a
// monosaccharide.
type node struct {
	Sugar    Monosaccharide
	Children []*node
}

func (n *node) child(sugar Monosaccharide) *node {
	for _, c := range n.Children {
		if c.Sugar == sugar {
			return c
		}
	}
	return nil
}

func (n *node) childrenOf(sugar Monosaccharide) []*node {
	var out []*node
	for _, c := range n.Children {
		if c.Sugar == sugar {
			out = append(out, c)
		}
	}
	return out
}

func cloneNode(n *node) *node {
	if n == nil {
		return nil
	}
	cp := &node{Sugar: n.Sugar, Children: make([]*node, len(n.Children))}
	for i, c := range n.Children {
		cp.Children[i] = cloneNode(c)
	}
	return cp
}

// Glycan is one candidate N-glycan structure: a rooted tree plus the
// canonicalised id/name derived from it.
type Glycan struct {
	root *node
}

// NewRoot returns the empty NGlycanComplex root — the seed every BFS
// growth run starts from.
func NewRoot() *Glycan {
	return &Glycan{root: &node{}}
}

// Composition returns the category-level sugar counts of g — the
// multiset used for isomer grouping and envelope checks.
func (g *Glycan) Composition() map[Category]int {
	counts := make(map[Category]int)
	var walk func(n *node)
	walk = func(n *node) {
		if n.Sugar != "" {
			counts[categoryOf(n.Sugar)]++
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(g.root)
	return counts
}

// Name returns the canonical composition string, e.g. "HexNAc2Hex3" —
// a deterministic function of the multiset Composition() returns, used
// to group isomers that share a composition.
func (g *Glycan) Name() string {
	return FormatComposition(g.Composition())
}

// FormatComposition renders a composition map in the fixed category
// order, omitting zero-count categories.
func FormatComposition(c map[Category]int) string {
	var b strings.Builder
	for _, cat := range categoryOrder {
		if n := c[cat]; n > 0 {
			fmt.Fprintf(&b, "%s%d", cat, n)
		}
	}
	return b.String()
}

// Interpret is the left inverse of FormatComposition/Name: it parses a
// composition string back into its category counts.
func Interpret(name string) (map[Category]int, error) {
	counts := make(map[Category]int)
	rest := name
	for len(rest) > 0 {
		matched := false
		for _, cat := range categoryOrder {
			prefix := string(cat)
			if strings.HasPrefix(rest, prefix) {
				rest = rest[len(prefix):]
				digits := 0
				for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
					digits++
				}
				if digits == 0 {
					return nil, fmt.Errorf("glycan: malformed composition %q: expected digits after %s", name, prefix)
				}
				var n int
				fmt.Sscanf(rest[:digits], "%d", &n)
				counts[cat] += n
				rest = rest[digits:]
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("glycan: malformed composition %q", name)
		}
	}
	return counts, nil
}

// canonicalString is the structural fingerprint Grow/ID use to detect
// isomorphic children: each node is rendered as its sugar label
// followed by its children's canonical strings, sorted, so two trees
// that differ only in child order or in which symmetric antenna a
// sugar was attached to render identically.
func canonicalString(n *node) string {
	childStrings := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		childStrings = append(childStrings, canonicalString(c))
	}
	sort.Strings(childStrings)
	return string(n.Sugar) + "[" + strings.Join(childStrings, ",") + "]"
}

// ID returns the canonical structural identifier of g, distinguishing
// isomers that share a composition but not a structure.
func (g *Glycan) ID() string {
	return StructureFingerprint(canonicalString(g.root))
}

// site identifies an attachment point in the tree by the sequence of
// child indices from the root, so the same point can be located again
// in a cloned copy of the tree.
type site struct{ path []int }

func nodeAt(root *node, path []int) *node {
	n := root
	for _, i := range path {
		n = n.Children[i]
	}
	return n
}

func childIndex(n *node, sugar Monosaccharide) (int, bool) {
	for i, c := range n.Children {
		if c.Sugar == sugar {
			return i, true
		}
	}
	return 0, false
}

// Grow returns every distinct child obtainable by attaching one sugar
// residue at a legal biosynthetic site. Children whose canonical
// structure coincides (e.g. the same sugar attached to either of two
// still-symmetric antennae) are collapsed to one.
func (g *Glycan) Grow(sugar Monosaccharide) []*Glycan {
	sites := g.legalSites(sugar)

	seen := make(map[string]bool)
	var out []*Glycan
	for _, s := range sites {
		childRoot := cloneNode(g.root)
		parent := nodeAt(childRoot, s.path)
		parent.Children = append(parent.Children, &node{Sugar: sugar})
		candidate := &Glycan{root: childRoot}
		id := candidate.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, candidate)
	}
	return out
}

// legalSites enumerates every attachment point (as a root-relative
// path to the parent node) where sugar may legally be added, following
// the canonical N-glycan complex-type biosynthesis order:
//
//	GlcNAc1 -> GlcNAc2 -> beta-Man -> {alpha-Man, alpha-Man}
//	alpha-Man -> antenna GlcNAc -> Gal -> (NeuAc | NeuGc)
//	GlcNAc1 -> Fuc (core fucosylation, at most once)
func (g *Glycan) legalSites(sugar Monosaccharide) []site {
	root := g.root
	var sites []site

	glcNAc1Idx, hasGlcNAc1 := childIndex(root, GlcNAc)

	switch sugar {
	case GlcNAc:
		if !hasGlcNAc1 {
			sites = append(sites, site{path: nil})
			return sites
		}
		glcNAc1 := root.Children[glcNAc1Idx]
		if _, ok := childIndex(glcNAc1, GlcNAc); !ok {
			sites = append(sites, site{path: []int{glcNAc1Idx}})
			return sites
		}
		glcNAc2Idx, _ := childIndex(glcNAc1, GlcNAc)
		glcNAc2 := glcNAc1.Children[glcNAc2Idx]
		betaManIdx, hasBetaMan := childIndex(glcNAc2, Man)
		if !hasBetaMan {
			return sites
		}
		betaMan := glcNAc2.Children[betaManIdx]
		if len(betaMan.childrenOf(Man)) < 2 {
			return sites
		}
		for i, alphaMan := range betaMan.Children {
			if alphaMan.Sugar != Man {
				continue
			}
			if _, ok := childIndex(alphaMan, GlcNAc); !ok {
				sites = append(sites, site{path: []int{glcNAc1Idx, glcNAc2Idx, betaManIdx, i}})
			}
		}
		return sites

	case Man:
		if !hasGlcNAc1 {
			return sites
		}
		glcNAc1 := root.Children[glcNAc1Idx]
		glcNAc2Idx, hasGlcNAc2 := childIndex(glcNAc1, GlcNAc)
		if !hasGlcNAc2 {
			return sites
		}
		glcNAc2 := glcNAc1.Children[glcNAc2Idx]
		betaManIdx, hasBetaMan := childIndex(glcNAc2, Man)
		if !hasBetaMan {
			sites = append(sites, site{path: []int{glcNAc1Idx, glcNAc2Idx}})
			return sites
		}
		betaMan := glcNAc2.Children[betaManIdx]
		if len(betaMan.childrenOf(Man)) < 2 {
			sites = append(sites, site{path: []int{glcNAc1Idx, glcNAc2Idx, betaManIdx}})
		}
		return sites

	case Gal:
		forEachAntennaGlcNAc(root, func(path []int, antenna *node) {
			if _, ok := childIndex(antenna, Gal); !ok {
				sites = append(sites, site{path: path})
			}
		})
		return sites

	case Fuc:
		if hasGlcNAc1 {
			glcNAc1 := root.Children[glcNAc1Idx]
			if _, ok := childIndex(glcNAc1, Fuc); !ok {
				sites = append(sites, site{path: []int{glcNAc1Idx}})
			}
		}
		return sites

	case NeuAc, NeuGc:
		forEachAntennaGal(root, func(path []int, gal *node) {
			_, hasNeuAc := childIndex(gal, NeuAc)
			_, hasNeuGc := childIndex(gal, NeuGc)
			if !hasNeuAc && !hasNeuGc {
				sites = append(sites, site{path: path})
			}
		})
		return sites
	}
	return sites
}

// forEachAntennaGlcNAc visits every antenna GlcNAc (a child of an
// alpha-mannose) currently present in the tree.
func forEachAntennaGlcNAc(root *node, visit func(path []int, antenna *node)) {
	glcNAc1Idx, ok := childIndex(root, GlcNAc)
	if !ok {
		return
	}
	glcNAc1 := root.Children[glcNAc1Idx]
	glcNAc2Idx, ok := childIndex(glcNAc1, GlcNAc)
	if !ok {
		return
	}
	glcNAc2 := glcNAc1.Children[glcNAc2Idx]
	betaManIdx, ok := childIndex(glcNAc2, Man)
	if !ok {
		return
	}
	betaMan := glcNAc2.Children[betaManIdx]
	for i, c := range betaMan.Children {
		if c.Sugar != Man {
			continue
		}
		if j, ok := childIndex(c, GlcNAc); ok {
			visit([]int{glcNAc1Idx, glcNAc2Idx, betaManIdx, i, j}, c.Children[j])
		}
	}
}

// forEachAntennaGal visits every antenna Gal (a child of an antenna
// GlcNAc) currently present in the tree.
func forEachAntennaGal(root *node, visit func(path []int, gal *node)) {
	forEachAntennaGlcNAc(root, func(path []int, antenna *node) {
		if j, ok := childIndex(antenna, Gal); ok {
			visit(append(append([]int{}, path...), j), antenna.Children[j])
		}
	})
}

// ToMassComposition converts a category composition into the
// string-keyed form mass.GlycanMass expects.
func ToMassComposition(c map[Category]int) map[string]int {
	out := make(map[string]int, len(c))
	for cat, n := range c {
		out[string(cat)] = n
	}
	return out
}

// Monosaccharides returns the sugar residues present anywhere in g's
// tree, in depth-first order.
func (g *Glycan) Monosaccharides() []Monosaccharide {
	var out []Monosaccharide
	var walk func(n *node)
	walk = func(n *node) {
		if n.Sugar != "" {
			out = append(out, n.Sugar)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(g.root)
	return out
}
