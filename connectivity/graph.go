// Package connectivity discovers adjacency between labeled components:
// for every pair of labels that share enough face-adjacent cells, it
// adds a directed edge. The result is the adjacency graph the schema
// builder walks to resolve each component's input and output pins.
//
// What & Why:
//
//	Grounded on the teacher's core.Graph (an adjacency-list graph keyed
//	by a comparable id, built behind a small functional-option-free
//	constructor), generalized from string vertex ids to label.Label and
//	specialized to directed, unweighted edges — the one shape this
//	domain needs. original_source's matrix/connectivity.rs supplies the
//	exact counting/threshold algorithm (the original used petgraph's
//	CSR graph; no CSR-graph package exists anywhere in the corpus, so
//	the adjacency-list shape is reused instead).
//
// Complexity:
//
//	Build: O(volume * 6) time, O(K + E) memory, where E is the number
//	of discovered edges.
package connectivity

import (
	"sort"

	"github.com/hashalon/logic-circuit/label"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

// DefaultThreshold is the minimum count of face-shared cells between
// two labels required before an edge is added: a single touching
// voxel is ambiguous noise, three confirms a real junction.
const DefaultThreshold = 3

// Graph is a directed adjacency graph over labels 1..=K.
type Graph struct {
	forward map[label.Label][]label.Label
	reverse map[label.Label][]label.Label
}

// Neighbors returns the labels l has an outgoing edge to (its outputs,
// in the schema builder's terms).
func (g *Graph) Neighbors(l label.Label) []label.Label { return g.forward[l] }

// ReverseNeighbors returns the labels with an outgoing edge to l (its
// inputs).
func (g *Graph) ReverseNeighbors(l label.Label) []label.Label { return g.reverse[l] }

// Build scans m and adds a directed edge label1 -> label2 whenever the
// total count of face-shared cells between the two labels, across the
// whole matrix, reaches threshold.
func Build(m *voxelgrid.Matrix[label.Label], k int, threshold int) *Graph {
	g := &Graph{
		forward: make(map[label.Label][]label.Label, k),
		reverse: make(map[label.Label][]label.Label, k),
	}

	counts := make(map[[2]label.Label]int)

	m.ForEach(func(x, y, z int) {
		l1 := m.Get(x, y, z)
		if l1 == 0 {
			return
		}

		neighbors := m.Neighbors6(x, y, z, 0)
		for _, l2 := range neighbors {
			if l2 == 0 || l2 == l1 {
				continue
			}
			counts[[2]label.Label{l1, l2}]++
		}
	})

	pairs := make([][2]label.Label, 0, len(counts))
	for pair, count := range counts {
		if count >= threshold {
			pairs = append(pairs, pair)
		}
	}
	// Map iteration order is randomized; sort so the resulting edge
	// order (and everything the schema builder derives from it) is
	// reproducible across runs on identical input.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	for _, pair := range pairs {
		l1, l2 := pair[0], pair[1]
		g.forward[l1] = append(g.forward[l1], l2)
		g.reverse[l2] = append(g.reverse[l2], l1)
	}

	return g
}
