package schema

import (
	"github.com/hashalon/logic-circuit/circuit"
	"github.com/hashalon/logic-circuit/connectivity"
	"github.com/hashalon/logic-circuit/label"
	"github.com/hashalon/logic-circuit/morph"
	"github.com/hashalon/logic-circuit/vec3"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

// ModelAttr ties a wire or component to the geometric model instantiated
// at its source position. Index is dense into Schema.Models; Position
// is the model's origin (its bounding box's Begin) within the voxel
// matrix it was compiled from.
type ModelAttr struct {
	Position vec3.Vec3
	Index    int
}

// Model is the geometry a wire or component occupies: its bounding-box
// size and packed occupancy bitmap, the same data morph folded into the
// component's Signature. It is opaque to the core — rendering is an
// external concern; the core only ever looks a Model up by index.
type Model struct {
	Size      vec3.Vec3
	Occupancy []byte
}

// CompTag discriminates CompKind's payload, standing in for
// original_source's CompType enum (Go has no tagged unions).
type CompTag int

const (
	CompBus CompTag = iota
	CompMux
	CompDemux
	CompFixed
	CompGate
	CompInput
)

// CompKind is a component's runtime shape. CompGate carries Operator;
// CompDemux and CompFixed carry Data (a select mask and a constant value
// respectively); the rest carry nothing.
type CompKind struct {
	Tag      CompTag
	Operator circuit.Operator
	Data     circuit.Data
}

// WireData is one persisted wire: its channel and the model it renders
// as.
type WireData struct {
	Channel   circuit.Channel
	ModelAttr ModelAttr
}

// CompData is one persisted component: its kind, resolved pin wire
// indices, and the model it renders as.
type CompData struct {
	Kind      CompKind
	PinsIn    []int
	PinsOut   []int
	ModelAttr ModelAttr
}

// Schema is the fully-built, not-yet-verified compilation output: every
// wire, every component, and the deduplicated model catalog they index
// into.
type Schema struct {
	Wires      []WireData
	Components []CompData
	Models     []Model
}

// Build classifies every labeled component found by label.Label6 into a
// wire or a component, dedupes their geometric models by shape
// signature, and resolves each component's pins through graph. Elements
// classified Empty are dropped. Build never fails on its own — call
// Verify on the result to check structural invariants.
func Build[T any](
	m *voxelgrid.Matrix[label.Label],
	values map[label.Label]T,
	boxes []vec3.Box3,
	graph *connectivity.Graph,
	classify Classifier[T],
) *Schema {
	k := len(boxes)

	classifications := make([]Classification, k+1)
	modelIndex := make([]int, k+1) // 1-based; index 0 unused
	wireIndex := make(map[label.Label]int, k)
	modelBySignature := make(map[morph.Signature]int, k)

	s := &Schema{}

	// First pass: classify every label, dedupe its model, and collect
	// the wire-index map pin resolution needs below.
	for i := 1; i <= k; i++ {
		l := label.Label(i)
		box := boxes[i-1]
		sig, volume, occupancy := morph.GenerateModel(m, l, box)

		idx, ok := modelBySignature[sig]
		if !ok {
			idx = len(s.Models)
			modelBySignature[sig] = idx
			s.Models = append(s.Models, Model{Size: box.Size(), Occupancy: occupancy})
		}
		modelIndex[i] = idx

		class := classify(values[l], volume)
		classifications[i] = class

		if class.Kind == WireKind {
			wireIndex[l] = len(s.Wires)
			s.Wires = append(s.Wires, WireData{
				Channel:   class.Channel,
				ModelAttr: ModelAttr{Position: box.Begin, Index: idx},
			})
		}
	}

	// Second pass: build every non-wire, non-empty component now that
	// wireIndex covers every label that will ever be a wire.
	for i := 1; i <= k; i++ {
		l := label.Label(i)
		class := classifications[i]

		tag, ok := compTag(class.Kind)
		if !ok {
			continue
		}

		s.Components = append(s.Components, CompData{
			Kind:    CompKind{Tag: tag, Operator: class.Operator, Data: class.Data},
			PinsIn:  resolvePins(graph.ReverseNeighbors(l), wireIndex),
			PinsOut: resolvePins(graph.Neighbors(l), wireIndex),
			ModelAttr: ModelAttr{
				Position: boxes[i-1].Begin,
				Index:    modelIndex[i],
			},
		})
	}

	return s
}

func compTag(k Kind) (CompTag, bool) {
	switch k {
	case Bus:
		return CompBus, true
	case Mux:
		return CompMux, true
	case Demux:
		return CompDemux, true
	case Fixed:
		return CompFixed, true
	case Gate:
		return CompGate, true
	case Input:
		return CompInput, true
	default:
		return 0, false
	}
}

// resolvePins maps a list of adjacency-graph neighbor labels to wire
// indices, skipping neighbors that were not classified as wires
// (spec.md §4.5: pins resolve to wire indices, non-wire elements are
// skipped rather than rejected).
func resolvePins(neighbors []label.Label, wireIndex map[label.Label]int) []int {
	pins := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		if idx, ok := wireIndex[n]; ok {
			pins = append(pins, idx)
		}
	}
	return pins
}
