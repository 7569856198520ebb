// Package schema classifies labeled components into wires and logic
// components, dedupes their geometric models by shape signature, and
// produces a Schema — the persisted, verified graph the circuit
// runtime instantiates from.
//
// What & Why:
//
//	Grounded on original_source's importer/import.rs (match_index) for
//	the default value->kind mapping, and schematic/{base,component,
//	element}.rs for the exact field layout of WireData, CompData, and
//	ModelAttr. The functional classifier is injected rather than
//	hard-coded so a non-default voxel palette can reuse the rest of the
//	builder, mirroring the teacher's functional-option discipline
//	(builder.BuilderOption, core.GraphOption).
package schema

import "github.com/hashalon/logic-circuit/circuit"

// Kind is what a labeled component turns into once classified.
type Kind int

const (
	Empty Kind = iota
	WireKind
	Fixed
	Gate
	Mux
	Demux
	Bus
	Input
)

// Classification is a classifier's verdict for one labeled component:
// its Kind, plus whichever payload field that Kind uses.
type Classification struct {
	Kind     Kind
	Channel  circuit.Channel  // valid when Kind == WireKind
	Operator circuit.Operator // valid when Kind == Gate
	Data     circuit.Data     // valid when Kind == Fixed (value) or Demux (mask)
}

// Classifier maps a labeled component's source value and volume to a
// Classification. Classifiers document their own edge-case behavior
// (e.g. what a Fixed value means for a tiny volume); an unknown
// mapping is not an error — it classifies as Empty and the element is
// dropped.
type Classifier[T any] func(value T, volume int) Classification

// numeric is the set of underlying integer kinds DefaultClassifier
// accepts: the voxel source value is always a small palette index.
type numeric interface {
	~int | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// DefaultClassifier implements the reference importer's mapping
// (spec.md §4.5): values 1..=16 are Wire(channel=value-1); 17..=24 are
// Gate(Or|And|Nor|Nand|Add|Mul|Min|Max) in that order; 25=Mux,
// 26=Demux(mask=1), 27=Fixed(volume-4), 28=Bus, 29=Input (keyboard);
// anything else is Empty.
//
// Fixed(volume-4) is only meaningful for volumes of 4 or more cells
// (spec.md §9's open question): components smaller than that classify
// as Fixed(0) rather than underflow.
func DefaultClassifier[T numeric](value T, volume int) Classification {
	v := int(value)

	if v >= 1 && v <= 16 {
		return Classification{Kind: WireKind, Channel: circuit.Channel(v - 1)}
	}

	switch v {
	case 17:
		return Classification{Kind: Gate, Operator: circuit.Or}
	case 18:
		return Classification{Kind: Gate, Operator: circuit.And}
	case 19:
		return Classification{Kind: Gate, Operator: circuit.Nor}
	case 20:
		return Classification{Kind: Gate, Operator: circuit.Nand}
	case 21:
		return Classification{Kind: Gate, Operator: circuit.Add}
	case 22:
		return Classification{Kind: Gate, Operator: circuit.Mul}
	case 23:
		return Classification{Kind: Gate, Operator: circuit.Min}
	case 24:
		return Classification{Kind: Gate, Operator: circuit.Max}
	case 25:
		return Classification{Kind: Mux}
	case 26:
		return Classification{Kind: Demux, Data: 1}
	case 27:
		fixedValue := 0
		if volume >= 4 {
			fixedValue = volume - 4
		}
		return Classification{Kind: Fixed, Data: circuit.Data(fixedValue)}
	case 28:
		return Classification{Kind: Bus}
	case 29:
		return Classification{Kind: Input}
	default:
		return Classification{Kind: Empty}
	}
}
