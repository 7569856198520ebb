package main

import (
	"fmt"

	"github.com/hashalon/logic-circuit/circuit"
	"github.com/hashalon/logic-circuit/schema"
)

// newSimulator instantiates a circuit.Simulator from a verified Schema:
// one circuit.Wire per schema.WireData, one circuit.Component per
// schema.CompData, sharing a single InputDevice across every Input
// component (spec.md: InputDevice is a process-wide singleton).
func newSimulator(s *schema.Schema) (*circuit.Simulator, error) {
	wires := make([]circuit.Wire, len(s.Wires))
	for i, wd := range s.Wires {
		wires[i] = circuit.Wire{Channel: wd.Channel}
	}

	device := &circuit.InputDevice{}
	components := make([]circuit.Component, len(s.Components))
	for i, cd := range s.Components {
		c, err := newComponent(cd, device)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		components[i] = c
	}

	return circuit.New(wires, components, device), nil
}

func newComponent(cd schema.CompData, device *circuit.InputDevice) (circuit.Component, error) {
	switch cd.Kind.Tag {
	case schema.CompBus:
		return &circuit.Bus{PinsIn: cd.PinsIn, PinsOut: cd.PinsOut}, nil
	case schema.CompMux:
		return &circuit.Mux{PinsIn: cd.PinsIn, PinsOut: cd.PinsOut}, nil
	case schema.CompDemux:
		return &circuit.Demux{Mask: cd.Kind.Data, PinsIn: cd.PinsIn, PinsOut: cd.PinsOut}, nil
	case schema.CompFixed:
		return &circuit.Fixed{Value: cd.Kind.Data, PinsOut: cd.PinsOut}, nil
	case schema.CompGate:
		return &circuit.Gate{Op: cd.Kind.Operator, PinsIn: cd.PinsIn, PinsOut: cd.PinsOut}, nil
	case schema.CompInput:
		return &circuit.Input{Device: device, PinsOut: cd.PinsOut}, nil
	default:
		return nil, fmt.Errorf("unknown component tag %d", cd.Kind.Tag)
	}
}
