package schema

import (
	"fmt"

	"github.com/hashalon/logic-circuit/circuit"
)

// VerifyKind discriminates a VerifyError's failure mode.
type VerifyKind int

const (
	WireChannel VerifyKind = iota
	WireModel
	CompModel
	PinIn
	PinOut
)

// VerifyError names one structural invariant Verify found broken.
// WireChannel and WireModel report the offending wire index in Wire;
// CompModel reports the offending component index in Component;
// PinIn/PinOut report both the owning component index and the bad
// pin's wire value, which may simply be out of range rather than
// pointing at a real wire.
type VerifyError struct {
	Kind      VerifyKind
	Component int
	Wire      int
}

func (e VerifyError) Error() string {
	switch e.Kind {
	case WireChannel:
		return fmt.Sprintf("wire %d: channel out of range", e.Wire)
	case WireModel:
		return fmt.Sprintf("wire %d: model index out of range", e.Wire)
	case CompModel:
		return fmt.Sprintf("component %d: model index out of range", e.Component)
	case PinIn:
		return fmt.Sprintf("component %d: input pin references out-of-range wire %d", e.Component, e.Wire)
	case PinOut:
		return fmt.Sprintf("component %d: output pin references out-of-range wire %d", e.Component, e.Wire)
	default:
		return "schema: unknown verification error"
	}
}

// Verify checks every structural invariant a Schema must hold before a
// circuit.Simulator can be built from it: every wire's channel is in
// range, every wire's and component's model index resolves into
// Models, and every component's pins resolve into Wires. Verify never
// short-circuits — it collects every violation so a caller can report
// them all at once (spec.md §7: verification errors are listed
// exhaustively).
func Verify(s *Schema) []VerifyError {
	var errs []VerifyError

	for i, w := range s.Wires {
		if int(w.Channel) >= circuit.NBChannels {
			errs = append(errs, VerifyError{Kind: WireChannel, Wire: i})
		}
		if w.ModelAttr.Index < 0 || w.ModelAttr.Index >= len(s.Models) {
			errs = append(errs, VerifyError{Kind: WireModel, Wire: i})
		}
	}

	for i, c := range s.Components {
		if c.ModelAttr.Index < 0 || c.ModelAttr.Index >= len(s.Models) {
			errs = append(errs, VerifyError{Kind: CompModel, Component: i})
		}
		for _, w := range c.PinsIn {
			if w < 0 || w >= len(s.Wires) {
				errs = append(errs, VerifyError{Kind: PinIn, Component: i, Wire: w})
			}
		}
		for _, w := range c.PinsOut {
			if w < 0 || w >= len(s.Wires) {
				errs = append(errs, VerifyError{Kind: PinOut, Component: i, Wire: w})
			}
		}
	}

	return errs
}
