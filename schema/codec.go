package schema

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hashalon/logic-circuit/circuit"
	"github.com/hashalon/logic-circuit/vec3"
)

// Encode writes s using the length-prefixed little-endian format
// spec.md §6 describes: wire count and data, then component count and
// data, then model count and data.
func Encode(w io.Writer, s *Schema) error {
	if err := writeU64(w, uint64(len(s.Wires))); err != nil {
		return fmt.Errorf("encode wires length: %w", err)
	}
	for i, wire := range s.Wires {
		if err := writeU8(w, wire.Channel); err != nil {
			return fmt.Errorf("encode wire %d channel: %w", i, err)
		}
		if err := writeModelAttr(w, wire.ModelAttr); err != nil {
			return fmt.Errorf("encode wire %d model_attr: %w", i, err)
		}
	}

	if err := writeU64(w, uint64(len(s.Components))); err != nil {
		return fmt.Errorf("encode components length: %w", err)
	}
	for i, c := range s.Components {
		if err := writeComponent(w, c); err != nil {
			return fmt.Errorf("encode component %d: %w", i, err)
		}
	}

	if err := writeU64(w, uint64(len(s.Models))); err != nil {
		return fmt.Errorf("encode models length: %w", err)
	}
	for i, m := range s.Models {
		if err := writeModel(w, m); err != nil {
			return fmt.Errorf("encode model %d: %w", i, err)
		}
	}

	return nil
}

// Decode reads a Schema previously written by Encode.
func Decode(r io.Reader) (*Schema, error) {
	s := &Schema{}

	nWires, err := readU64(r)
	if err != nil {
		return nil, fmt.Errorf("decode wires length: %w", err)
	}
	s.Wires = make([]WireData, nWires)
	for i := range s.Wires {
		channel, err := readU8(r)
		if err != nil {
			return nil, fmt.Errorf("decode wire %d channel: %w", i, err)
		}
		attr, err := readModelAttr(r)
		if err != nil {
			return nil, fmt.Errorf("decode wire %d model_attr: %w", i, err)
		}
		s.Wires[i] = WireData{Channel: channel, ModelAttr: attr}
	}

	nComps, err := readU64(r)
	if err != nil {
		return nil, fmt.Errorf("decode components length: %w", err)
	}
	s.Components = make([]CompData, nComps)
	for i := range s.Components {
		c, err := readComponent(r)
		if err != nil {
			return nil, fmt.Errorf("decode component %d: %w", i, err)
		}
		s.Components[i] = c
	}

	nModels, err := readU64(r)
	if err != nil {
		return nil, fmt.Errorf("decode models length: %w", err)
	}
	s.Models = make([]Model, nModels)
	for i := range s.Models {
		m, err := readModel(r)
		if err != nil {
			return nil, fmt.Errorf("decode model %d: %w", i, err)
		}
		s.Models[i] = m
	}

	return s, nil
}

func writeModelAttr(w io.Writer, a ModelAttr) error {
	if err := writeVec3(w, a.Position); err != nil {
		return err
	}
	return writeU32(w, uint32(a.Index))
}

func readModelAttr(r io.Reader) (ModelAttr, error) {
	pos, err := readVec3(r)
	if err != nil {
		return ModelAttr{}, err
	}
	index, err := readU32(r)
	if err != nil {
		return ModelAttr{}, err
	}
	return ModelAttr{Position: pos, Index: int(index)}, nil
}

// writeComponent writes the tag byte (0=Bus, 1=Mux, 2=Demux, 3=Fixed,
// 4=Gate, 5=Input), a payload for Demux/Fixed (u16) or Gate (u8 op),
// the pin lists, and the model_attr.
func writeComponent(w io.Writer, c CompData) error {
	if err := writeU8(w, uint8(c.Kind.Tag)); err != nil {
		return err
	}
	switch c.Kind.Tag {
	case CompDemux, CompFixed:
		if err := writeU16(w, c.Kind.Data); err != nil {
			return err
		}
	case CompGate:
		if err := writeU8(w, uint8(c.Kind.Operator)); err != nil {
			return err
		}
	}
	if err := writePins(w, c.PinsIn); err != nil {
		return err
	}
	if err := writePins(w, c.PinsOut); err != nil {
		return err
	}
	return writeModelAttr(w, c.ModelAttr)
}

func readComponent(r io.Reader) (CompData, error) {
	tagByte, err := readU8(r)
	if err != nil {
		return CompData{}, err
	}
	tag := CompTag(tagByte)

	kind := CompKind{Tag: tag}
	switch tag {
	case CompDemux, CompFixed:
		data, err := readU16(r)
		if err != nil {
			return CompData{}, err
		}
		kind.Data = data
	case CompGate:
		op, err := readU8(r)
		if err != nil {
			return CompData{}, err
		}
		kind.Operator = circuit.Operator(op)
	case CompBus, CompMux, CompInput:
		// no payload
	default:
		return CompData{}, fmt.Errorf("unknown component tag %d", tagByte)
	}

	pinsIn, err := readPins(r)
	if err != nil {
		return CompData{}, err
	}
	pinsOut, err := readPins(r)
	if err != nil {
		return CompData{}, err
	}
	attr, err := readModelAttr(r)
	if err != nil {
		return CompData{}, err
	}

	return CompData{Kind: kind, PinsIn: pinsIn, PinsOut: pinsOut, ModelAttr: attr}, nil
}

func writePins(w io.Writer, pins []int) error {
	if err := writeU32(w, uint32(len(pins))); err != nil {
		return err
	}
	for _, p := range pins {
		if err := writeU32(w, uint32(p)); err != nil {
			return err
		}
	}
	return nil
}

func readPins(r io.Reader) ([]int, error) {
	n, err := readU32(r)
	if err != nil {
		return nil, err
	}
	pins := make([]int, n)
	for i := range pins {
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		pins[i] = int(v)
	}
	return pins, nil
}

// writeModel writes a model's bounding-box size and its packed
// occupancy bitmap, length-prefixed. The bitmap's interpretation beyond
// that is opaque to the core.
func writeModel(w io.Writer, m Model) error {
	if err := writeVec3(w, m.Size); err != nil {
		return err
	}
	if err := writeU32(w, uint32(len(m.Occupancy))); err != nil {
		return err
	}
	_, err := w.Write(m.Occupancy)
	return err
}

func readModel(r io.Reader) (Model, error) {
	size, err := readVec3(r)
	if err != nil {
		return Model{}, err
	}
	n, err := readU32(r)
	if err != nil {
		return Model{}, err
	}
	occupancy := make([]byte, n)
	if _, err := io.ReadFull(r, occupancy); err != nil {
		return Model{}, err
	}
	return Model{Size: size, Occupancy: occupancy}, nil
}

func writeVec3(w io.Writer, v vec3.Vec3) error {
	for _, c := range [3]int{v.X, v.Y, v.Z} {
		if err := writeU64(w, uint64(c)); err != nil {
			return err
		}
	}
	return nil
}

func readVec3(r io.Reader) (vec3.Vec3, error) {
	var comps [3]uint64
	for i := range comps {
		v, err := readU64(r)
		if err != nil {
			return vec3.Vec3{}, err
		}
		comps[i] = v
	}
	return vec3.New(int(comps[0]), int(comps[1]), int(comps[2])), nil
}

func writeU8(w io.Writer, v uint8) error   { return binary.Write(w, binary.LittleEndian, v) }
func writeU16(w io.Writer, v uint16) error { return binary.Write(w, binary.LittleEndian, v) }
func writeU32(w io.Writer, v uint32) error { return binary.Write(w, binary.LittleEndian, v) }
func writeU64(w io.Writer, v uint64) error { return binary.Write(w, binary.LittleEndian, v) }

func readU8(r io.Reader) (uint8, error) {
	var v uint8
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readU16(r io.Reader) (uint16, error) {
	var v uint16
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readU64(r io.Reader) (uint64, error) {
	var v uint64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}
