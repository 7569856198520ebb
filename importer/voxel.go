package importer

import (
	"encoding/binary"

	"github.com/hashalon/logic-circuit/vec3"
	"github.com/hashalon/logic-circuit/voxelgrid"
)

// Voxel is a fixed 4-channel direct voxel (r, g, b, a), generic over
// the per-channel integer width. Grounded on original_source's
// importer/xraw.rs Voxel<T>.
type Voxel[T any] [4]T

func (v Voxel[T]) R() T { return v[0] }
func (v Voxel[T]) G() T { return v[1] }
func (v Voxel[T]) B() T { return v[2] }
func (v Voxel[T]) A() T { return v[3] }

// ResultKind discriminates which of Result's matrix fields is
// populated.
type ResultKind int

const (
	Indexed8 ResultKind = iota
	Indexed16
	Direct8
	Direct16
	Direct32
)

// Result is the matrix a container loaded into, routed by the
// header's declared bit depths. Exactly one of the Matrix*/Voxel*
// fields is non-nil, selected by Kind.
type Result struct {
	Kind ResultKind

	Matrix8  *voxelgrid.Matrix[uint8]
	Matrix16 *voxelgrid.Matrix[uint16]

	Voxel8  *voxelgrid.Matrix[Voxel[uint8]]
	Voxel16 *voxelgrid.Matrix[Voxel[uint16]]
	Voxel32 *voxelgrid.Matrix[Voxel[uint32]]
}

func loadIndexed8(payload []byte, size vec3.Vec3) *voxelgrid.Matrix[uint8] {
	m := voxelgrid.New[uint8](size, 0)
	n := copy(m.Data, payload)
	_ = n
	return m
}

func loadIndexed16(payload []byte, size vec3.Vec3) *voxelgrid.Matrix[uint16] {
	m := voxelgrid.New[uint16](size, 0xffff)
	for i := range m.Data {
		off := i * 2
		if off+2 > len(payload) {
			break
		}
		m.Data[i] = binary.LittleEndian.Uint16(payload[off : off+2])
	}
	return m
}

func loadVoxel8(payload []byte, size vec3.Vec3, channels int) *voxelgrid.Matrix[Voxel[uint8]] {
	m := voxelgrid.New[Voxel[uint8]](size, Voxel[uint8]{})
	index := 0
	for i := range m.Data {
		var v Voxel[uint8]
		for c := 0; c < channels && c < 4; c++ {
			if index < len(payload) {
				v[c] = payload[index]
			}
			index++
		}
		m.Data[i] = v
	}
	return m
}

func loadVoxel16(payload []byte, size vec3.Vec3, channels int) *voxelgrid.Matrix[Voxel[uint16]] {
	m := voxelgrid.New[Voxel[uint16]](size, Voxel[uint16]{})
	index := 0
	for i := range m.Data {
		var v Voxel[uint16]
		for c := 0; c < channels && c < 4; c++ {
			if index+2 <= len(payload) {
				v[c] = binary.LittleEndian.Uint16(payload[index : index+2])
			}
			index += 2
		}
		m.Data[i] = v
	}
	return m
}

func loadVoxel32(payload []byte, size vec3.Vec3, channels int) *voxelgrid.Matrix[Voxel[uint32]] {
	m := voxelgrid.New[Voxel[uint32]](size, Voxel[uint32]{})
	index := 0
	for i := range m.Data {
		var v Voxel[uint32]
		for c := 0; c < channels && c < 4; c++ {
			if index+4 <= len(payload) {
				v[c] = binary.LittleEndian.Uint32(payload[index : index+4])
			}
			index += 4
		}
		m.Data[i] = v
	}
	return m
}
