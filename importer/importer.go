// Package importer loads a voxel container into a voxelgrid.Matrix.
//
// What & Why:
//
//	Grounded on original_source's importer/{xraw,import}.rs: a 24-byte
//	header (magic, channel dtype, channel count, bits/channel,
//	bits/index, three u32 dimensions, palette size) precedes either an
//	indexed payload (one u8 or u16 palette index per cell) or a direct
//	payload (a fixed-width RGBA-shaped voxel per cell). This is the
//	"reference importer" spec.md names as a consumed interface, not a
//	general asset pipeline — kept minimal and internal to this module.
package importer

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hashalon/logic-circuit/vec3"
)

// HeaderSize is the fixed byte length of a container's header.
const HeaderSize = 24

// Header is the container header preceding the voxel payload.
type Header struct {
	Magic             string
	ChannelDataType   uint8
	ChannelCount      uint8
	BitsPerChannel    uint8
	BitsPerIndex      uint8
	Dimensions        vec3.Vec3
	PaletteColorCount uint32
}

// ReadHeader reads and parses the fixed 24-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n < HeaderSize {
			return Header{}, &LoadErr{Kind: ErrHeader, Err: fmt.Errorf("header needs %d bytes, got %d", HeaderSize, n)}
		}
		return Header{}, &LoadErr{Kind: ErrHeader, Err: err}
	}

	return Header{
		Magic:           string(buf[0:4]),
		ChannelDataType: buf[4],
		ChannelCount:    buf[5],
		BitsPerChannel:  buf[6],
		BitsPerIndex:    buf[7],
		Dimensions: vec3.New(
			int(binary.LittleEndian.Uint32(buf[8:12])),
			int(binary.LittleEndian.Uint32(buf[12:16])),
			int(binary.LittleEndian.Uint32(buf[16:20])),
		),
		PaletteColorCount: binary.LittleEndian.Uint32(buf[20:24]),
	}, nil
}

// Open opens path and loads it as a voxel container.
func Open(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadErr{Kind: ErrOpen, Err: err}
	}
	defer f.Close()

	return Load(f)
}

// Load reads a whole voxel container from r: its header, then a
// payload routed by BitsPerIndex (indexed) or BitsPerChannel (direct).
func Load(r io.Reader) (*Result, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadErr{Kind: ErrRead, Err: err}
	}

	switch header.BitsPerIndex {
	case 8:
		return &Result{Kind: Indexed8, Matrix8: loadIndexed8(payload, header.Dimensions)}, nil
	case 16:
		return &Result{Kind: Indexed16, Matrix16: loadIndexed16(payload, header.Dimensions)}, nil
	}

	switch header.BitsPerChannel {
	case 8:
		return &Result{Kind: Direct8, Voxel8: loadVoxel8(payload, header.Dimensions, int(header.ChannelCount))}, nil
	case 16:
		return &Result{Kind: Direct16, Voxel16: loadVoxel16(payload, header.Dimensions, int(header.ChannelCount))}, nil
	case 32:
		return &Result{Kind: Direct32, Voxel32: loadVoxel32(payload, header.Dimensions, int(header.ChannelCount))}, nil
	}

	return nil, &LoadErr{Kind: ErrUnsupported, Err: fmt.Errorf("unsupported bits_per_index=%d bits_per_channel=%d", header.BitsPerIndex, header.BitsPerChannel)}
}
