package morph

import (
	"encoding/binary"
	"hash"

	"github.com/hashalon/logic-circuit/vec3"
)

// bitset is a fixed-size, packed bit array used to represent a
// component's occupancy pattern within its bounding box before it is
// folded into the signature hash.
type bitset struct {
	bits []byte
	n    int
}

func newBitset(n int) *bitset {
	return &bitset{bits: make([]byte, (n+7)/8), n: n}
}

func (b *bitset) set(i int) {
	b.bits[i/8] |= 1 << uint(i%8)
}

func (b *bitset) writeTo(h hash.Hash64) {
	_, _ = h.Write(b.bits)
}

// bytes returns the packed occupancy bitmap, one bit per cell in
// ForEachInBox order, LSB-first within each byte.
func (b *bitset) bytes() []byte { return b.bits }

// writeVec3 absorbs a Vec3's three components into the running hash,
// little-endian, so the signature depends on the box's size.
func writeVec3(h hash.Hash64, v vec3.Vec3) {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.X))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(v.Y))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(v.Z))
	_, _ = h.Write(buf[:])
}
