// Package vec3 provides integer 3-D vectors and axis-aligned boxes used
// throughout the voxel compiler: grid coordinates, bounding boxes, and
// the index arithmetic of the dense matrix.
//
// What & Why:
//
//	Vec3 is a triple of non-negative integer coordinates with
//	component-wise arithmetic and a lexicographic-by-component partial
//	order (Begin <= p < End is how a Box3 decides containment). Keeping
//	this as a tiny value type (no pointers, no interfaces) lets the
//	matrix and labeler index cells without allocation.
//
// Complexity:
//
//	Every operation here is O(1).
package vec3

// Vec3 is a triple of non-negative integer coordinates.
type Vec3 struct {
	X, Y, Z int
}

// New constructs a Vec3 from its three components.
func New(x, y, z int) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Min returns the component-wise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 { return Vec3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)} }

// Max returns the component-wise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 { return Vec3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)} }

// LessEq reports the component-wise partial order v <= o.
// This is a partial order, not a total order: neither LessEq(a,b) nor
// LessEq(b,a) need hold for arbitrary a, b.
func (v Vec3) LessEq(o Vec3) bool {
	return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z
}

// Less reports the component-wise strict order v < o.
func (v Vec3) Less(o Vec3) bool {
	return v.X < o.X && v.Y < o.Y && v.Z < o.Z
}

// IndexRange returns the number of cells of a matrix sized v: X*Y*Z.
func (v Vec3) IndexRange() int { return v.X * v.Y * v.Z }

// Box3 is an axis-aligned box with Begin <= End, End exclusive.
type Box3 struct {
	Begin, End Vec3
}

// NewBox returns the Box3{begin, end}.
func NewBox(begin, end Vec3) Box3 { return Box3{Begin: begin, End: end} }

// Size returns End - Begin.
func (b Box3) Size() Vec3 { return b.End.Sub(b.Begin) }

// Contains reports whether p lies within [Begin, End).
func (b Box3) Contains(p Vec3) bool {
	return b.Begin.LessEq(p) && p.Less(b.End)
}
