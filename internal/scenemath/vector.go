package scenemath

// Vector performs the small amount of 3 element vector math needed to
// describe node positions, scales and mesh vertex data.

// V3 is a 3 element vector, also used as a point or a plain (x,y,z) triple.
type V3 struct {
	X float32
	Y float32
	Z float32
}

// Eq (==) returns true if each element in vector v has the same value
// as the corresponding element in vector a.
func (v V3) Eq(a V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// GetS returns the component values of the vector.
func (v V3) GetS() (x, y, z float32) { return v.X, v.Y, v.Z }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V3) SetS(x, y, z float32) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}
