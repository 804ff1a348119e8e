package scenemath

// Quaternion deals with quaternion math specifically for tracking node
// rotations decoded from Euler or direct 4-float controllers.
// For a nice explanation of quaternions see http://3dgep.com/?p=1815

import "math"

// Q is a unit length quaternion representing an orientation.
type Q struct {
	X float32
	Y float32
	Z float32
	W float32
}

// QI is the identity rotation.
var QI = Q{0, 0, 0, 1}

// Eq (==) returns true if each element in quaternion q has the same value
// as the corresponding element in quaternion r.
func (q Q) Eq(r Q) bool { return q.X == r.X && q.Y == r.Y && q.Z == r.Z && q.W == r.W }

// Len returns the length of the quaternion q.
func (q Q) Len() float64 {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
	return math.Sqrt(x*x + y*y + z*z + w*w)
}

// Unit normalizes quaternion q to have length 1. Quaternion q is left
// unchanged if its length is zero.
func (q Q) Unit() Q {
	l := q.Len()
	if l == 0 {
		return q
	}
	s := float32(1 / l)
	return Q{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// EulerToQuat converts an Euler angle triple, applied in X, Y, Z order and
// given in radians, to a unit quaternion using the half-angle formula:
//
//	cx=cos(X/2), sx=sin(X/2), cy=cos(Y/2), sy=sin(Y/2), cz=cos(Z/2), sz=sin(Z/2)
//	qx = sx*cy*cz - cx*sy*sz
//	qy = cx*sy*cz + sx*cy*sz
//	qz = cx*cy*sz - sx*sy*cz
//	qw = cx*cy*cz + sx*sy*sz
func EulerToQuat(x, y, z float32) Q {
	hx, hy, hz := float64(x)*0.5, float64(y)*0.5, float64(z)*0.5
	cx, sx := math.Cos(hx), math.Sin(hx)
	cy, sy := math.Cos(hy), math.Sin(hy)
	cz, sz := math.Cos(hz), math.Sin(hz)
	return Q{
		X: float32(sx*cy*cz - cx*sy*sz),
		Y: float32(cx*sy*cz + sx*cy*sz),
		Z: float32(cx*cy*sz - sx*sy*cz),
		W: float32(cx*cy*cz + sx*sy*sz),
	}
}
