package anim

import "math"

// Vector2 is a 2D point or displacement in composition space.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product with z=0). Zero means the vectors are colinear.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// IsZero returns true if the vector is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Vector3 is a 3D point, used for spatial tangent handles. The source
// format models 2D compositions with a nominal depth axis, so tangents
// carry a Z component that is almost always zero.
type Vector3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor for Vector3.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// IsZero returns true if the vector is the zero vector.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Between reports whether p lies between a and c on both axes:
// |a-p| <= |a-c| and |c-p| <= |a-c| componentwise.
func Between(p, a, c Vector2) bool {
	return betweenAxis(p.X, a.X, c.X) && betweenAxis(p.Y, a.Y, c.Y)
}

func betweenAxis(p, a, c float64) bool {
	span := math.Abs(a - c)
	return math.Abs(a-p) <= span && math.Abs(c-p) <= span
}
