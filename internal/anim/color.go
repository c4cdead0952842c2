package anim

// Scalar is a single animatable numeric value (opacity, rotation,
// a trim percentage, one axis of a size).
type Scalar float64

// Color is a non-premultiplied RGBA color with float64 channels in [0, 1].
// Channels compare exactly; there is no tolerance in color equality.
type Color struct {
	R, G, B, A float64
}

// RGBA is a convenience constructor for Color.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}
