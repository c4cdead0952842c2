package anim

// Comparer bundles the equality and hash functions for one value type.
// Equality and hashing are explicit free functions composed upward
// (segment equality into geometry equality, keyframe equality into
// sequence equality, sequence equality into timeline equality) rather
// than a single polymorphic comparer.
//
// Invariant: for all a, b with Equal(a, b), Hash writes identical byte
// streams for a and b.
type Comparer[T any] struct {
	Equal func(a, b T) bool
	Hash  func(h *Hasher, v T)
}

// Scalars compares scalar values with exact float equality.
var Scalars = Comparer[Scalar]{
	Equal: func(a, b Scalar) bool { return a == b },
	Hash:  hashScalar,
}

// Colors compares colors channel-by-channel with exact equality.
var Colors = Comparer[Color]{
	Equal: func(a, b Color) bool { return a == b },
	Hash:  hashColor,
}

// Paths compares path geometries structurally over their segments.
var Paths = Comparer[PathGeometry]{
	Equal: PathGeometryEqual,
	Hash:  hashPathGeometry,
}

// KeyframeEqual reports deep equality of two keyframes: frame, value,
// both spatial control points, and easing.
func KeyframeEqual[T any](c Comparer[T], a, b Keyframe[T]) bool {
	return a.Frame == b.Frame &&
		c.Equal(a.Value, b.Value) &&
		a.SpatialIn == b.SpatialIn &&
		a.SpatialOut == b.SpatialOut &&
		EasingEqual(a.Easing, b.Easing)
}

// KeyframesEqual reports order-sensitive pairwise equality of two
// keyframe sequences; unequal lengths are never equal.
func KeyframesEqual[T any](c Comparer[T], a, b []Keyframe[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !KeyframeEqual(c, a[i], b[i]) {
			return false
		}
	}
	return true
}

// AnimatableEqual reports structural equality of two timelines: equal
// initial values and equal keyframe sequences. PropertyIndex is excluded.
func AnimatableEqual[T any](c Comparer[T], a, b *Animatable[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return c.Equal(a.InitialValue, b.InitialValue) &&
		KeyframesEqual(c, a.Keyframes, b.Keyframes)
}
