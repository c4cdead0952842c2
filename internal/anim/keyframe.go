package anim

// Keyframe marks one point on a timeline: the value reached at Frame, the
// spatial tangent handles used for 2D path interpolation into and out of
// this keyframe, and the easing governing the ramp from the previous
// keyframe. Immutable once constructed.
type Keyframe[T any] struct {
	Frame      float64
	Value      T
	SpatialIn  Vector3
	SpatialOut Vector3
	Easing     Easing
}

// Animatable is a timeline: the value in effect before the first keyframe
// plus the ordered keyframe sequence describing how the value changes.
// Keyframes are strictly increasing in Frame with no duplicates.
//
// PropertyIndex identifies which property of a containing object the
// timeline drives. It is not part of structural equality, and it is
// cleared on timelines synthesized by the canonicalizer since it does not
// survive deduplication.
type Animatable[T any] struct {
	InitialValue  T
	Keyframes     []Keyframe[T]
	PropertyIndex *int
}

// IsAnimated reports whether the timeline actually changes value: it has
// more than one keyframe and at least one keyframe value differs from the
// initial value, under the given value equality. Static timelines are
// canonicalization no-ops.
func IsAnimated[T any](c Comparer[T], v *Animatable[T]) bool {
	if len(v.Keyframes) <= 1 {
		return false
	}
	for i := range v.Keyframes {
		if !c.Equal(v.Keyframes[i].Value, v.InitialValue) {
			return true
		}
	}
	return false
}
