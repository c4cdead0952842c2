package anim

// EasingKind identifies the interpolation function applied on the ramp
// from the previous keyframe up to the keyframe carrying the easing.
type EasingKind int

const (
	// EasingLinear interpolates at constant speed.
	EasingLinear EasingKind = iota

	// EasingHold keeps the previous value until this keyframe's frame.
	EasingHold

	// EasingCubicBezier interpolates along a cubic bezier timing curve
	// parametrized by two control points in the unit square.
	EasingCubicBezier
)

// String returns the document-format name of the easing kind.
// Unrecognized kinds return "unknown"; callers that require a recognized
// kind must check Known first.
func (k EasingKind) String() string {
	switch k {
	case EasingLinear:
		return "linear"
	case EasingHold:
		return "hold"
	case EasingCubicBezier:
		return "cubic_bezier"
	default:
		return "unknown"
	}
}

// Known reports whether k is a recognized easing kind.
func (k EasingKind) Known() bool {
	switch k {
	case EasingLinear, EasingHold, EasingCubicBezier:
		return true
	default:
		return false
	}
}

// Easing is a tagged easing descriptor. C1 and C2 are meaningful only
// when Kind is EasingCubicBezier and are zero otherwise, so equality can
// compare all fields unconditionally.
type Easing struct {
	Kind EasingKind
	C1   Vector2
	C2   Vector2
}

// LinearEasing returns the canonical linear easing descriptor.
func LinearEasing() Easing {
	return Easing{Kind: EasingLinear}
}

// HoldEasing returns the hold (step) easing descriptor.
func HoldEasing() Easing {
	return Easing{Kind: EasingHold}
}

// CubicEasing returns a cubic bezier easing with the given timing
// control points.
func CubicEasing(c1, c2 Vector2) Easing {
	return Easing{Kind: EasingCubicBezier, C1: c1, C2: c2}
}

// EasingEqual reports value equality over tag and parameters.
func EasingEqual(a, b Easing) bool {
	return a.Kind == b.Kind && a.C1 == b.C1 && a.C2 == b.C2
}
