package document

import (
	"github.com/animtools/animcanon/internal/anim"
)

// Conversions between the document surface and the in-memory animation
// model. Document values are validated before conversion; these helpers
// assume well-formed input.

func vec2(p []float64) anim.Vector2 {
	if len(p) != 2 {
		return anim.Vector2{}
	}
	return anim.V2(p[0], p[1])
}

func vec3(p []float64) anim.Vector3 {
	if len(p) != 3 {
		return anim.Vector3{}
	}
	return anim.V3(p[0], p[1], p[2])
}

func vec2Spec(v anim.Vector2) []float64 {
	return []float64{v.X, v.Y}
}

func vec3Spec(v anim.Vector3) []float64 {
	if v.IsZero() {
		return nil
	}
	return []float64{v.X, v.Y, v.Z}
}

func easingFromSpec(e *EasingSpec) anim.Easing {
	if e == nil {
		return anim.LinearEasing()
	}
	switch e.Kind {
	case EasingHold:
		return anim.HoldEasing()
	case EasingCubicBezier:
		return anim.CubicEasing(vec2(e.C1), vec2(e.C2))
	default:
		return anim.LinearEasing()
	}
}

func easingSpec(e anim.Easing) *EasingSpec {
	switch e.Kind {
	case anim.EasingHold:
		return &EasingSpec{Kind: EasingHold}
	case anim.EasingCubicBezier:
		return &EasingSpec{Kind: EasingCubicBezier, C1: vec2Spec(e.C1), C2: vec2Spec(e.C2)}
	default:
		return nil // linear is the document default
	}
}

func colorFromSpec(c *ColorSpec) anim.Color {
	if c == nil {
		return anim.Color{}
	}
	return anim.RGBA(c.R, c.G, c.B, c.A)
}

func colorSpec(c anim.Color) *ColorSpec {
	return &ColorSpec{R: c.R, G: c.G, B: c.B, A: c.A}
}

func pathFromSpec(p *PathSpec) anim.PathGeometry {
	if p == nil {
		return anim.PathGeometry{}
	}
	segments := make([]anim.BezierSegment, len(p.Segments))
	for i, s := range p.Segments {
		segments[i] = anim.BezierSegment{
			P0: vec2(s.P0),
			P1: vec2(s.P1),
			P2: vec2(s.P2),
			P3: vec2(s.P3),
		}
	}
	return anim.PathGeometry{Segments: segments}
}

func pathSpec(g anim.PathGeometry) *PathSpec {
	segments := make([]SegmentSpec, len(g.Segments))
	for i, s := range g.Segments {
		segments[i] = SegmentSpec{
			P0: vec2Spec(s.P0),
			P1: vec2Spec(s.P1),
			P2: vec2Spec(s.P2),
			P3: vec2Spec(s.P3),
		}
	}
	return &PathSpec{Segments: segments}
}

func keyframesFromSpec[T any](specs []KeyframeSpec, value func(Value) T) []anim.Keyframe[T] {
	keyframes := make([]anim.Keyframe[T], len(specs))
	for i, kf := range specs {
		keyframes[i] = anim.Keyframe[T]{
			Frame:      kf.Frame,
			Value:      value(kf.Value),
			SpatialIn:  vec3(kf.SpatialIn),
			SpatialOut: vec3(kf.SpatialOut),
			Easing:     easingFromSpec(kf.Easing),
		}
	}
	return keyframes
}

func keyframeSpecs[T any](keyframes []anim.Keyframe[T], value func(T) Value) []KeyframeSpec {
	specs := make([]KeyframeSpec, len(keyframes))
	for i, kf := range keyframes {
		specs[i] = KeyframeSpec{
			Frame:      kf.Frame,
			Value:      value(kf.Value),
			Easing:     easingSpec(kf.Easing),
			SpatialIn:  vec3Spec(kf.SpatialIn),
			SpatialOut: vec3Spec(kf.SpatialOut),
		}
	}
	return specs
}

func scalarValue(v Value) anim.Scalar {
	if v.Scalar == nil {
		return 0
	}
	return anim.Scalar(*v.Scalar)
}

func scalarSpec(s anim.Scalar) Value {
	f := float64(s)
	return Value{Scalar: &f}
}

func colorValue(v Value) anim.Color {
	return colorFromSpec(v.Color)
}

func pathValue(v Value) anim.PathGeometry {
	return pathFromSpec(v.Path)
}

// scalarAnimatable builds the in-memory timeline for a scalar document
// timeline; colorAnimatable and pathAnimatable are its siblings.
func scalarAnimatable(tl *Timeline) *anim.Animatable[anim.Scalar] {
	return &anim.Animatable[anim.Scalar]{
		InitialValue:  scalarValue(tl.Initial),
		Keyframes:     keyframesFromSpec(tl.Keyframes, scalarValue),
		PropertyIndex: tl.PropertyIndex,
	}
}

func colorAnimatable(tl *Timeline) *anim.Animatable[anim.Color] {
	return &anim.Animatable[anim.Color]{
		InitialValue:  colorFromSpec(tl.Initial.Color),
		Keyframes:     keyframesFromSpec(tl.Keyframes, colorValue),
		PropertyIndex: tl.PropertyIndex,
	}
}

func pathAnimatable(tl *Timeline) *anim.Animatable[anim.PathGeometry] {
	return &anim.Animatable[anim.PathGeometry]{
		InitialValue:  pathFromSpec(tl.Initial.Path),
		Keyframes:     keyframesFromSpec(tl.Keyframes, pathValue),
		PropertyIndex: tl.PropertyIndex,
	}
}

// timelineSpec rebuilds a document timeline from a canonicalized
// animatable, preserving the original identity fields.
func timelineSpec[T any](orig *Timeline, v *anim.Animatable[T], value func(T) Value, canonicalID string) Timeline {
	return Timeline{
		Target:        orig.Target,
		Property:      orig.Property,
		ValueType:     orig.ValueType,
		PropertyIndex: orig.PropertyIndex,
		Initial:       value(v.InitialValue),
		Keyframes:     keyframeSpecs(v.Keyframes, value),
		CanonicalID:   canonicalID,
	}
}

func colorSpecValue(c anim.Color) Value {
	return Value{Color: colorSpec(c)}
}

func pathSpecValue(g anim.PathGeometry) Value {
	return Value{Path: pathSpec(g)}
}
