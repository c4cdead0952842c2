package canon

import (
	"math"

	"github.com/animtools/animcanon/internal/anim"
)

// retraceTolerance bounds the cross product magnitude for the
// colinearity test of the retrace endpoints.
const retraceTolerance = 1e-6

// reconcileSegments post-processes an optimized path timeline whose
// keyframes disagree on segment count. Path timelines interpolate only
// between keyframes with equal segment counts, so a mismatch would be
// unrepresentable downstream.
//
// Exactly one degenerate pattern is repaired: a straight line immediately
// retraced by its own reverse (segment 1 draws back exactly over segment
// 0), which is visually equivalent to the single line. When, across the
// timeline, exactly two distinct segment counts occur and every keyframe
// geometry is such a one- or two-segment retraced line, every keyframe is
// rewritten to keep only its first segment, with the spatial tangents
// zeroed since a single-segment line has no meaningful tangent.
//
// Any deviation - curves, more than two segments, non-colinear points, a
// retrace end that is not between the line's endpoints - disqualifies the
// repair for the whole timeline, and the unrepaired input is returned for
// the emission stage to deal with.
func reconcileSegments(v *anim.Animatable[anim.PathGeometry]) *anim.Animatable[anim.PathGeometry] {
	counts := make(map[int]struct{})
	for i := range v.Keyframes {
		counts[v.Keyframes[i].Value.SegmentCount()] = struct{}{}
	}
	if len(counts) != 2 {
		// Already uniform, or too irregular to repair.
		return v
	}

	for i := range v.Keyframes {
		if !isRetracedLine(v.Keyframes[i].Value) {
			return v
		}
	}

	keyframes := make([]anim.Keyframe[anim.PathGeometry], len(v.Keyframes))
	for i, kf := range v.Keyframes {
		keyframes[i] = anim.Keyframe[anim.PathGeometry]{
			Frame:  kf.Frame,
			Value:  anim.PathGeometry{Segments: kf.Value.Segments[:1:1]},
			Easing: kf.Easing,
		}
	}
	return &anim.Animatable[anim.PathGeometry]{
		InitialValue: v.InitialValue,
		Keyframes:    keyframes,
	}
}

// isRetracedLine reports whether a geometry is a line of one segment, or
// of two segments where the second retraces the first: with a the line
// start, b the turn-around point, and c the retrace end, a, b, c must be
// colinear and c must land back on the segment between a and b on both
// axes. A full retrace has c == a; a partial retrace stops anywhere on
// the line.
func isRetracedLine(g anim.PathGeometry) bool {
	for _, s := range g.Segments {
		if !s.IsALine() {
			return false
		}
	}

	switch len(g.Segments) {
	case 1:
		return true
	case 2:
		a := g.Segments[0].P0
		b := g.Segments[0].P3
		c := g.Segments[1].P3
		cross := b.Sub(a).Cross(c.Sub(a))
		if math.Abs(cross) > retraceTolerance {
			return false
		}
		return anim.Between(c, a, b)
	default:
		return false
	}
}
